package main

import "github.com/aalvaropc/unitcalc/internal/cli"

func main() {
	cli.Execute()
}

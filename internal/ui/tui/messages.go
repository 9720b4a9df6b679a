package tui

type initConfigDoneMsg struct {
	root string
	err  error
}

package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
)

// cmdInitConfig writes a starter unitcalc.yaml into the config root without
// overwriting an existing one.
func cmdInitConfig(deps Deps) tea.Cmd {
	root := deps.ConfigRoot
	return func() tea.Msg {
		if deps.Initializer == nil {
			return initConfigDoneMsg{root: root, err: errors.New("Initializer is nil")}
		}
		if root == "" {
			return initConfigDoneMsg{root: root, err: errors.New("config root is empty")}
		}

		err := deps.Initializer.Init(root, false)
		return initConfigDoneMsg{root: root, err: err}
	}
}

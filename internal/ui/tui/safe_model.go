package tui

import (
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/unitcalc/internal/history"
	"github.com/aalvaropc/unitcalc/internal/usecase"
)

const recoveredToast = "Unexpected error, selection reset (see logs)"

// safeModel keeps a panic in Update or View from tearing down the terminal.
// After a panic the calculator is brought back to a selection the registry
// can convert.
type safeModel struct {
	m   model
	log *slog.Logger
}

func wrapSafe(m model, log *slog.Logger) safeModel {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return safeModel{m: m, log: log}
}

func (s safeModel) Init() tea.Cmd {
	return s.m.Init()
}

func (s safeModel) Update(msg tea.Msg) (tm tea.Model, cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			s.logPanic("tui.update", r)
			s.restore()
			tm = s
			cmd = nil
		}
	}()

	inner, c := s.m.Update(msg)

	if mm, ok := inner.(model); ok {
		s.m = mm
	} else if sm, ok := inner.(safeModel); ok {
		s = sm
	}

	return s, c
}

func (s safeModel) View() (out string) {
	defer func() {
		if r := recover(); r != nil {
			s.logPanic("tui.view", r)
			out = fmt.Sprintf("Unexpected error while showing %s (see logs)", s.m.cat.Name)
		}
	}()
	return s.m.View()
}

// logPanic records the conversion the user was looking at alongside the stack.
func (s safeModel) logPanic(where string, r any) {
	s.log.Error("panic.recovered",
		"where", where,
		"category", s.m.cat.Name,
		"from", s.m.fromLabel(),
		"to", s.m.toLabel(),
		"value", s.m.input.Value(),
		"history", len(s.m.history),
		"panic", fmt.Sprint(r),
		"stack", string(debug.Stack()),
	)
}

// restore repairs the model in place. A second panic while repairing leaves
// the model as it was and only sets the toast.
func (s *safeModel) restore() {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("panic.restore_failed", "category", s.m.cat.Name, "panic", fmt.Sprint(r))
		}
		s.m.setFocus(focusCategories)
		s.m.toast = recoveredToast
	}()
	s.m.restoreSelection()
}

// restoreSelection keeps the current category and units when they still
// resolve, and falls back to the configured defaults otherwise.
func (m *model) restoreSelection() {
	if m.session == nil {
		m.session = usecase.NewSession(m.deps.Converter, history.New(), usecase.WithLogger(m.deps.Logger))
	}
	m.history = m.session.History()

	from, to := m.fromLabel(), m.toLabel()

	c, err := m.deps.Registry.Category(m.cat.Name)
	if err != nil {
		m.applyDefaults(m.deps.Config.Defaults)
		m.refreshPreview()
		return
	}
	m.selectCategory(m.categoryIndex(c.Name))

	if i := m.unitIndex(from); i >= 0 {
		m.fromIdx = i
	}
	if i := m.unitIndex(to); i >= 0 {
		m.toIdx = i
	}
	m.refreshPreview()
}

var _ tea.Model = (*safeModel)(nil)

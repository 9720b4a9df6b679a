package tui

import (
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/unitcalc/internal/app/format"
	"github.com/aalvaropc/unitcalc/internal/domain"
	"github.com/aalvaropc/unitcalc/internal/history"
	"github.com/aalvaropc/unitcalc/internal/usecase"
)

type focusArea int

const (
	focusCategories focusArea = iota
	focusValue
	focusFrom
	focusTo
	focusCount
)

const (
	categoriesWidth = 30
	historyWidth    = 48
	// numericRunes are the keys the value field accepts; every other rune is
	// a shortcut.
	numericRunes = "0123456789.-+eE_"
)

type categoryItem struct {
	cat domain.Category
}

func (c categoryItem) Title() string {
	if c.cat.Icon == "" {
		return c.cat.Name
	}
	return c.cat.Icon + " " + c.cat.Name
}
func (c categoryItem) Description() string { return pluralUnits(len(c.cat.Units)) }
func (c categoryItem) FilterValue() string { return c.cat.Name }

type model struct {
	theme Theme
	deps  Deps

	session   *usecase.Session
	precision int

	focus      focusArea
	categories list.Model
	input      textinput.Model

	cat     domain.Category
	fromIdx int
	toIdx   int

	preview    string
	previewErr string
	history    []domain.HistoryEntry
	quick      []domain.QuickConversion

	toast  string
	width  int
	height int
}

func Run(deps Deps) error {
	m := newModel(deps)
	m.deps.Logger.Info("tui.start", "root", deps.ConfigRoot, "debug", deps.Debug)
	p := tea.NewProgram(wrapSafe(m, m.deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	t := DefaultTheme()

	cats := deps.Registry.Categories()
	items := make([]list.Item, 0, len(cats))
	for _, c := range cats {
		items = append(items, categoryItem{cat: c})
	}

	l := list.New(items, list.NewDefaultDelegate(), categoriesWidth, 20)
	l.Title = "Categories"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	in := textinput.New()
	in.Prompt = "› "
	in.Placeholder = "value"
	in.CharLimit = 32
	in.Width = 24
	in.SetValue("1")

	m := model{
		theme:      t,
		deps:       deps,
		session:    usecase.NewSession(deps.Converter, history.New(), usecase.WithLogger(deps.Logger)),
		precision:  deps.Config.Display.Precision,
		categories: l,
		input:      in,
		quick:      deps.Registry.QuickConversions(),
	}

	m.applyDefaults(deps.Config.Defaults)
	m.setFocus(focusValue)
	m.refreshPreview()
	return m
}

// applyDefaults selects the configured category and units. Anything that does
// not resolve falls back to the first category and its first two units.
func (m *model) applyDefaults(d domain.DefaultsConfig) {
	idx := 0
	if c, err := m.deps.Registry.Category(d.Category); err == nil {
		idx = m.categoryIndex(c.Name)
	}
	m.selectCategory(idx)

	if i := m.unitIndex(d.From); i >= 0 {
		m.fromIdx = i
	}
	if i := m.unitIndex(d.To); i >= 0 {
		m.toIdx = i
	}
}

func (m model) Init() tea.Cmd { return textinput.Blink }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.categories.SetSize(categoriesWidth, max(msg.Height-8, 6))
		return m, nil

	case initConfigDoneMsg:
		if msg.err != nil {
			m.deps.Logger.Error("tui.init_config.failed", "root", msg.root, "err", msg.err)
			m.toast = "Init failed: " + userMessage(msg.err)
			return m, nil
		}
		m.deps.Logger.Info("tui.init_config.ok", "root", msg.root)
		m.toast = "unitcalc.yaml ready in " + msg.root
		return m, nil

	case tea.KeyMsg:
		if next, cmd, handled := m.handleKey(msg); handled {
			return next, cmd
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusCategories:
		before := m.categories.Index()
		m.categories, cmd = m.categories.Update(msg)
		if after := m.categories.Index(); after != before {
			m.selectCategory(after)
		}
	case focusValue:
		m.input, cmd = m.input.Update(msg)
		m.refreshPreview()
	}
	return m, cmd
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	key := msg.String()

	switch key {
	case "ctrl+c":
		return m, tea.Quit, true
	case "tab":
		m.setFocus((m.focus + 1) % focusCount)
		return m, nil, true
	case "shift+tab":
		m.setFocus((m.focus + focusCount - 1) % focusCount)
		return m, nil, true
	case "esc":
		m.setFocus(focusCategories)
		return m, nil, true
	case "enter":
		m.commit()
		return m, nil, true
	}

	if m.focus == focusValue && msg.Type == tea.KeyRunes && isNumeric(msg.Runes) {
		return m, nil, false
	}

	switch key {
	case "s":
		m.swap()
		return m, nil, true
	case "c":
		m.session.ClearHistory()
		m.history = nil
		m.toast = "History cleared"
		return m, nil, true
	case "I":
		return m, cmdInitConfig(m.deps), true
	}

	if m.focus != focusValue {
		switch key {
		case "q":
			return m, tea.Quit, true
		case "1", "2", "3", "4", "5":
			m.applyQuick(int(key[0] - '1'))
			return m, nil, true
		}
	}

	if m.focus == focusFrom || m.focus == focusTo {
		switch key {
		case "left", "up", "h", "k":
			m.cycleUnit(-1)
			return m, nil, true
		case "right", "down", "l", "j":
			m.cycleUnit(1)
			return m, nil, true
		}
	}

	// Stray letters must not reach the value field.
	if m.focus == focusValue && msg.Type == tea.KeyRunes {
		return m, nil, true
	}
	return m, nil, false
}

func (m *model) setFocus(f focusArea) {
	m.focus = f
	if f == focusValue {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

func (m *model) selectCategory(idx int) {
	items := m.categories.Items()
	if idx < 0 || idx >= len(items) {
		return
	}
	it, ok := items[idx].(categoryItem)
	if !ok {
		return
	}

	m.categories.Select(idx)
	m.cat = it.cat
	m.fromIdx = 0
	m.toIdx = min(1, len(m.cat.Units)-1)
	m.refreshPreview()
}

func (m *model) cycleUnit(delta int) {
	n := len(m.cat.Units)
	if n == 0 {
		return
	}
	if m.focus == focusFrom {
		m.fromIdx = (m.fromIdx + delta + n) % n
	} else {
		m.toIdx = (m.toIdx + delta + n) % n
	}
	m.refreshPreview()
}

func (m *model) swap() {
	from, to := usecase.Swap(m.fromLabel(), m.toLabel())
	m.fromIdx, m.toIdx = m.unitIndex(from), m.unitIndex(to)
	m.refreshPreview()
}

func (m *model) applyQuick(i int) {
	if i < 0 || i >= len(m.quick) {
		return
	}
	q := m.quick[i]

	c, err := m.deps.Registry.Category(q.Category)
	if err != nil {
		m.toast = userMessage(err)
		return
	}
	m.selectCategory(m.categoryIndex(c.Name))

	from, to := m.unitIndex(q.From), m.unitIndex(q.To)
	if from < 0 || to < 0 {
		m.toast = "Unknown unit"
		return
	}
	m.fromIdx, m.toIdx = from, to
	m.toast = "Quick: " + q.Name
	m.refreshPreview()
}

func (m *model) request() (domain.ConversionRequest, error) {
	v, err := format.ParseValue(m.input.Value())
	if err != nil {
		return domain.ConversionRequest{}, err
	}
	return domain.ConversionRequest{
		Value:    v,
		Category: m.cat.Name,
		From:     m.fromLabel(),
		To:       m.toLabel(),
	}, nil
}

func (m *model) refreshPreview() {
	m.preview, m.previewErr = "", ""

	if strings.TrimSpace(m.input.Value()) == "" {
		return
	}
	req, err := m.request()
	if err != nil {
		m.previewErr = "Enter a number"
		return
	}

	res, err := m.session.Preview(req)
	if err != nil {
		m.previewErr = userMessage(err)
		return
	}
	m.preview = format.Value(res.Value, m.precision)
}

func (m *model) commit() {
	req, err := m.request()
	if err != nil {
		m.toast = "Enter a number"
		return
	}

	e, err := m.session.Commit(req)
	if err != nil {
		m.toast = userMessage(err)
		return
	}
	m.history = m.session.History()
	m.toast = "✓ " + format.Entry(e, m.precision)
}

func (m model) fromLabel() string { return m.unitLabel(m.fromIdx) }
func (m model) toLabel() string   { return m.unitLabel(m.toIdx) }

func (m model) unitLabel(i int) string {
	if i < 0 || i >= len(m.cat.Units) {
		return ""
	}
	return m.cat.Units[i].Label
}

// unitIndex resolves a label or symbol in the selected category, or -1.
func (m model) unitIndex(name string) int {
	u, ok := m.cat.Find(name)
	if !ok {
		return -1
	}
	for i, cu := range m.cat.Units {
		if cu.Label == u.Label {
			return i
		}
	}
	return -1
}

func (m model) categoryIndex(name string) int {
	for i, it := range m.categories.Items() {
		if ci, ok := it.(categoryItem); ok && ci.cat.Name == name {
			return i
		}
	}
	return 0
}

func isNumeric(rs []rune) bool {
	for _, r := range rs {
		if !strings.ContainsRune(numericRunes, r) {
			return false
		}
	}
	return len(rs) > 0
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(0, 1)
	header := m.theme.Title.Render("unitcalc") + "  " +
		m.theme.Subtitle.Render("convert between units of measurement") + "\n"

	left := m.card(focusCategories).Render(m.categories.View())
	center := lipgloss.JoinVertical(lipgloss.Left,
		m.renderCalculator(),
		m.renderInfo(),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Card.Width(historyWidth).Render(renderHistory(m.theme, m.history, m.precision, historyWidth-4)),
		m.theme.Card.Width(historyWidth).Render(renderQuick(m.theme, m.quick)),
	)

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, center, right)

	help := m.theme.Help.Render("tab focus • ←/→ change unit • enter commit • s swap • c clear history • 1-5 quick • I init config • q quit")
	footer := help
	if m.toast != "" {
		footer = m.theme.Toast.Render(m.toast) + "\n" + help
	}

	return wrap.Render(header + "\n" + body + "\n" + footer)
}

func (m model) card(f focusArea) lipgloss.Style {
	if m.focus == f {
		return m.theme.Focused
	}
	return m.theme.Card
}

func (m model) renderCalculator() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render(categoryItem{cat: m.cat}.Title()))
	b.WriteString("\n\n")

	b.WriteString(m.theme.Subtitle.Render("Value"))
	b.WriteString("\n")
	b.WriteString(m.card(focusValue).Render(m.input.View()))
	b.WriteString("\n")

	b.WriteString(m.theme.Subtitle.Render("From"))
	b.WriteString("\n")
	b.WriteString(m.card(focusFrom).Render(renderUnitPicker(m.fromLabel())))
	b.WriteString("\n")

	b.WriteString(m.theme.Subtitle.Render("To"))
	b.WriteString("\n")
	b.WriteString(m.card(focusTo).Render(renderUnitPicker(m.toLabel())))
	b.WriteString("\n\n")

	switch {
	case m.previewErr != "":
		b.WriteString(m.theme.Error.Render(m.previewErr))
	case m.preview != "":
		b.WriteString(m.theme.Result.Render("= " + m.preview + " " + m.toLabel()))
	default:
		b.WriteString(m.theme.Help.Render("type a value"))
	}

	return m.theme.Card.Render(b.String())
}

func (m model) renderInfo() string {
	if m.cat.Info == "" {
		return ""
	}
	return m.theme.Card.Render(m.theme.Subtitle.Render("About "+m.cat.Name) + "\n" + m.cat.Info)
}

package tui

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/unitcalc/internal/domain"
	"github.com/aalvaropc/unitcalc/internal/registry"
	"github.com/aalvaropc/unitcalc/internal/usecase"
)

func testDeps() Deps {
	reg := registry.Builtin()
	return Deps{
		Registry:  reg,
		Converter: usecase.NewConverter(reg),
		Config:    domain.DefaultConfig(),
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m model, msgs ...tea.Msg) model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		mm, ok := next.(model)
		if !ok {
			t.Fatalf("Update returned %T, want model", next)
		}
		m = mm
	}
	return m
}

func withValue(m model, v string) model {
	m.input.SetValue(v)
	m.refreshPreview()
	return m
}

func TestNewModel_Defaults(t *testing.T) {
	m := newModel(testDeps())

	if m.cat.Name != "Length" {
		t.Fatalf("expected Length, got %q", m.cat.Name)
	}
	if m.fromLabel() != "Millimeter (mm)" || m.toLabel() != "Centimeter (cm)" {
		t.Fatalf("unexpected units %q -> %q", m.fromLabel(), m.toLabel())
	}
	if m.focus != focusValue {
		t.Fatalf("expected value focus, got %v", m.focus)
	}
	if m.preview != "0.100000" {
		t.Fatalf("expected preview 0.100000, got %q (err=%q)", m.preview, m.previewErr)
	}
}

func TestNewModel_ConfiguredDefaults(t *testing.T) {
	deps := testDeps()
	deps.Config.Defaults = domain.DefaultsConfig{Category: "temperature", From: "celsius", To: "Fahrenheit (°F)"}

	m := newModel(deps)
	if m.cat.Name != "Temperature" {
		t.Fatalf("expected Temperature, got %q", m.cat.Name)
	}
	if m.fromLabel() != "Celsius (°C)" || m.toLabel() != "Fahrenheit (°F)" {
		t.Fatalf("unexpected units %q -> %q", m.fromLabel(), m.toLabel())
	}
	if m.preview != "33.800000" {
		t.Fatalf("expected 33.800000, got %q", m.preview)
	}
}

func TestTyping_UpdatesPreview(t *testing.T) {
	m := newModel(testDeps())
	m = withValue(m, "")
	if m.preview != "" || m.previewErr != "" {
		t.Fatalf("expected empty preview, got %q / %q", m.preview, m.previewErr)
	}

	m = press(t, m, runes("2"), runes("5"))
	if m.input.Value() != "25" {
		t.Fatalf("expected input 25, got %q", m.input.Value())
	}
	if m.preview != "2.500000" {
		t.Fatalf("expected 2.500000, got %q", m.preview)
	}
}

func TestTyping_LettersDoNotReachInput(t *testing.T) {
	m := newModel(testDeps())
	m = press(t, m, runes("x"))
	if m.input.Value() != "1" {
		t.Fatalf("expected input unchanged, got %q", m.input.Value())
	}
}

func TestInvalidNumber_ShowsError(t *testing.T) {
	m := withValue(newModel(testDeps()), "1e")
	if m.previewErr == "" {
		t.Fatal("expected a preview error")
	}
}

func TestCommit_RecordsHistory(t *testing.T) {
	m := newModel(testDeps())
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc}, runes("3")) // lb to kg
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if len(m.history) != 1 {
		t.Fatalf("expected 1 history entry, got %d", len(m.history))
	}
	e := m.history[0]
	if e.Category != "Weight" || e.From != "Pound (lb)" || e.To != "Kilogram (kg)" {
		t.Fatalf("unexpected entry %+v", e)
	}
	if !strings.Contains(m.toast, "1 Pound (lb) = 0.453592 Kilogram (kg)") {
		t.Fatalf("unexpected toast %q", m.toast)
	}
}

func TestCommit_InvalidValueLeavesHistoryEmpty(t *testing.T) {
	m := withValue(newModel(testDeps()), "abc")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if len(m.history) != 0 {
		t.Fatalf("expected empty history, got %d", len(m.history))
	}
	if m.toast == "" {
		t.Fatal("expected a toast")
	}
}

func TestHistory_KeepsTenMostRecent(t *testing.T) {
	m := newModel(testDeps())
	for i := 1; i <= 15; i++ {
		m = withValue(m, strings.Repeat("1", i%3+1))
		m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	}
	if len(m.history) != 10 {
		t.Fatalf("expected 10 entries, got %d", len(m.history))
	}
}

func TestSwap(t *testing.T) {
	m := newModel(testDeps())
	from, to := m.fromLabel(), m.toLabel()

	m = press(t, m, runes("s"))
	if m.fromLabel() != to || m.toLabel() != from {
		t.Fatalf("expected swapped units, got %q -> %q", m.fromLabel(), m.toLabel())
	}
	if m.preview != "10.000000" {
		t.Fatalf("expected 10.000000 after swap, got %q", m.preview)
	}
}

func TestClearHistory(t *testing.T) {
	m := newModel(testDeps())
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if len(m.history) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(m.history))
	}

	m = press(t, m, runes("c"))
	if len(m.history) != 0 || len(m.session.History()) != 0 {
		t.Fatal("expected history cleared")
	}
}

func TestQuickConversions(t *testing.T) {
	m := newModel(testDeps())
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc}, runes("1"))

	if m.cat.Name != "Temperature" {
		t.Fatalf("expected Temperature, got %q", m.cat.Name)
	}
	if m.fromLabel() != "Celsius (°C)" || m.toLabel() != "Fahrenheit (°F)" {
		t.Fatalf("unexpected units %q -> %q", m.fromLabel(), m.toLabel())
	}
	if m.categories.Index() != 2 {
		t.Fatalf("expected list cursor on Temperature, got %d", m.categories.Index())
	}
}

func TestDigitsInValueFieldAreNotQuickKeys(t *testing.T) {
	m := newModel(testDeps())
	m = press(t, m, runes("1"))
	if m.cat.Name != "Length" {
		t.Fatalf("expected category unchanged, got %q", m.cat.Name)
	}
	if m.input.Value() != "11" {
		t.Fatalf("expected input 11, got %q", m.input.Value())
	}
}

func TestCycleUnits(t *testing.T) {
	m := newModel(testDeps())
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab}) // from
	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})

	last := m.cat.Units[len(m.cat.Units)-1].Label
	if m.fromLabel() != last {
		t.Fatalf("expected wrap to %q, got %q", last, m.fromLabel())
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyRight}) // to
	if m.toLabel() != "Meter (m)" {
		t.Fatalf("expected Meter (m), got %q", m.toLabel())
	}
}

func TestCategoryNavigation(t *testing.T) {
	m := newModel(testDeps())
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc}, tea.KeyMsg{Type: tea.KeyDown})

	if m.cat.Name != "Weight" {
		t.Fatalf("expected Weight, got %q", m.cat.Name)
	}
	if m.fromLabel() != "Milligram (mg)" {
		t.Fatalf("expected units reset, got %q", m.fromLabel())
	}
}

func TestInitConfigDoneMsg(t *testing.T) {
	m := newModel(testDeps())

	m = press(t, m, initConfigDoneMsg{root: "/tmp/x"})
	if !strings.Contains(m.toast, "/tmp/x") {
		t.Fatalf("unexpected toast %q", m.toast)
	}

	m = press(t, m, initConfigDoneMsg{root: "/tmp/x", err: errors.New("boom")})
	if !strings.HasPrefix(m.toast, "Init failed") {
		t.Fatalf("unexpected toast %q", m.toast)
	}
}

func TestCmdInitConfig_NilInitializer(t *testing.T) {
	msg := cmdInitConfig(Deps{ConfigRoot: "/tmp"})()
	done, ok := msg.(initConfigDoneMsg)
	if !ok || done.err == nil {
		t.Fatalf("expected error message, got %#v", msg)
	}
}

func TestView_RendersPanels(t *testing.T) {
	m := newModel(testDeps())
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	out := m.View()
	for _, want := range []string{"Categories", "Recent conversions", "Quick conversions", "About Length"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in view", want)
		}
	}
}

func TestSafeModel_RecoversFromPanic(t *testing.T) {
	var logs bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&logs, nil))

	m := newModel(testDeps())
	m = withValue(m, "42")
	m.fromIdx = 99
	m.session = nil
	s := wrapSafe(m, log)

	next, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Fatal("expected no command after a recovered panic")
	}
	sm, ok := next.(safeModel)
	if !ok {
		t.Fatalf("expected safeModel, got %T", next)
	}
	if sm.m.toast != recoveredToast || sm.m.focus != focusCategories {
		t.Fatalf("expected recovered state, got toast=%q focus=%v", sm.m.toast, sm.m.focus)
	}

	if sm.m.cat.Name != "Length" {
		t.Fatalf("expected category kept, got %q", sm.m.cat.Name)
	}
	if sm.m.fromLabel() == "" || sm.m.toLabel() == "" {
		t.Fatalf("expected a valid unit pair, got from=%d to=%d", sm.m.fromIdx, sm.m.toIdx)
	}
	if sm.m.session == nil {
		t.Fatal("expected a fresh session")
	}
	if sm.m.preview == "" {
		t.Fatalf("expected preview recomputed, got err %q", sm.m.previewErr)
	}

	for _, want := range []string{`"msg":"panic.recovered"`, `"category":"Length"`, `"value":"42"`} {
		if !strings.Contains(logs.String(), want) {
			t.Errorf("expected %s in log, got %s", want, logs.String())
		}
	}

	// The repaired model commits normally.
	next, _ = sm.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if got := len(next.(safeModel).m.history); got != 1 {
		t.Fatalf("expected 1 history entry after recovery, got %d", got)
	}
}

func TestSafeModel_UnknownCategoryFallsBackToDefaults(t *testing.T) {
	m := newModel(testDeps())
	m.cat = domain.Category{Name: "Luminosity"}
	m.session = nil
	s := wrapSafe(m, nil)

	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	sm := next.(safeModel)
	if sm.m.cat.Name != "Length" {
		t.Fatalf("expected default category, got %q", sm.m.cat.Name)
	}
	if sm.m.fromIdx != 0 || sm.m.toIdx != 1 {
		t.Fatalf("expected first two units, got from=%d to=%d", sm.m.fromIdx, sm.m.toIdx)
	}
}

package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/aalvaropc/unitcalc/internal/app/format"
	"github.com/aalvaropc/unitcalc/internal/domain"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen-1 {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func pluralUnits(n int) string {
	if n == 1 {
		return "1 unit"
	}
	return fmt.Sprintf("%d units", n)
}

func renderUnitPicker(label string) string {
	if label == "" {
		return "‹ (none) ›"
	}
	return "‹ " + label + " ›"
}

func renderHistory(t Theme, entries []domain.HistoryEntry, precision, width int) string {
	var b strings.Builder
	b.WriteString(t.Title.Render("Recent conversions"))
	b.WriteString("\n\n")

	if len(entries) == 0 {
		b.WriteString(t.Help.Render("No conversions yet!"))
		return b.String()
	}

	for i, e := range entries {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(t.Subtitle.Render(format.Clock(e.Timestamp) + "  " + e.Category))
		b.WriteString("\n")
		b.WriteString(clampString(format.Entry(e, precision), width))
	}
	return b.String()
}

func renderQuick(t Theme, quick []domain.QuickConversion) string {
	var b strings.Builder
	b.WriteString(t.Title.Render("Quick conversions"))
	b.WriteString("\n")
	for i, q := range quick {
		fmt.Fprintf(&b, "\n%d  %s", i+1, q.Name)
	}
	return b.String()
}

package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func typeString(m tea.Model, s string) tea.Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestSetupWizard_CollectsAnswers(t *testing.T) {
	var m tea.Model = NewSetupWizard(".", "public", ",", "utf-8")

	m = typeString(m, "postgresql://localhost/db")
	m, _ = m.Update(keyMsg("enter")) // to dir
	m = typeString(m, "data")        // appended after prefilled "."
	m, _ = m.Update(keyMsg("enter")) // to schema
	m, _ = m.Update(keyMsg("enter")) // to separator
	m, _ = m.Update(keyMsg("enter")) // to encoding
	m, _ = m.Update(keyMsg("enter")) // submit

	w, ok := m.(SetupWizard)
	if !ok {
		t.Fatalf("Update returned %T, want SetupWizard", m)
	}
	result := w.Result()

	if result.Cancelled {
		t.Fatal("wizard should not be cancelled")
	}
	if result.DatabaseURL != "postgresql://localhost/db" {
		t.Errorf("DatabaseURL = %q", result.DatabaseURL)
	}
	if result.Schema != "public" {
		t.Errorf("Schema = %q, want prefilled default", result.Schema)
	}
	if result.Separator != "," {
		t.Errorf("Separator = %q", result.Separator)
	}
}

func TestSetupWizard_EscCancels(t *testing.T) {
	var m tea.Model = NewSetupWizard(".", "public", ",", "utf-8")
	m, _ = m.Update(keyMsg("esc"))

	w := m.(SetupWizard)
	if !w.Result().Cancelled {
		t.Error("esc should cancel the wizard")
	}
}

func TestSetupWizard_TabCyclesFocus(t *testing.T) {
	var m tea.Model = NewSetupWizard(".", "public", ",", "utf-8")

	for i := 0; i < fieldCount; i++ {
		m, _ = m.Update(keyMsg("tab"))
	}

	w := m.(SetupWizard)
	if w.focused != fieldDatabaseURL {
		t.Errorf("focused = %d, want wraparound back to first field", w.focused)
	}
}

func TestSetupWizard_ViewShowsAllLabels(t *testing.T) {
	w := NewSetupWizard(".", "public", ",", "utf-8")
	view := w.View()

	for _, label := range []string{"Database URL", "Input directory", "Schema", "CSV separator", "CSV encoding"} {
		if !strings.Contains(view, label) {
			t.Errorf("View() missing label %q", label)
		}
	}
}

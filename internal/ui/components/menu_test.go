package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

type chosenMsg string

func testMenu() Menu {
	item := func(label, hotkey string) MenuItem {
		return MenuItem{Label: label, Hotkey: hotkey, Action: func() tea.Cmd {
			return func() tea.Msg { return chosenMsg(label) }
		}}
	}
	return NewMenu([]MenuItem{item("START", "s"), item("SUMMARY", "r"), {Label: "NOOP"}})
}

func TestMenu_WrapsSelection(t *testing.T) {
	m := testMenu()

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if m.Selected != 2 {
		t.Errorf("up from top selected %d, want 2", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 0 {
		t.Errorf("down from bottom selected %d, want 0", m.Selected)
	}
	m, _ = m.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	if m.Selected != 1 {
		t.Errorf("j selected %d, want 1", m.Selected)
	}
}

func TestMenu_EnterRunsSelected(t *testing.T) {
	m := testMenu()
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if got := cmd(); got != chosenMsg("SUMMARY") {
		t.Errorf("ran %v, want SUMMARY", got)
	}
}

func TestMenu_Hotkey(t *testing.T) {
	m := testMenu()

	m, cmd := m.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if cmd == nil || cmd() != chosenMsg("SUMMARY") {
		t.Fatal("hotkey r should run SUMMARY")
	}
	if m.Selected != 1 {
		t.Errorf("hotkey left selection at %d, want 1", m.Selected)
	}
}

func TestMenu_NilActionAndEmpty(t *testing.T) {
	m := testMenu()
	m.Selected = 2
	if _, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter}); cmd != nil {
		t.Error("item without action should not produce a command")
	}

	empty := NewMenu(nil)
	if _, cmd := empty.Update(tea.KeyPressMsg{Code: tea.KeyDown}); cmd != nil {
		t.Error("empty menu should ignore keys")
	}
	if got := testMenu().Labels(); len(got) != 3 || got[1] != "SUMMARY" {
		t.Errorf("Labels = %v", got)
	}
}

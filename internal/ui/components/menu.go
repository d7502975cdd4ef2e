package components

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
)

// MenuItem is one entry of a Menu. Hotkey, if set, activates the item
// directly without moving the selection first.
type MenuItem struct {
	Label  string
	Hotkey string
	Action func() tea.Cmd
}

type menuKeys struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
}

var defaultMenuKeys = menuKeys{
	Up:     key.NewBinding(key.WithKeys("up", "k")),
	Down:   key.NewBinding(key.WithKeys("down", "j", "tab")),
	Select: key.NewBinding(key.WithKeys("enter", "space")),
}

// Menu is a vertical list of actions. Selection wraps at both ends.
// Rendering is left to the owning screen.
type Menu struct {
	Items    []MenuItem
	Selected int
	keys     menuKeys
}

func NewMenu(items []MenuItem) Menu {
	return Menu{Items: items, keys: defaultMenuKeys}
}

// Labels returns the item labels in order.
func (m Menu) Labels() []string {
	labels := make([]string, len(m.Items))
	for i, item := range m.Items {
		labels[i] = item.Label
	}
	return labels
}

// Update moves the selection or runs the chosen item's action.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(kmsg, m.keys.Up):
		m.Selected = (m.Selected - 1 + len(m.Items)) % len(m.Items)
	case key.Matches(kmsg, m.keys.Down):
		m.Selected = (m.Selected + 1) % len(m.Items)
	case key.Matches(kmsg, m.keys.Select):
		return m, m.activate(m.Selected)
	default:
		for i, item := range m.Items {
			if item.Hotkey != "" && strings.EqualFold(kmsg.String(), item.Hotkey) {
				m.Selected = i
				return m, m.activate(i)
			}
		}
	}
	return m, nil
}

func (m Menu) activate(i int) tea.Cmd {
	if i < 0 || i >= len(m.Items) || m.Items[i].Action == nil {
		return nil
	}
	return m.Items[i].Action()
}

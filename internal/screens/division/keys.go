package division

import (
	"charm.land/bubbles/v2/key"

	"github.com/abhisek/divtutor/internal/ui/layout"
)

type keyMap struct {
	Digit     key.Binding
	Backspace key.Binding
	Submit    key.Binding
	NewRound  key.Binding
	Finish    key.Binding
	Help      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Digit: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("0-9", "digit"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace", "delete"),
			key.WithHelp("⌫", "clear"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "check"),
		),
		NewRound: key.NewBinding(
			key.WithKeys("n", "N"),
			key.WithHelp("n", "new problem"),
		),
		Finish: key.NewBinding(
			key.WithKeys("q", "Q"),
			key.WithHelp("q", "finish"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Digit, k.Submit, k.NewRound, k.Finish, k.Help}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Digit, k.Backspace, k.Submit},
		{k.NewRound, k.Finish, k.Help},
	}
}

// footerHints converts the short help into footer key hints.
func (k keyMap) footerHints() []layout.KeyHint {
	bindings := k.ShortHelp()
	hints := make([]layout.KeyHint, 0, len(bindings)+1)
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return append(hints, layout.KeyHint{Key: "esc", Description: "home"})
}

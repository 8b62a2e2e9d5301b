package main

import tea "github.com/charmbracelet/bubbletea"

// keyNames maps terminal key names to the key names turtle programs bind.
var keyNames = map[string]string{
	" ":         "space",
	"up":        "Up",
	"down":      "Down",
	"left":      "Left",
	"right":     "Right",
	"enter":     "Return",
	"tab":       "Tab",
	"backspace": "BackSpace",
}

func keyName(msg tea.KeyMsg) string {
	s := msg.String()
	if name, ok := keyNames[s]; ok {
		return name
	}
	return s
}

// mouseButton returns 1, 2 or 3 for a press of the left, middle or right
// button and 0 for anything else.
func mouseButton(msg tea.MouseMsg) int {
	switch msg.Type {
	case tea.MouseLeft:
		return 1
	case tea.MouseMiddle:
		return 2
	case tea.MouseRight:
		return 3
	}
	return 0
}

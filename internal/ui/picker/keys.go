package picker

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the picker's key bindings
type KeyMap struct {
	Month  key.Binding
	Year   key.Binding
	Next   key.Binding
	Prev   key.Binding
	Press  key.Binding
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
	Select key.Binding
	Close  key.Binding
}

// DefaultKeyMap returns the default bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Month:  key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "month")),
		Year:   key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "year")),
		Next:   key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next field")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("shift+tab", "prev field")),
		Press:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "open")),
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Top:    key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first")),
		Bottom: key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last")),
		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "choose")),
		Close:  key.NewBinding(key.WithKeys("esc", "x", "q"), key.WithHelp("esc", "close")),
	}
}

// ShortHelp returns the bindings relevant to the current state
func (k KeyMap) ShortHelp(open bool) []key.Binding {
	if open {
		return []key.Binding{k.Up, k.Down, k.Select, k.Close}
	}
	return []key.Binding{k.Month, k.Year, k.Next, k.Press}
}

package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds every binding the model reacts to. Navigation inside the
// list (up/down/paging) is left to the list component's own key map.
type keyMap struct {
	Quit        key.Binding
	ForceQuit   key.Binding
	SwitchFocus key.Binding
	Add         key.Binding
	Edit        key.Binding
	Remove      key.Binding
	Copy        key.Binding
	Save        key.Binding
	Cancel      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		SwitchFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch focus"),
		),
		Add: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "add item"),
		),
		Edit: key.NewBinding(
			key.WithKeys("enter", "e"),
			key.WithHelp("enter/e", "edit"),
		),
		Remove: key.NewBinding(
			key.WithKeys("d", "delete", "x"),
			key.WithHelp("d/x", "remove"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy"),
		),
		Save: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// inputHelp lists the bindings shown while the add input has focus.
func (k keyMap) inputHelp() []key.Binding {
	return []key.Binding{k.Add, k.SwitchFocus, k.ForceQuit}
}

// listHelp lists the bindings shown while the list has focus.
func (k keyMap) listHelp() []key.Binding {
	return []key.Binding{k.Edit, k.Remove, k.Copy, k.SwitchFocus, k.Quit}
}

// editHelp lists the bindings shown in the edit view.
func (k keyMap) editHelp() []key.Binding {
	return []key.Binding{k.Save, k.Cancel}
}

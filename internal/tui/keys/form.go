package keys

import "github.com/charmbracelet/bubbles/key"

// FormKeys are the bindings of the provisioning form
type FormKeys struct {
	CommonKeys
	Next       key.Binding
	Prev       key.Binding
	Enter      key.Binding
	Submit     key.Binding
	GenerateID key.Binding
	Dismiss    key.Binding
}

func NewFormKeys() FormKeys {
	return FormKeys{
		CommonKeys: NewCommonKeys(),
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab/↓", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab/↑", "previous field"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "next field / submit"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "submit"),
		),
		GenerateID: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "generate device ID"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("enter", "esc"),
			key.WithHelp("enter/esc", "close"),
		),
	}
}

func (k FormKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Next, k.Help, k.Quit}
}

func (k FormKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Enter},
		{k.Submit, k.GenerateID},
		{k.Help, k.Quit},
	}
}

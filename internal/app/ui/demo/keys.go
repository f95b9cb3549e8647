package demo

import (
	"github.com/charmbracelet/bubbles/key"

	"veil/internal/app/ui/components"
)

// KeyMap defines the key bindings for the demo screen
type KeyMap struct {
	components.KeyMap
	Short     key.Binding
	Long      key.Binding
	Overlap   key.Binding
	Item      key.Binding
	Block     key.Binding
	DelayUp   key.Binding
	DelayDown key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		KeyMap: components.DefaultKeyMap(),
		Short: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "short request"),
		),
		Long: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "long request"),
		),
		Overlap: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "overlapping"),
		),
		Item: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "item"),
		),
		Block: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "blocking"),
		),
		DelayUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "delay up"),
		),
		DelayDown: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "delay down"),
		),
	}
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Short, k.Long, k.Overlap, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Short, k.Long, k.Overlap},
		{k.Item, k.Block, k.DelayUp, k.DelayDown},
		{k.Help, k.Quit, k.ForceQuit},
	}
}

package update

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the editor's global bindings. Plain editing keys are
// handled directly and are not listed here.
type KeyMap struct {
	Quit         key.Binding
	Continue     key.Binding
	SuggestTitle key.Binding
	FocusTitle   key.Binding
	Export       key.Binding
	Fullscreen   key.Binding
	Preview      key.Binding
	Clear        key.Binding
	FontUp       key.Binding
	FontDown     key.Binding
	Help         key.Binding
}

var Keys = KeyMap{
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "ctrl+q"),
		key.WithHelp("ctrl+q", "quit"),
	),
	Continue: key.NewBinding(
		key.WithKeys("ctrl+g"),
		key.WithHelp("ctrl+g", "continue"),
	),
	SuggestTitle: key.NewBinding(
		key.WithKeys("ctrl+t"),
		key.WithHelp("ctrl+t", "title idea"),
	),
	FocusTitle: key.NewBinding(
		key.WithKeys("tab", "shift+tab"),
		key.WithHelp("tab", "edit title"),
	),
	Export: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "export"),
	),
	Fullscreen: key.NewBinding(
		key.WithKeys("ctrl+f"),
		key.WithHelp("ctrl+f", "fullscreen"),
	),
	Preview: key.NewBinding(
		key.WithKeys("ctrl+p"),
		key.WithHelp("ctrl+p", "preview"),
	),
	Clear: key.NewBinding(
		key.WithKeys("ctrl+x"),
		key.WithHelp("ctrl+x", "clear"),
	),
	FontUp: key.NewBinding(
		key.WithKeys("ctrl+up", "alt+="),
		key.WithHelp("alt+=", "larger"),
	),
	FontDown: key.NewBinding(
		key.WithKeys("ctrl+down", "alt+-"),
		key.WithHelp("alt+-", "smaller"),
	),
	Help: key.NewBinding(
		key.WithKeys("f1"),
		key.WithHelp("f1", "more keys"),
	),
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Continue, k.SuggestTitle, k.Export, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Continue, k.SuggestTitle, k.FocusTitle},
		{k.Export, k.Preview, k.Clear},
		{k.Fullscreen, k.FontUp, k.FontDown},
		{k.Help, k.Quit},
	}
}

// Package picker is the list-selection skeleton shared by the game and
// wishlist pickers.
package picker

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrCanceled is reported when the user quits without selecting.
var ErrCanceled = errors.New("canceled by user")

// SelectHandler is called when an item is selected.
// Return true to quit the picker, false to continue.
type SelectHandler func(selectedItem list.Item) bool

// KeyHandler is called for custom key handling.
// Return true if the key was handled, false to pass through to default handling.
type KeyHandler func(msg tea.KeyMsg) (handled bool, cmd tea.Cmd)

// Config configures a base picker.
type Config struct {
	List list.Model

	QuitKeys   key.Binding
	SelectKeys key.Binding

	OnSelect   SelectHandler
	OnKeyPress KeyHandler // optional

	BorderStyle lipgloss.Style
	ShowBorder  bool
}

// Base provides common picker functionality. Picker models embed a *Base and
// forward Update and View to it.
type Base struct {
	config   Config
	list     list.Model
	quitting bool
	chosen   bool
	err      error
}

// New creates a new base picker.
func New(cfg Config) *Base {
	return &Base{
		config: cfg,
		list:   cfg.List,
	}
}

// List returns the underlying list model for direct access.
func (b *Base) List() *list.Model {
	return &b.list
}

func (b *Base) IsQuitting() bool {
	return b.quitting
}

// Chosen reports whether the picker quit because an item was selected.
func (b *Base) Chosen() bool {
	return b.chosen
}

func (b *Base) Error() error {
	return b.err
}

// Update handles standard picker updates.
func (b *Base) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// keys belong to the filter input while it is open
		if b.list.FilterState() == list.Filtering {
			break
		}

		if b.config.OnKeyPress != nil {
			if handled, cmd := b.config.OnKeyPress(msg); handled {
				return cmd
			}
		}

		switch {
		case key.Matches(msg, b.config.QuitKeys):
			b.err = ErrCanceled
			b.quitting = true
			return tea.Quit

		case key.Matches(msg, b.config.SelectKeys):
			selectedItem := b.list.SelectedItem()
			if selectedItem == nil {
				break
			}
			if b.config.OnSelect == nil || b.config.OnSelect(selectedItem) {
				b.chosen = true
				b.quitting = true
				return tea.Quit
			}
		}

	case tea.WindowSizeMsg:
		if b.config.ShowBorder {
			h, v := b.config.BorderStyle.GetFrameSize()
			b.list.SetSize(msg.Width-h, msg.Height-v)
		} else {
			b.list.SetSize(msg.Width, msg.Height)
		}
	}

	var cmd tea.Cmd
	b.list, cmd = b.list.Update(msg)
	return cmd
}

// View renders the picker.
func (b *Base) View() string {
	if b.quitting {
		return ""
	}

	view := b.list.View()
	if b.config.ShowBorder {
		return b.config.BorderStyle.Render(view)
	}
	return view
}

// SelectedItem returns the currently selected item.
func (b *Base) SelectedItem() list.Item {
	return b.list.SelectedItem()
}

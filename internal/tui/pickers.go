package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/blackwell-systems/gamectl/internal/library"
	"github.com/blackwell-systems/gamectl/internal/tui/delegate"
	"github.com/blackwell-systems/gamectl/internal/tui/picker"
)

// ErrCanceled is returned when the user leaves a picker or form without
// choosing anything.
var ErrCanceled = picker.ErrCanceled

type liner interface {
	list.Item
	line() string
}

func renderLine(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(liner)
	if !ok {
		return
	}
	if index == m.Index() {
		_, _ = fmt.Fprint(w, StyleHighlight.Render("› ")+it.line())
	} else {
		_, _ = fmt.Fprint(w, "  "+it.line())
	}
}

type pickerModel[T list.Item] struct {
	base     *picker.Base
	selected *T
}

func (m pickerModel[T]) Init() tea.Cmd {
	return nil
}

func (m pickerModel[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.base.Update(msg)

	if m.base.Chosen() {
		if item, ok := m.base.SelectedItem().(T); ok {
			m.selected = &item
		}
	}

	return m, cmd
}

func (m pickerModel[T]) View() string {
	return m.base.View()
}

func runPicker[T list.Item](items []T, title string) (T, error) {
	var zero T
	listItems := make([]list.Item, len(items))
	for i, it := range items {
		listItems[i] = it
	}

	l := list.New(listItems, delegate.New(renderLine), 0, 0)
	l.Title = title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = StyleHeader
	l.Styles.PaginationStyle = StyleHelp
	l.Styles.HelpStyle = StyleHelp

	keys := NewPickerKeys()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Select}
	}

	base := picker.New(picker.Config{
		List:        l,
		QuitKeys:    keys.Quit,
		SelectKeys:  keys.Select,
		ShowBorder:  true,
		BorderStyle: StyleBorder,
	})

	p := tea.NewProgram(pickerModel[T]{base: base}, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return zero, fmt.Errorf("running picker: %w", err)
	}

	fm, ok := finalModel.(pickerModel[T])
	if !ok {
		return zero, fmt.Errorf("unexpected model type")
	}
	if fm.base.Error() != nil {
		return zero, fm.base.Error()
	}
	if fm.selected == nil {
		return zero, picker.ErrCanceled
	}
	return *fm.selected, nil
}

// RunGamePicker lets the user choose a played game and returns its index.
func RunGamePicker(games []library.GameRecord, title string) (int, error) {
	if len(games) == 0 {
		return -1, fmt.Errorf("no games to display")
	}
	if title == "" {
		title = "Select a game"
	}
	items := make([]GameItem, len(games))
	for i, g := range games {
		items[i] = GameItem{Game: g}
	}
	sel, err := runPicker(items, title)
	if err != nil {
		return -1, err
	}
	return sel.Game.Index, nil
}

// RunWishPicker lets the user choose a wishlist entry and returns its index.
func RunWishPicker(wishlist []library.WishlistItem, title string) (int, error) {
	if len(wishlist) == 0 {
		return -1, fmt.Errorf("wishlist is empty")
	}
	if title == "" {
		title = "Select a wishlist entry"
	}
	items := make([]WishItem, len(wishlist))
	for i, w := range wishlist {
		items[i] = WishItem{Item: w}
	}
	sel, err := runPicker(items, title)
	if err != nil {
		return -1, err
	}
	return sel.Item.Index, nil
}

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/blackwell-systems/gamectl/internal/dates"
)

// DateFormDefaults prefill the date form.
type DateFormDefaults struct {
	Title      string
	StartDate  string
	FinishDate string
	Now        func() time.Time
}

// DateFormData is what the form returns. Both values are in storage form;
// a date whose three fields were left blank comes back as "".
type DateFormData struct {
	StartDate  string
	FinishDate string
}

// field order: start y/m/d, finish y/m/d
const (
	fieldStartYear = iota
	fieldStartMonth
	fieldStartDay
	fieldFinishYear
	fieldFinishMonth
	fieldFinishDay
	fieldCount
)

type dateFormModel struct {
	inputs    []textinput.Model
	focused   int
	keys      FormKeys
	defaults  DateFormDefaults
	now       func() time.Time
	result    *DateFormData
	err       error
	canceled  bool
	activeCmd string
}

func newDateForm(defaults DateFormDefaults) dateFormModel {
	m := dateFormModel{
		inputs:   make([]textinput.Model, fieldCount),
		keys:     NewFormKeys(),
		defaults: defaults,
		now:      defaults.Now,
	}
	if m.now == nil {
		m.now = time.Now
	}

	for i := range m.inputs {
		in := textinput.New()
		in.Prompt = "│ "
		if i%3 == 0 {
			in.Placeholder = "YYYY"
			in.CharLimit = 4
			in.Width = 6
		} else {
			in.Placeholder = "MM"
			if i%3 == 2 {
				in.Placeholder = "DD"
			}
			in.CharLimit = 2
			in.Width = 4
		}
		m.inputs[i] = in
	}
	m.setDate(fieldStartYear, defaults.StartDate)
	m.setDate(fieldFinishYear, defaults.FinishDate)
	m.inputs[0].Focus()
	return m
}

// setDate fills the three inputs starting at first from a stored value.
func (m *dateFormModel) setDate(first int, v string) {
	y, mo, d := dates.SplitToFields(v)
	m.inputs[first].SetValue(y)
	m.inputs[first+1].SetValue(mo)
	m.inputs[first+2].SetValue(d)
}

func (m dateFormModel) value(first int) string {
	y := m.inputs[first].Value()
	mo := m.inputs[first+1].Value()
	d := m.inputs[first+2].Value()
	if strings.TrimSpace(y+mo+d) == "" {
		return ""
	}
	return dates.ParseFromFields(y, mo, d)
}

// collect validates both dates and returns the form result.
func (m dateFormModel) collect() (*DateFormData, error) {
	out := &DateFormData{
		StartDate:  m.value(fieldStartYear),
		FinishDate: m.value(fieldFinishYear),
	}
	if err := dates.Check(out.StartDate); err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	if err := dates.Check(out.FinishDate); err != nil {
		return nil, fmt.Errorf("finish: %w", err)
	}
	return out, nil
}

func (m dateFormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m dateFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ClearActiveCmdMsg:
		m.activeCmd = ""
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Cancel):
			m.canceled = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Submit):
			res, err := m.collect()
			if err != nil {
				m.err = err
				return m, nil
			}
			m.result = res
			return m, tea.Quit

		case key.Matches(msg, m.keys.Today):
			m.setDate(m.group(), dates.Today(m.now()))
			m.activeCmd = "today"
			return m, HighlightCmd()

		case key.Matches(msg, m.keys.Clear):
			m.setDate(m.group(), "")
			m.activeCmd = "clear"
			return m, HighlightCmd()

		case key.Matches(msg, m.keys.Next), key.Matches(msg, m.keys.Prev):
			if key.Matches(msg, m.keys.Prev) {
				m.focused--
			} else {
				m.focused++
			}
			m.focused = (m.focused + fieldCount) % fieldCount
			return m, m.refocus()
		}
	}

	cmd := m.updateInputs(msg)
	return m, cmd
}

// group returns the first field of the date the cursor is in.
func (m dateFormModel) group() int {
	return m.focused - m.focused%3
}

func (m *dateFormModel) refocus() tea.Cmd {
	cmds := make([]tea.Cmd, 0, 2)
	for i := range m.inputs {
		if i == m.focused {
			cmds = append(cmds, m.inputs[i].Focus())
		} else {
			m.inputs[i].Blur()
		}
	}
	m.activeCmd = "tab"
	cmds = append(cmds, HighlightCmd())
	return tea.Batch(cmds...)
}

func (m *dateFormModel) updateInputs(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}
	return tea.Batch(cmds...)
}

func (m dateFormModel) View() string {
	label := lipgloss.NewStyle().
		Foreground(ColorGray).
		Width(10).
		Align(lipgloss.Right).
		PaddingRight(1)
	labelActive := label.
		Foreground(ColorYellow).
		Bold(true)

	var b strings.Builder
	b.WriteString(StyleHeader.Render("Edit Dates"))
	b.WriteString("\n")
	b.WriteString(StyleHelp.Render(m.defaults.Title))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(StyleError.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	}

	for _, row := range []struct {
		name  string
		first int
	}{{"Start", fieldStartYear}, {"Finish", fieldFinishYear}} {
		if m.group() == row.first {
			b.WriteString(labelActive.Render("› " + row.name))
		} else {
			b.WriteString(label.Render(row.name))
		}
		for i := row.first; i < row.first+3; i++ {
			b.WriteString(m.inputs[i].View())
			b.WriteString(" ")
		}
		b.WriteString("\n\n")
	}

	b.WriteString(RenderFooterBar([]ShortcutEntry{
		{Key: "tab", Label: "tab/↑↓ navigate"},
		{Key: "today", Label: "ctrl+t today"},
		{Key: "clear", Label: "ctrl+x clear"},
		{Key: "", Label: "enter save"},
		{Key: "", Label: "esc cancel"},
	}, m.activeCmd))
	b.WriteString("\n")

	inner := lipgloss.NewStyle().Padding(0, 2, 0, 1)
	return lipgloss.NewStyle().Padding(1, 2).Render(StyleBorder.Render(inner.Render(b.String())))
}

// RunDateForm launches the interactive start/finish date editor.
func RunDateForm(defaults DateFormDefaults) (*DateFormData, error) {
	p := tea.NewProgram(newDateForm(defaults), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("running form: %w", err)
	}

	fm, ok := finalModel.(dateFormModel)
	if !ok {
		return nil, fmt.Errorf("unexpected model type")
	}
	if fm.canceled {
		return nil, ErrCanceled
	}
	if fm.result == nil {
		return nil, fmt.Errorf("no data collected")
	}
	return fm.result, nil
}

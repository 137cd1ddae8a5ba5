package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/freementors/mentorctl/internal/platform"
)

// browserKeyMap defines the keyboard shortcuts for the mentor browser.
type browserKeyMap struct {
	Select key.Binding
	Quit   key.Binding
}

var browserKeys = browserKeyMap{
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select mentor"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// BrowserModel is the interactive mentor browser. Selecting a row returns
// the mentor's email to the caller for a follow-up action.
type BrowserModel struct {
	table    table.Model
	mentors  []platform.Mentor
	styles   Styles
	selected string
	quitting bool
}

// NewBrowserModel creates a browser over the given mentor list.
func NewBrowserModel(mentors []platform.Mentor) *BrowserModel {
	columns := []table.Column{
		{Title: "Name", Width: 24},
		{Title: "Email", Width: 28},
		{Title: "Occupation", Width: 20},
		{Title: "Expertise", Width: 24},
	}

	rows := make([]table.Row, 0, len(mentors))
	for _, m := range mentors {
		rows = append(rows, table.Row{
			m.FirstName + " " + m.LastName,
			m.Email,
			m.Occupation,
			m.Expertise,
		})
	}

	height := len(rows)
	if height > 12 {
		height = 12
	}
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	ts.Selected = ts.Selected.
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("12")).
		Bold(true)
	t.SetStyles(ts)

	return &BrowserModel{
		table:   t,
		mentors: mentors,
		styles:  DefaultStyles(),
	}
}

// Selected returns the email of the chosen mentor, empty if none.
func (m *BrowserModel) Selected() string {
	return m.selected
}

// Init implements tea.Model.
func (m *BrowserModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, browserKeys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, browserKeys.Select):
			if row := m.table.SelectedRow(); len(row) > 1 {
				m.selected = row[1]
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *BrowserModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Browse mentors"))
	b.WriteString("\n\n")
	b.WriteString(m.table.View())
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("↑/↓ navigate • enter select • q quit"))
	b.WriteString("\n")
	return b.String()
}

// BrowseMentors runs the browser and returns the selected mentor's email.
// An empty string means the user quit without choosing.
func BrowseMentors(mentors []platform.Mentor) (string, error) {
	model := NewBrowserModel(mentors)

	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return "", err
	}

	if m, ok := final.(*BrowserModel); ok {
		return m.Selected(), nil
	}
	return "", nil
}

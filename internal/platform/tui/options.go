package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/simplesmart/internal/storage"
)

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))

// OptionsModel edits the player name.
// Enter saves (to the profile store when there is one), Esc cancels.
type OptionsModel struct {
	input    textinput.Model
	store    *storage.Store
	name     string
	width    int
	height   int
	err      error
	done     bool
	quitting bool
}

// NewOptionsModel creates the options screen for the current player name.
func NewOptionsModel(store *storage.Store, name string, width, height int) OptionsModel {
	ti := textinput.New()
	ti.Placeholder = storage.DefaultName()
	ti.CharLimit = storage.MaxNameLength
	ti.Width = storage.MaxNameLength
	ti.Prompt = "Name: "
	ti.SetValue(name)
	ti.Focus()

	return OptionsModel{
		input:  ti,
		store:  store,
		name:   name,
		width:  width,
		height: height,
	}
}

// Init starts the cursor blink.
func (m OptionsModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the options screen.
func (m OptionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, nil
		case "esc":
			m.done = true
			return m, nil
		case "enter":
			return m.save(), nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// save stores the edited name and leaves the screen on success.
func (m OptionsModel) save() OptionsModel {
	name := storage.NormalizeName(m.input.Value())
	if name == "" {
		m.err = storage.ErrEmptyName
		return m
	}

	if m.store != nil {
		if err := m.store.SetName(name); err != nil {
			m.err = err
			return m
		}
	}

	m.name = name
	m.err = nil
	m.done = true
	return m
}

// View renders the options screen.
func (m OptionsModel) View() string {
	rows := []string{
		headingStyle.Render("OPTIONS"),
		panelStyle.Render(m.input.View()),
	}
	if m.err != nil {
		rows = append(rows, errorStyle.Render(m.err.Error()))
	}
	rows = append(rows, hintStyle.Render("Enter: save  |  Esc: menu"))

	content := lipgloss.JoinVertical(lipgloss.Center, rows...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// Name returns the player name, updated once it has been saved.
func (m OptionsModel) Name() string {
	return m.name
}

// Done reports whether the player went back to the title.
func (m OptionsModel) Done() bool {
	return m.done
}

// IsQuitting returns true if the user requested to quit entirely.
func (m OptionsModel) IsQuitting() bool {
	return m.quitting
}

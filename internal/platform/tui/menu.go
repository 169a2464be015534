package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TitleChoice is what the player picked on the title screen.
type TitleChoice int

const (
	ChoiceNone TitleChoice = iota
	ChoiceStart
	ChoiceTutorial
	ChoiceCredits
	ChoiceOptions
	ChoiceHighscores
	ChoiceQuit
)

// MenuItem is one entry of the title screen.
type MenuItem struct {
	Label  string
	Hotkey string
	Choice TitleChoice
}

var titleItems = []MenuItem{
	{Label: "Start", Hotkey: "S", Choice: ChoiceStart},
	{Label: "Tutorial", Hotkey: "T", Choice: ChoiceTutorial},
	{Label: "Highscore", Hotkey: "H", Choice: ChoiceHighscores},
	{Label: "Options", Hotkey: "O", Choice: ChoiceOptions},
	{Label: "Credits", Hotkey: "C", Choice: ChoiceCredits},
	{Label: "Quit", Hotkey: "Q", Choice: ChoiceQuit},
}

var banner = []string{
	` ___ _            _       ___                _   `,
	`/ __(_)_ __  _ __| |___  / __|_ __  __ _ _ _| |_ `,
	`\__ \ | '  \| '_ \ / -_) \__ \ '  \/ _' | '_|  _|`,
	`|___/_|_|_|_| .__/_\___| |___/_|_|_\__,_|_|  \__|`,
	`            |_|                                  `,
}

const apoTagline = "an apo game"

var (
	bannerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true)
	taglineStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Italic(true)
	itemStyle     = lipgloss.NewStyle()
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the title screen.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	showApo   bool
	keyMapper *KeyMapper
	choice    TitleChoice
}

// NewMenuModel creates a new title screen model.
func NewMenuModel(width, height int, showApo bool) MenuModel {
	return MenuModel{
		items:     titleItems,
		width:     width,
		height:    height,
		showApo:   showApo,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// handleKey processes hotkeys and cursor navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.choice = m.items[m.cursor].Choice
	case MenuActionStart:
		m.choice = ChoiceStart
	case MenuActionTutorial:
		m.choice = ChoiceTutorial
	case MenuActionCredits:
		m.choice = ChoiceCredits
	case MenuActionOptions:
		m.choice = ChoiceOptions
	case MenuActionHighscores:
		m.choice = ChoiceHighscores
	case MenuActionQuit:
		m.choice = ChoiceQuit
	}

	return m, nil
}

// View renders the title screen.
func (m MenuModel) View() string {
	var b strings.Builder

	b.WriteString(bannerStyle.Render(strings.Join(banner, "\n")))
	b.WriteString("\n")
	if m.showApo {
		b.WriteString(taglineStyle.Render(apoTagline))
	}
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "[" + item.Hotkey + "] " + item.Label
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString(itemStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(hintStyle.Render("Press a hotkey or use Up/Down and Enter"))

	content := lipgloss.JoinVertical(lipgloss.Center, strings.Split(b.String(), "\n")...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// Choice returns the picked entry, or ChoiceNone while the menu is open.
func (m MenuModel) Choice() TitleChoice {
	return m.choice
}

package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/simplesmart/internal/games/smart"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).MarginBottom(1)
	panelStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2)
	pieceStyles = map[smart.CellColor]lipgloss.Style{
		smart.ColorNone:  lipgloss.NewStyle(),
		smart.ColorBlue:  lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		smart.ColorRed:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		smart.ColorGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		smart.ColorWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	}
)

// piece renders one board glyph the way the game draws it.
func piece(d smart.Direction, c smart.CellColor) string {
	return pieceStyles[c].Render(string(smart.Glyph(d)))
}

func tutorialLines() []string {
	return []string{
		piece(smart.DirRight, smart.ColorNone) + "  Start moving by picking a plain piece and following it",
		"   with ; or Enter. Move the cursor with WASD, arrows or hjkl.",
		"",
		piece(smart.DirUp, smart.ColorBlue) + piece(smart.DirLeft, smart.ColorRed) +
			" Colored pieces can't start a chain, but chains pass over them.",
		"",
		"Whenever a new piece is reached, the chain turns to its arrow:",
		"  " + piece(smart.DirUp, smart.ColorNone) + " up   " +
			piece(smart.DirRight, smart.ColorNone) + " right   " +
			piece(smart.DirDown, smart.ColorNone) + " down   " +
			piece(smart.DirLeft, smart.ColorNone) + " left",
		"",
		"Every step scores a point. A chain ends when it leaves the board,",
		"hits an empty cell or comes back to a piece it already crossed.",
	}
}

func creditsLines(showApo bool) []string {
	lines := []string{
		"Simple Smart, a terminal arrow-chain puzzle",
		"",
	}
	if showApo {
		lines = append(lines,
			"Devs at Apo-Games for the original game",
			"",
		)
	}
	return append(lines,
		"Built with Bubble Tea, Lip Gloss and Bubbles by Charm",
		"Scores kept with modernc.org/sqlite",
	)
}

// InfoModel shows a static page until the player goes back.
type InfoModel struct {
	title    string
	lines    []string
	width    int
	height   int
	done     bool
	quitting bool
}

// NewTutorialModel creates the tutorial screen.
func NewTutorialModel(width, height int) InfoModel {
	return InfoModel{title: "TUTORIAL", lines: tutorialLines(), width: width, height: height}
}

// NewCreditsModel creates the credits screen.
func NewCreditsModel(width, height int, showApo bool) InfoModel {
	return InfoModel{title: "CREDITS", lines: creditsLines(showApo), width: width, height: height}
}

// Init initializes the screen.
func (m InfoModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the screen.
func (m InfoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case msg.String() == "ctrl+c", msg.String() == "q":
			m.quitting = true
		case IsBackKey(msg):
			m.done = true
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// View renders the page.
func (m InfoModel) View() string {
	body := panelStyle.Render(strings.Join(m.lines, "\n"))
	content := lipgloss.JoinVertical(lipgloss.Center,
		headingStyle.Render(m.title),
		body,
		hintStyle.Render("M/Enter: menu  |  Q: quit"),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// Done reports whether the player went back to the title.
func (m InfoModel) Done() bool {
	return m.done
}

// IsQuitting returns true if the user requested to quit entirely.
func (m InfoModel) IsQuitting() bool {
	return m.quitting
}

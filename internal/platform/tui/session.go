package tui

import (
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/simplesmart/internal/games/smart"
	"github.com/vovakirdan/simplesmart/internal/registry"
)

type sessionScreen int

const (
	screenTitle sessionScreen = iota
	screenGame
	screenTutorial
	screenCredits
	screenOptions
	screenHighscores
)

// SessionModel manages the full flow: title -> game or sub-screen -> title.
// It is the top-level model for both the menu command and SSH sessions.
type SessionModel struct {
	opts     Options
	gameID   string
	width    int
	height   int
	screen   sessionScreen
	title    MenuModel
	game     *GameModel
	info     InfoModel
	options  OptionsModel
	scores   ScoreboardModel
	quitting bool

	// seeds deals a new board seed on every Start; nil when the caller fixed the seed.
	seeds *rand.Rand
}

// NewSessionModel creates a new session model starting on the title screen.
func NewSessionModel(opts Options) SessionModel {
	var seeds *rand.Rand
	if opts.Runtime.Seed == 0 {
		seeds = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	opts = opts.normalized()
	w, h := opts.Runtime.ScreenW, opts.Runtime.ScreenH

	return SessionModel{
		seeds:  seeds,
		opts:   opts,
		gameID: smart.GameID,
		width:  w,
		height: h,
		title:  NewMenuModel(w, h, opts.Config.PutApoInScreens),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.title.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
		m.opts.Runtime.ScreenW = wsm.Width
		m.opts.Runtime.ScreenH = wsm.Height
	}

	var cmd tea.Cmd
	switch m.screen {
	case screenGame:
		m, cmd = m.updateGame(msg)
	case screenTutorial, screenCredits:
		m, cmd = m.updateInfo(msg)
	case screenOptions:
		m, cmd = m.updateOptions(msg)
	case screenHighscores:
		m, cmd = m.updateScores(msg)
	default:
		m, cmd = m.updateTitle(msg)
	}

	if m.quitting {
		return m, tea.Quit
	}
	return m, cmd
}

// updateTitle handles the title screen and opens the picked screen.
func (m SessionModel) updateTitle(msg tea.Msg) (SessionModel, tea.Cmd) {
	next, cmd := m.title.Update(msg)
	m.title = next.(MenuModel)

	switch m.title.Choice() {
	case ChoiceStart:
		return m.startGame()
	case ChoiceTutorial:
		m.info = NewTutorialModel(m.width, m.height)
		m.screen = screenTutorial
	case ChoiceCredits:
		m.info = NewCreditsModel(m.width, m.height, m.opts.Config.PutApoInScreens)
		m.screen = screenCredits
	case ChoiceOptions:
		m.options = NewOptionsModel(m.opts.Store, m.opts.Player, m.width, m.height)
		m.screen = screenOptions
		return m, m.options.Init()
	case ChoiceHighscores:
		m.scores = NewScoreboardModel(m.opts.Store, m.gameID, "Simple Smart", m.width, m.height)
		m.screen = screenHighscores
	case ChoiceQuit:
		m.quitting = true
	}

	return m, cmd
}

// startGame creates a fresh board. A fixed seed replays the same board;
// otherwise every Start draws a new seed.
func (m SessionModel) startGame() (SessionModel, tea.Cmd) {
	game, err := registry.Create(m.gameID)
	if err != nil {
		m.opts.Logger.Error("could not create game", "error", err)
		m.backToTitle()
		return m, nil
	}

	opts := m.opts
	opts.Runtime.ScreenW = m.width
	opts.Runtime.ScreenH = m.height
	if m.seeds != nil {
		opts.Runtime.Seed = m.seeds.Int63()
	}
	gameModel := NewGameModel(game, opts)
	m.game = &gameModel
	m.screen = screenGame

	return m, m.game.Init()
}

func (m SessionModel) updateGame(msg tea.Msg) (SessionModel, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	gameModel := next.(GameModel)
	m.game = &gameModel

	switch {
	case m.game.IsQuitting():
		m.quitting = true
	case m.game.BackToMenu():
		m.game = nil
		m.backToTitle()
		return m, nil
	}
	return m, cmd
}

func (m SessionModel) updateInfo(msg tea.Msg) (SessionModel, tea.Cmd) {
	next, cmd := m.info.Update(msg)
	m.info = next.(InfoModel)

	switch {
	case m.info.IsQuitting():
		m.quitting = true
	case m.info.Done():
		m.backToTitle()
	}
	return m, cmd
}

func (m SessionModel) updateOptions(msg tea.Msg) (SessionModel, tea.Cmd) {
	next, cmd := m.options.Update(msg)
	m.options = next.(OptionsModel)

	switch {
	case m.options.IsQuitting():
		m.quitting = true
	case m.options.Done():
		m.opts.Player = m.options.Name()
		m.backToTitle()
		return m, nil
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (SessionModel, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	m.scores = next.(ScoreboardModel)

	switch {
	case m.scores.IsQuitting():
		m.quitting = true
	case m.scores.Done():
		m.backToTitle()
	}
	return m, cmd
}

// backToTitle resets the title screen so its previous choice is cleared.
func (m *SessionModel) backToTitle() {
	m.title = NewMenuModel(m.width, m.height, m.opts.Config.PutApoInScreens)
	m.screen = screenTitle
}

// View renders the current screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenTutorial, screenCredits:
		return m.info.View()
	case screenOptions:
		return m.options.View()
	case screenHighscores:
		return m.scores.View()
	}
	return m.title.View()
}

// Player returns the current player name.
func (m SessionModel) Player() string {
	return m.opts.Player
}

// RunSession runs the title screen flow in its own Bubble Tea program.
func RunSession(opts Options) error {
	p := tea.NewProgram(
		NewSessionModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

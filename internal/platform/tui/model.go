package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/simplesmart/internal/config"
	"github.com/vovakirdan/simplesmart/internal/core"
	"github.com/vovakirdan/simplesmart/internal/games/smart"
	"github.com/vovakirdan/simplesmart/internal/registry"
	"github.com/vovakirdan/simplesmart/internal/storage"
)

// Options carries everything a session needs from its caller.
// Nothing here is global; the CLI and the SSH server build one per session.
type Options struct {
	Store   *storage.Store // nil runs without persistence
	Config  config.Config
	Runtime core.RuntimeConfig
	Logger  *log.Logger // debug stream of walked chains; nil discards
	Record  bool        // save the session's best chain on exit
	Player  string      // empty resolves to the stored profile name
}

// normalized fills in the logger, seed and player name.
func (o Options) normalized() Options {
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.Runtime.Seed == 0 {
		o.Runtime.Seed = time.Now().UnixNano()
	}
	if o.Player == "" {
		o.Player = storage.DefaultName()
		if o.Store != nil {
			if name, err := o.Store.Name(); err == nil {
				o.Player = name
			}
		}
	}
	return o
}

type trailAnimator interface {
	AdvanceTrail() bool
	RevealTrail()
}

type chainWalker interface {
	LastWalk() smart.Walk
}

// GameModel is the Bubble Tea model running one puzzle session.
// Input is event driven: every key is applied to the game before the next
// frame is drawn. The only timer replays the last chain's trail.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	keyMapper  *KeyMapper
	trailGen   int
	standalone bool // q quits the program instead of returning to the title
	quitting   bool
	backToMenu bool
	recorded   bool
}

// NewGameModel creates a new Bubble Tea model for the given game.
func NewGameModel(game registry.Game, opts Options) GameModel {
	opts = opts.normalized()

	return GameModel{
		game:      game,
		screen:    core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		opts:      opts,
		keyMapper: NewKeyMapper(),
	}
}

// Init starts the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.opts.Runtime)
	m.opts.Logger.Debug("board generated",
		"game", m.game.ID(),
		"seed", m.opts.Runtime.Seed,
		"width", m.opts.Runtime.MatrixW,
		"height", m.opts.Runtime.MatrixH,
	)
	return nil
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TrailTickMsg:
		return m.handleTrailTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)

	switch {
	case isQuit:
		m.finish()
		m.quitting = true
		return m, tea.Quit

	case action == core.ActionQuit, action == core.ActionBack:
		m.finish()
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
		return m, nil

	case action == core.ActionNone:
		return m, nil
	}

	result := m.game.Step(core.FrameOf(action))
	if !result.Walked {
		return m, nil
	}

	m.logWalk()
	return m, m.startTrail()
}

// handleResize keeps the board and follows the new terminal size.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.opts.Runtime.ScreenW = msg.Width
	m.opts.Runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else {
		m.game.Reset(m.opts.Runtime)
	}

	return m, nil
}

// handleTrailTick reveals one more step of the current trail.
// Ticks from an earlier follow are dropped.
func (m GameModel) handleTrailTick(msg TrailTickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.trailGen {
		return m, nil
	}
	t, ok := m.game.(trailAnimator)
	if !ok {
		return m, nil
	}
	if t.AdvanceTrail() {
		return m, trailTickCmd(m.trailStep(), m.trailGen)
	}
	return m, nil
}

func (m GameModel) trailStep() time.Duration {
	return time.Duration(m.opts.Config.Trail.StepMillis) * time.Millisecond
}

// startTrail begins replaying the last walk, or shows it at once when the
// animation is off.
func (m *GameModel) startTrail() tea.Cmd {
	t, ok := m.game.(trailAnimator)
	if !ok {
		return nil
	}

	m.trailGen++
	step := m.trailStep()
	if step <= 0 {
		t.RevealTrail()
		return nil
	}
	return trailTickCmd(step, m.trailGen)
}

// logWalk writes every step of the last chain as "x y : score".
func (m GameModel) logWalk() {
	w, ok := m.game.(chainWalker)
	if !ok {
		return
	}

	walk := w.LastWalk()
	for i, p := range walk.Path {
		m.opts.Logger.Debugf("%d %d : %d", p.Col, p.Row, i+1)
	}
	m.opts.Logger.Debug("chain resolved",
		"start", walk.Start.String(),
		"state", walk.State.String(),
		"score", walk.Score,
	)
}

// finish records the session's best chain once, if the caller asked for it.
func (m *GameModel) finish() {
	if m.recorded || !m.opts.Record || m.opts.Store == nil {
		return
	}
	m.recorded = true

	best := m.game.State().Best
	if best <= 0 {
		return
	}

	kept, err := m.opts.Store.SaveHighscore(m.game.ID(), m.opts.Player, best, 1)
	if err != nil {
		m.opts.Logger.Error("could not save highscore", "error", err)
		return
	}
	m.opts.Logger.Debug("highscore recorded", "player", m.opts.Player, "score", best, "kept", kept)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the title.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in its own Bubble Tea program.
func Run(game registry.Game, opts Options) error {
	model := NewGameModel(game, opts)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

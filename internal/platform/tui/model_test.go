package tui

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/simplesmart/internal/config"
	"github.com/vovakirdan/simplesmart/internal/games/smart"
	"github.com/vovakirdan/simplesmart/internal/storage"
)

func testOptions(seed int64) Options {
	cfg := config.DefaultConfig()
	cfg.Trail.StepMillis = 0
	return Options{
		Config:  cfg,
		Runtime: cfg.Runtime(seed),
		Player:  "tester",
	}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func send(t *testing.T, m tea.Model, msgs ...tea.Msg) (tea.Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		m, cmd = m.Update(msg)
	}
	return m, cmd
}

// scoringStart finds a seed whose board has a chain worth at least one point.
func scoringStart(t *testing.T) (int64, smart.Position) {
	t.Helper()
	for seed := int64(1); seed < 100; seed++ {
		g := smart.New()
		g.Reset(testOptions(seed).Runtime)
		b := g.Board()
		for row := range b.H {
			for col := range b.W {
				p := smart.Position{Row: row, Col: col}
				if w := smart.Follow(b, p); w.State != smart.WalkRejected && w.Score > 0 {
					return seed, p
				}
			}
		}
	}
	t.Fatal("no scoring chain found")
	return 0, smart.Position{}
}

// moveTo walks the cursor from the top-left corner to p.
func moveTo(p smart.Position) []tea.Msg {
	var msgs []tea.Msg
	for range p.Col {
		msgs = append(msgs, runeKey('d'))
	}
	for range p.Row {
		msgs = append(msgs, runeKey('s'))
	}
	return msgs
}

func newTestGameModel(opts Options) (GameModel, *smart.Game) {
	g := smart.New()
	m := NewGameModel(g, opts)
	m.Init()
	return m, g
}

func TestGameModelQuitStandalone(t *testing.T) {
	m, _ := newTestGameModel(testOptions(1))
	m.standalone = true

	next, cmd := send(t, m, runeKey('q'))
	gm := next.(GameModel)
	if !gm.IsQuitting() {
		t.Error("q should quit a standalone game")
	}
	if cmd == nil {
		t.Error("quitting should return a command")
	}
	if gm.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestGameModelBackInSession(t *testing.T) {
	m, _ := newTestGameModel(testOptions(1))

	next, _ := send(t, m, runeKey('q'))
	gm := next.(GameModel)
	if gm.IsQuitting() {
		t.Error("q inside a session should not quit the program")
	}
	if !gm.BackToMenu() {
		t.Error("q inside a session should go back to the title")
	}
}

func TestGameModelMovesCursor(t *testing.T) {
	m, g := newTestGameModel(testOptions(1))

	send(t, m, runeKey('d'), tea.KeyMsg{Type: tea.KeyRight}, runeKey('j'))
	if c := g.Cursor(); c.Row != 1 || c.Col != 2 {
		t.Errorf("cursor = %+v, want (1,2)", c)
	}
}

func TestGameModelLogsWalk(t *testing.T) {
	seed, start := scoringStart(t)

	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	opts := testOptions(seed)
	opts.Logger = logger
	m, g := newTestGameModel(opts)

	msgs := append(moveTo(start), runeKey(';'))
	send(t, m, msgs...)

	walk := g.LastWalk()
	if walk.Score == 0 {
		t.Fatalf("expected a scoring walk from %s", start)
	}
	first := walk.Path[0]
	want := fmt.Sprintf("%d %d : 1", first.Col, first.Row)
	if !strings.Contains(buf.String(), want) {
		t.Errorf("debug log missing %q:\n%s", want, buf.String())
	}
	if !strings.Contains(buf.String(), "chain resolved") {
		t.Error("debug log should summarize the chain")
	}
}

func TestGameModelRecordsBest(t *testing.T) {
	seed, start := scoringStart(t)
	store := openStore(t)

	opts := testOptions(seed)
	opts.Store = store
	opts.Record = true
	m, g := newTestGameModel(opts)

	msgs := append(moveTo(start), runeKey(';'), runeKey('q'))
	send(t, m, msgs...)

	entries, err := store.Highscores(smart.GameID)
	if err != nil {
		t.Fatalf("Highscores: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	if entries[0].Score != g.State().Best || entries[0].Name != "tester" || entries[0].Level != 1 {
		t.Errorf("entry = %+v, best = %d", entries[0], g.State().Best)
	}
}

func TestGameModelDoesNotRecordByDefault(t *testing.T) {
	seed, start := scoringStart(t)
	store := openStore(t)

	opts := testOptions(seed)
	opts.Store = store
	m, _ := newTestGameModel(opts)

	msgs := append(moveTo(start), runeKey(';'), runeKey('q'))
	send(t, m, msgs...)

	if entries, _ := store.Highscores(smart.GameID); len(entries) != 0 {
		t.Errorf("nothing should be recorded without opting in, got %d", len(entries))
	}
}

func TestGameModelTrailTicks(t *testing.T) {
	seed, start := scoringStart(t)

	opts := testOptions(seed)
	opts.Config.Trail.StepMillis = 10
	m, g := newTestGameModel(opts)

	msgs := append(moveTo(start), runeKey(';'))
	next, cmd := send(t, m, msgs...)
	if cmd == nil {
		t.Fatal("a follow should schedule the trail animation")
	}
	gm := next.(GameModel)

	// A tick from an older follow is ignored.
	send(t, gm, TrailTickMsg{Gen: gm.trailGen - 1})
	if g.TrailShown() != 0 {
		t.Errorf("stale tick revealed %d steps", g.TrailShown())
	}

	send(t, gm, TrailTickMsg{Gen: gm.trailGen})
	if g.TrailShown() != 1 {
		t.Errorf("trail shown = %d, want 1", g.TrailShown())
	}
}

func TestGameModelTrailDisabledRevealsAtOnce(t *testing.T) {
	seed, start := scoringStart(t)
	m, g := newTestGameModel(testOptions(seed))

	msgs := append(moveTo(start), runeKey(';'))
	_, cmd := send(t, m, msgs...)
	if cmd != nil {
		t.Error("no tick should be scheduled when the animation is off")
	}
	if g.TrailShown() != len(g.LastWalk().Path) {
		t.Errorf("trail shown = %d, want %d", g.TrailShown(), len(g.LastWalk().Path))
	}
}

func TestGameModelResizeKeepsBoard(t *testing.T) {
	m, g := newTestGameModel(testOptions(3))
	before := g.Board().Clone()

	send(t, m, runeKey('d'), tea.WindowSizeMsg{Width: 100, Height: 30})
	if !g.Board().Equal(before) {
		t.Error("resize should not regenerate the board")
	}
	if g.Cursor().Col != 1 {
		t.Error("resize should keep the cursor")
	}
}

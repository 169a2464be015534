package smart

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/simplesmart/internal/core"
	"github.com/vovakirdan/simplesmart/internal/registry"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW: 80,
		ScreenH: 25,
		MatrixW: 7,
		MatrixH: 7,
		Seed:    seed,
	}
}

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New()
	g.Reset(testConfig(seed))
	return g
}

func TestRegistered(t *testing.T) {
	if !registry.Exists(GameID) {
		t.Fatalf("game %q should be registered", GameID)
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(t, 12345)
	g2 := newTestGame(t, 12345)

	inputs := []core.Action{
		core.ActionRight, core.ActionDown, core.ActionFollow,
		core.ActionDown, core.ActionDown, core.ActionFollow,
		core.ActionLeft, core.ActionFollow,
	}
	for _, a := range inputs {
		g1.Step(core.FrameOf(a))
		g2.Step(core.FrameOf(a))
	}

	snap1 := g1.Snapshot()
	snap2 := g2.Snapshot()

	if !snap1.Board.Equal(snap2.Board) {
		t.Error("boards differ for the same seed")
	}
	if snap1.Cursor != snap2.Cursor {
		t.Errorf("cursor mismatch: %+v vs %+v", snap1.Cursor, snap2.Cursor)
	}
	if !reflect.DeepEqual(snap1.LastWalk, snap2.LastWalk) {
		t.Errorf("walk mismatch: %+v vs %+v", snap1.LastWalk, snap2.LastWalk)
	}
	if snap1.Score != snap2.Score || snap1.Best != snap2.Best || snap1.Follows != snap2.Follows {
		t.Errorf("score mismatch: %+v vs %+v", snap1, snap2)
	}
}

func TestCursorStartsAtOrigin(t *testing.T) {
	g := newTestGame(t, 1)
	if g.Cursor() != (Cursor{}) {
		t.Errorf("cursor = %+v, want (0,0)", g.Cursor())
	}
}

func TestStepMovesCursor(t *testing.T) {
	g := newTestGame(t, 1)

	g.Step(core.FrameOf(core.ActionRight))
	g.Step(core.FrameOf(core.ActionRight))
	g.Step(core.FrameOf(core.ActionDown))
	g.Step(core.FrameOf(core.ActionUp))
	g.Step(core.FrameOf(core.ActionUp)) // clamped
	g.Step(core.FrameOf(core.ActionLeft))

	if c := g.Cursor(); c.Row != 0 || c.Col != 1 {
		t.Errorf("cursor = %+v, want (0,1)", c)
	}
}

func TestFollowFromColoredPieceIsNoOp(t *testing.T) {
	g := newTestGame(t, 1)

	// Establish a previous walk to make sure it survives the rejection.
	setCell(g.board, Position{Row: 0, Col: 0}, Cell{Dir: DirUp})
	g.Step(core.FrameOf(core.ActionFollow))
	before := g.Snapshot()

	setCell(g.board, Position{Row: 0, Col: 0}, Cell{Dir: DirRight, Color: ColorBlue})
	boardBefore := g.board.Clone()

	result := g.Step(core.FrameOf(core.ActionFollow))
	after := g.Snapshot()

	if result.Walked {
		t.Error("rejected follow should not report a walk")
	}
	if !after.Rejected {
		t.Error("snapshot should flag the rejected follow")
	}
	if !g.board.Equal(boardBefore) {
		t.Error("board changed")
	}
	if after.Cursor != before.Cursor {
		t.Errorf("cursor changed: %+v -> %+v", before.Cursor, after.Cursor)
	}
	if after.Score != before.Score || after.Follows != before.Follows || after.Best != before.Best {
		t.Errorf("score changed: %+v -> %+v", before, after)
	}

	// The rejection flag clears on the next event.
	g.Step(core.FrameOf(core.ActionDown))
	if g.Snapshot().Rejected {
		t.Error("rejected flag should clear after the next step")
	}
}

func TestScoreIsPerChain(t *testing.T) {
	g := newTestGame(t, 1)
	g.board = NewBoard(3, 3, Cell{Dir: DirRight})

	result := g.Step(core.FrameOf(core.ActionFollow))
	if !result.Walked || result.State.Score != 2 {
		t.Fatalf("first chain = %+v, want walked with score 2", result)
	}

	g.Step(core.FrameOf(core.ActionRight))
	result = g.Step(core.FrameOf(core.ActionFollow))
	if result.State.Score != 1 {
		t.Errorf("second chain score = %d, want 1 (not accumulated)", result.State.Score)
	}
	if result.State.Best != 2 {
		t.Errorf("best = %d, want 2", result.State.Best)
	}
	if g.Snapshot().Follows != 2 {
		t.Errorf("follows = %d, want 2", g.Snapshot().Follows)
	}
}

func TestPauseBlocksInput(t *testing.T) {
	g := newTestGame(t, 1)

	g.Step(core.FrameOf(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}

	g.Step(core.FrameOf(core.ActionRight))
	if g.Cursor().Col != 0 {
		t.Error("cursor moved while paused")
	}

	g.Step(core.FrameOf(core.ActionPause))
	g.Step(core.FrameOf(core.ActionRight))
	if g.Cursor().Col != 1 {
		t.Error("cursor should move after unpausing")
	}
}

func TestTooSmallScreenIgnoresInput(t *testing.T) {
	g := New()
	cfg := testConfig(1)
	cfg.ScreenW, cfg.ScreenH = 10, 5
	g.Reset(cfg)

	g.Step(core.FrameOf(core.ActionRight))
	if g.Cursor().Col != 0 {
		t.Error("cursor moved on a too-small screen")
	}
	if g.Snapshot().State != StatePausedSmall {
		t.Errorf("state = %v, want %v", g.Snapshot().State, StatePausedSmall)
	}

	g.Resize(80, 25)
	g.Step(core.FrameOf(core.ActionRight))
	if g.Cursor().Col != 1 {
		t.Error("cursor should move once the screen is big enough")
	}
}

func TestPauseIgnoredOnTooSmallScreen(t *testing.T) {
	g := New()
	cfg := testConfig(1)
	cfg.ScreenW, cfg.ScreenH = 10, 5
	g.Reset(cfg)

	g.Step(core.FrameOf(core.ActionPause))
	g.Resize(80, 25)
	if g.State().Paused {
		t.Fatal("pause pressed on a too-small screen should not stick")
	}

	g.Step(core.FrameOf(core.ActionRight))
	if g.Cursor().Col != 1 {
		t.Error("cursor should move after the screen grows")
	}
}

func TestResetPanicsOnZeroMatrix(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Reset with a zero-width matrix should panic")
		}
	}()

	cfg := testConfig(1)
	cfg.MatrixW = 0
	New().Reset(cfg)
}

func TestTrailAnimation(t *testing.T) {
	g := newTestGame(t, 1)
	g.board = NewBoard(1, 4, Cell{Dir: DirRight})
	g.Step(core.FrameOf(core.ActionFollow))

	if g.TrailShown() != 0 {
		t.Fatalf("trail should start hidden, shown = %d", g.TrailShown())
	}

	steps := 0
	for g.AdvanceTrail() {
		steps++
	}
	if g.TrailShown() != 3 {
		t.Errorf("trail shown = %d, want 3", g.TrailShown())
	}
	if steps != 2 {
		t.Errorf("AdvanceTrail reported %d pending steps, want 2", steps)
	}

	g.Step(core.FrameOf(core.ActionFollow))
	g.RevealTrail()
	if g.TrailShown() != 3 {
		t.Errorf("RevealTrail shown = %d, want 3", g.TrailShown())
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	g := newTestGame(t, 1)
	snap := g.Snapshot()
	setCell(snap.Board, Position{}, Cell{Dir: DirNone, Color: ColorRed})

	if g.Board().At(Position{}) == snap.Board.At(Position{}) {
		t.Error("modifying the snapshot board changed the game")
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, 1)
	g.board = NewBoard(7, 7, Cell{Dir: DirUp})
	setCell(g.board, Position{Row: 0, Col: 1}, Cell{Dir: DirDown, Color: ColorRed})

	screen := core.NewScreen(80, 25)
	g.Render(screen)
	out := screen.String()

	if !strings.Contains(out, "Simple Smart") {
		t.Error("render should include the title")
	}
	if !strings.Contains(out, "[^]U ^") {
		t.Errorf("render should bracket the cursor and draw glyphs, got:\n%s", out)
	}

	found := false
	for y := range screen.Height() {
		for x := range screen.Width() {
			c := screen.GetCell(x, y)
			if c.Rune == 'U' && c.Color == core.ColorRed {
				found = true
			}
		}
	}
	if !found {
		t.Error("colored piece should be drawn in its color")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := New()
	cfg := testConfig(1)
	cfg.ScreenW, cfg.ScreenH = 20, 6
	g.Reset(cfg)

	screen := core.NewScreen(20, 6)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected too-small message")
	}
}

package smart

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot is a read-only copy of the session for renderers, replays and
// determinism tests.
type Snapshot struct {
	Tick     uint64
	Seed     int64
	Board    *Board // deep copy
	Cursor   Cursor
	LastWalk Walk
	Rejected bool
	Score    int
	Best     int
	Follows  int
	State    GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	}

	walk := g.lastWalk
	walk.Path = append([]Position(nil), g.lastWalk.Path...)

	return Snapshot{
		Tick:     g.tick,
		Seed:     g.seed,
		Board:    g.board.Clone(),
		Cursor:   g.cursor,
		LastWalk: walk,
		Rejected: g.rejected,
		Score:    g.lastWalk.Score,
		Best:     g.best,
		Follows:  g.follows,
		State:    state,
	}
}

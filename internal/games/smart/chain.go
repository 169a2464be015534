package smart

// WalkState is the phase of a chain walk.
type WalkState uint8

const (
	WalkIdle     WalkState = iota // no walk has been made
	WalkWalking                   // walk in progress
	WalkExited                    // walk left the board
	WalkBlocked                   // walk reached a DirNone piece
	WalkLooped                    // walk would re-enter a visited piece
	WalkRejected                  // start piece is colored, nothing happened
)

// String returns the string representation of a walk state.
func (s WalkState) String() string {
	switch s {
	case WalkIdle:
		return "idle"
	case WalkWalking:
		return "walking"
	case WalkExited:
		return "exited"
	case WalkBlocked:
		return "blocked"
	case WalkLooped:
		return "looped"
	case WalkRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Terminal reports whether the walk has finished.
func (s WalkState) Terminal() bool {
	return s == WalkExited || s == WalkBlocked || s == WalkLooped || s == WalkRejected
}

// Walk is the result of following a chain from a start piece.
type Walk struct {
	Start Position
	Path  []Position // pieces entered, in order; excludes Start
	Score int        // one point per step, equal to len(Path)
	State WalkState
}

// End returns the last position the walk occupied.
func (w Walk) End() Position {
	if len(w.Path) == 0 {
		return w.Start
	}
	return w.Path[len(w.Path)-1]
}

// Follow walks the chain that starts at the given position.
//
// A colored start piece rejects the follow. Otherwise the walker reads the
// direction of the piece it stands on, steps one cell that way and scores a
// point, until the next step would leave the board (WalkExited), the piece
// points nowhere (WalkBlocked), or the next piece was already visited
// (WalkLooped). The board is never modified.
func Follow(b *Board, start Position) Walk {
	w := Walk{Start: start, State: WalkIdle}
	if !b.InBounds(start) || b.At(start).Colored() {
		w.State = WalkRejected
		return w
	}

	visited := make(map[Position]bool, b.W+b.H)
	visited[start] = true

	cur := start
	w.State = WalkWalking
	for !w.State.Terminal() {
		w.State = w.advance(b, &cur, visited)
	}
	return w
}

// advance performs a single step of the walk and returns the resulting state.
func (w *Walk) advance(b *Board, cur *Position, visited map[Position]bool) WalkState {
	dir := b.At(*cur).Dir
	if dir == DirNone {
		return WalkBlocked
	}

	next := cur.Step(dir)
	if !b.InBounds(next) {
		return WalkExited
	}
	if visited[next] {
		return WalkLooped
	}

	visited[next] = true
	*cur = next
	w.Path = append(w.Path, next)
	w.Score++
	return WalkWalking
}

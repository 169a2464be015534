package smart

// trail tracks how much of the last walk's path is revealed on screen.
// It is presentation state only; the walk itself is already resolved.
type trail struct {
	length int
	shown  int
}

// start begins revealing a path of the given length.
func (t *trail) start(length int) {
	t.length = length
	t.shown = 0
}

// advance reveals one more step. Returns true while steps remain hidden.
func (t *trail) advance() bool {
	if t.shown < t.length {
		t.shown++
	}
	return t.shown < t.length
}

// AdvanceTrail reveals one more step of the last walk's trail.
// Returns true while the trail is still animating.
func (g *Game) AdvanceTrail() bool {
	return g.trail.advance()
}

// RevealTrail shows the whole trail at once.
func (g *Game) RevealTrail() {
	g.trail.shown = g.trail.length
}

// TrailShown returns how many steps of the last walk are visible.
func (g *Game) TrailShown() int {
	return g.trail.shown
}

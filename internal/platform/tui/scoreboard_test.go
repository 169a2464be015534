package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/simplesmart/internal/games/smart"
)

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, smart.GameID, "Simple Smart", 100, 30)
	if !strings.Contains(m.View(), EmptyHighscores) {
		t.Errorf("empty scoreboard should say %q", EmptyHighscores)
	}
}

func TestScoreboardLoadsEntries(t *testing.T) {
	store := openStore(t)
	for _, score := range []int{3, 8, 5} {
		if _, err := store.SaveHighscore(smart.GameID, "alice", score, 1); err != nil {
			t.Fatalf("SaveHighscore: %v", err)
		}
	}

	m := NewScoreboardModel(store, smart.GameID, "Simple Smart", 100, 30)
	scores := m.Scores()
	if len(scores) != 3 {
		t.Fatalf("scores = %d, want 3", len(scores))
	}
	if scores[0].Score != 8 {
		t.Errorf("top score = %d, want 8", scores[0].Score)
	}

	view := m.View()
	if strings.Contains(view, EmptyHighscores) {
		t.Error("scoreboard with entries should not show the empty message")
	}
	if !strings.Contains(view, "alice") {
		t.Error("scoreboard should list player names")
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, smart.GameID, "", 80, 25)

	next, _ := send(t, m, runeKey('m'))
	if !next.(ScoreboardModel).Done() {
		t.Error("m should go back")
	}

	next, _ = send(t, m, runeKey('q'))
	if !next.(ScoreboardModel).IsQuitting() {
		t.Error("q should quit")
	}
}

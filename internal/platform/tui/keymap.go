package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/simplesmart/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether the whole program
// should stop. "q" maps to ActionQuit; the caller decides whether that
// leaves the game or the program.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c":
		return core.ActionQuit, true
	case "q", "Q":
		return core.ActionQuit, false
	case "w", "up", "k":
		return core.ActionUp, false
	case "s", "down", "j":
		return core.ActionDown, false
	case "a", "left", "h":
		return core.ActionLeft, false
	case "d", "right", "l":
		return core.ActionRight, false
	case ";", "enter", " ":
		return core.ActionFollow, false
	case "p", "P":
		return core.ActionPause, false
	case "esc", "m", "M":
		return core.ActionBack, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MenuAction represents a title-screen action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionStart
	MenuActionTutorial
	MenuActionCredits
	MenuActionOptions
	MenuActionHighscores
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a title-screen action.
// Every entry has a letter hotkey; arrows and Enter drive the cursor.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q", "Q":
		return MenuActionQuit
	case "s", "S":
		return MenuActionStart
	case "t", "T":
		return MenuActionTutorial
	case "c", "C":
		return MenuActionCredits
	case "o", "O":
		return MenuActionOptions
	case "h", "H":
		return MenuActionHighscores
	case "up", "k":
		return MenuActionUp
	case "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	}

	return MenuActionNone
}

// IsBackKey reports whether the key returns from a sub-screen to the title.
func IsBackKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "m", "M", "enter", "esc", "b":
		return true
	}
	return false
}

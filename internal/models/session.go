package models

import (
	"time"
)

// Session is a read-only snapshot of a game session
type Session struct {
	// State is the lifecycle phase of the session
	State SessionState

	// Players is the roster in turn order
	Players []*Player

	// Mode is the selected game mode, empty until selected
	Mode GameMode

	// Theme is the prompt bank prompts are drawn from
	Theme ThemePack

	// TurnIndex points at the player who is the subject of the next prompt
	TurnIndex int

	// CurrentPrompt is the last personalized prompt or the game over message
	CurrentPrompt string

	// Winner is set when the game ended with a winner
	Winner *Player

	// Eliminated holds the players removed by survival elimination, in order
	Eliminated []*Player

	// PromptsServed is the number of prompts served since the game started
	PromptsServed int

	// CreatedAt is when the session was created
	CreatedAt time.Time

	// StartedAt is when the current game started
	StartedAt time.Time

	// EndedAt is when the current game ended
	EndedAt time.Time
}

// TurnHolder returns the player whose turn is current, or nil for an empty roster
func (s *Session) TurnHolder() *Player {
	if s == nil || len(s.Players) == 0 || s.TurnIndex < 0 || s.TurnIndex >= len(s.Players) {
		return nil
	}
	return s.Players[s.TurnIndex]
}

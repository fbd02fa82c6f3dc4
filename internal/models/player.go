package models

// Player represents a participant in a party game session
type Player struct {
	// ID is the unique identifier assigned when the player was added
	ID string

	// Name is the display name used to personalize prompts
	Name string

	// AvatarRef is an opaque avatar identifier, stable for the life of the player
	AvatarRef string

	// Score is the number of turns the player has been rewarded for
	Score int
}

// Clone returns a copy of the player that shares no state with the original
func (p *Player) Clone() *Player {
	if p == nil {
		return nil
	}

	clone := *p
	return &clone
}

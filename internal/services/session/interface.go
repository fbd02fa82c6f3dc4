package session

import "github.com/KirkDiggler/socialchaos/internal/models"

// Service defines the operations of a party game session.
// Calls are synchronous and must not be issued concurrently.
type Service interface {
	// AddPlayer appends a player to the roster
	AddPlayer(input *AddPlayerInput) (*AddPlayerOutput, error)

	// RemovePlayer removes the player at an index, keeping the turn on the same player
	RemovePlayer(input *RemovePlayerInput) (*RemovePlayerOutput, error)

	// SelectMode chooses the game mode during setup
	SelectMode(input *SelectModeInput) (*SelectModeOutput, error)

	// SelectTheme chooses the prompt theme during setup
	SelectTheme(input *SelectThemeInput) (*SelectThemeOutput, error)

	// StartGame validates the setup and serves the first prompt
	StartGame(input *StartGameInput) (*StartGameOutput, error)

	// NextPrompt serves a prompt, scores, rotates the turn and applies elimination
	NextPrompt(input *NextPromptInput) (*NextPromptOutput, error)

	// AddCustomPrompt appends a template to the current theme's bank
	AddCustomPrompt(input *AddCustomPromptInput) (*AddCustomPromptOutput, error)

	// ExitGame returns to setup, keeping the roster and clearing scores
	ExitGame(input *ExitGameInput) (*ExitGameOutput, error)

	// EndGame determines the winner and produces the game over message
	EndGame(input *EndGameInput) (*EndGameOutput, error)

	// GetSession returns a snapshot of the session
	GetSession() *models.Session
}

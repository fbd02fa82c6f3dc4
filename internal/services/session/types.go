package session

import (
	"github.com/KirkDiggler/socialchaos/internal/common/clock"
	"github.com/KirkDiggler/socialchaos/internal/common/uuid"
	"github.com/KirkDiggler/socialchaos/internal/models"
	"github.com/KirkDiggler/socialchaos/internal/prompts"
	"github.com/KirkDiggler/socialchaos/internal/random"
	"github.com/rs/zerolog"
)

// DefaultAvatarBaseURL is the avatar service player avatars point at
const DefaultAvatarBaseURL = "https://api.dicebear.com/6.x/avataaars/svg"

// survivalLeadLimit is how far a player may pull ahead of the lowest score in survival
const survivalLeadLimit = 2

// Config holds configuration for the session service
type Config struct {
	// Prompts is the starting prompt bank; the service works on its own copy
	Prompts *prompts.Bank

	// AvatarBaseURL is prefixed to each player's avatar seed
	AvatarBaseURL string

	// Logger receives lifecycle events; the zero value discards them
	Logger *zerolog.Logger

	// Service dependencies
	Random        random.Source
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// AddPlayerInput contains parameters for adding a player
type AddPlayerInput struct {
	// Name is the display name; surrounding whitespace is trimmed
	Name string
}

// AddPlayerOutput contains the result of adding a player
type AddPlayerOutput struct {
	// Added is false when the name was blank and nothing happened
	Added bool

	// Player is the new player when Added is true
	Player *models.Player

	Session *models.Session
}

// RemovePlayerInput contains parameters for removing a player
type RemovePlayerInput struct {
	// Index is the player's position in the roster
	Index int
}

// RemovePlayerOutput contains the result of removing a player
type RemovePlayerOutput struct {
	// Player is the removed player
	Player *models.Player

	// AutoExited is true when the removal left a playing game short of players
	AutoExited bool

	// GameEnded is true when the removal left a survival game with two players
	GameEnded bool

	Session *models.Session
}

// SelectModeInput contains parameters for choosing a mode
type SelectModeInput struct {
	Mode models.GameMode
}

// SelectModeOutput contains the result of choosing a mode
type SelectModeOutput struct {
	Session *models.Session
}

// SelectThemeInput contains parameters for choosing a theme
type SelectThemeInput struct {
	Theme models.ThemePack
}

// SelectThemeOutput contains the result of choosing a theme
type SelectThemeOutput struct {
	Session *models.Session
}

// StartGameInput contains parameters for starting a game
type StartGameInput struct {
}

// StartGameOutput contains the result of starting a game
type StartGameOutput struct {
	// Prompt is the first prompt served
	Prompt *PromptResult

	Session *models.Session
}

// NextPromptInput contains parameters for serving the next prompt
type NextPromptInput struct {
}

// NextPromptOutput contains the result of serving a prompt
type NextPromptOutput struct {
	Prompt *PromptResult

	Session *models.Session
}

// PromptResult describes one served prompt and its side effects
type PromptResult struct {
	// Text is the personalized prompt
	Text string

	// Template is the template the prompt was rendered from
	Template string

	// TurnPlayer is the player the prompt was addressed to
	TurnPlayer *models.Player

	// SecondPlayer is the player filled into the second slot, nil when the
	// template has no second slot
	SecondPlayer *models.Player

	// Scored is true when the turn player was awarded a point
	Scored bool

	// Eliminated is the player removed by survival elimination, if any
	Eliminated *models.Player

	// GameEnded is true when the elimination finished the game
	GameEnded bool
}

// AddCustomPromptInput contains parameters for adding a custom prompt
type AddCustomPromptInput struct {
	// Text is the raw template; surrounding whitespace is trimmed
	Text string
}

// AddCustomPromptOutput contains the result of adding a custom prompt
type AddCustomPromptOutput struct {
	// Added is false when the text was blank and nothing happened
	Added bool

	// Theme is the bank the prompt was added to
	Theme models.ThemePack

	Session *models.Session
}

// ExitGameInput contains parameters for leaving a game
type ExitGameInput struct {
}

// ExitGameOutput contains the result of leaving a game
type ExitGameOutput struct {
	Session *models.Session
}

// EndGameInput contains parameters for ending a game
type EndGameInput struct {
}

// EndGameOutput contains the result of ending a game
type EndGameOutput struct {
	// Winner is nil in free mode
	Winner *models.Player

	// Message is the game over summary
	Message string

	Session *models.Session
}

package session

// SessionError is a custom error type for session-related errors
type SessionError string

// Error implements the error interface
func (e SessionError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig        SessionError = "config cannot be nil"
	ErrNilRandom        SessionError = "random source cannot be nil"
	ErrNilUUIDGenerator SessionError = "UUID generator cannot be nil"
	ErrNilClock         SessionError = "clock cannot be nil"
	ErrNilPromptBank    SessionError = "prompt bank cannot be nil"
	ErrNilInput         SessionError = "input cannot be nil"
	ErrInvalidGameState SessionError = "invalid game state"
	ErrPlayerNotFound   SessionError = "player not found"
	ErrEmptyPromptBank  SessionError = "no prompts available for theme"
)

// ValidationError reports a precondition the caller can fix and retry
type ValidationError struct {
	Reason string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return e.Reason
}

// Validation failures
var (
	ErrNotEnoughPlayers = &ValidationError{Reason: "need at least 2 players"}
	ErrNoModeSelected   = &ValidationError{Reason: "no mode selected"}
	ErrUnknownMode      = &ValidationError{Reason: "unknown game mode"}
	ErrUnknownTheme     = &ValidationError{Reason: "unknown theme pack"}
)

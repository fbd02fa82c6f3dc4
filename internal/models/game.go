package models

// GameMode selects the scoring and elimination rules of a session
type GameMode string

const (
	// GameModeNone indicates no mode has been selected yet
	GameModeNone GameMode = ""

	// GameModeFree never scores and never computes a winner
	GameModeFree GameMode = "free"

	// GameModeCompetitive awards a point per turn and crowns the highest score
	GameModeCompetitive GameMode = "competitive"

	// GameModeSurvival awards a point per turn and eliminates runaway leaders
	GameModeSurvival GameMode = "survival"
)

// GameModes lists every selectable mode in display order
var GameModes = []GameMode{GameModeFree, GameModeCompetitive, GameModeSurvival}

// Valid reports whether the mode is one of the selectable modes
func (m GameMode) Valid() bool {
	for _, mode := range GameModes {
		if m == mode {
			return true
		}
	}
	return false
}

// Scores reports whether turns are rewarded in this mode
func (m GameMode) Scores() bool {
	return m == GameModeCompetitive || m == GameModeSurvival
}

// ThemePack names a category of prompt templates
type ThemePack string

const (
	// ThemePackParty is the default, high energy theme
	ThemePackParty ThemePack = "party"

	// ThemePackChill favours conversation prompts
	ThemePackChill ThemePack = "chill"

	// ThemePackWild contains dares
	ThemePackWild ThemePack = "wild"
)

// ThemePacks lists every theme in display order
var ThemePacks = []ThemePack{ThemePackParty, ThemePackChill, ThemePackWild}

// Valid reports whether the theme is a known theme pack
func (t ThemePack) Valid() bool {
	for _, theme := range ThemePacks {
		if t == theme {
			return true
		}
	}
	return false
}

// SessionState is the lifecycle phase of a session
type SessionState string

const (
	// SessionStateSetup indicates players, mode and theme are being chosen
	SessionStateSetup SessionState = "setup"

	// SessionStatePlaying indicates prompts are being served
	SessionStatePlaying SessionState = "playing"

	// SessionStateEnded indicates a game over summary has been produced
	SessionStateEnded SessionState = "ended"
)

package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/socialchaos/internal/models"
	"github.com/KirkDiggler/socialchaos/internal/services/session"
)

func renderWelcome() string {
	return "SOCIAL CHAOS\nAdd players, pick a mode and type start. Type help for commands.\n"
}

// renderError turns a service error into a message for the players
func renderError(err error) string {
	var validationErr *session.ValidationError
	if errors.As(err, &validationErr) {
		return fmt.Sprintf("Can't do that yet: %s.", validationErr.Reason)
	}

	switch {
	case errors.Is(err, session.ErrInvalidGameState):
		return "That isn't possible right now."
	case errors.Is(err, session.ErrPlayerNotFound):
		return "No player with that number."
	}

	return fmt.Sprintf("Error: %s", err)
}

func renderHelp(usages []string) string {
	var sb strings.Builder
	sb.WriteString("Commands:\n")
	for _, usage := range usages {
		fmt.Fprintf(&sb, "  %s\n", usage)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// renderPlayers lists the roster with the numbers remove expects
func renderPlayers(s *models.Session) string {
	if len(s.Players) == 0 {
		return "No players yet."
	}

	var sb strings.Builder
	sb.WriteString("Players:\n")
	for i, p := range s.Players {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, p.Name)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// renderScores lists scores with the turn holder starred while playing
func renderScores(s *models.Session) string {
	var current *models.Player
	if s.State == models.SessionStatePlaying {
		current = s.TurnHolder()
	}

	var sb strings.Builder
	sb.WriteString("Scores:\n")
	for _, p := range s.Players {
		marker := " "
		if p == current {
			marker = "*"
		}
		fmt.Fprintf(&sb, " %s %-12s %d\n", marker, p.Name, p.Score)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// renderSession renders the whole session for the current phase
func renderSession(s *models.Session) string {
	var sb strings.Builder

	switch s.State {
	case models.SessionStateSetup:
		fmt.Fprintf(&sb, "Setup | mode: %s | theme: %s\n", modeLabel(s.Mode), themeLabel(s.Theme))
		sb.WriteString(renderPlayers(s))
	case models.SessionStatePlaying, models.SessionStateEnded:
		fmt.Fprintf(&sb, "%s | %s\n\n", modeLabel(s.Mode), themeLabel(s.Theme))
		fmt.Fprintf(&sb, "  %s\n", s.CurrentPrompt)
		if s.Mode != models.GameModeFree {
			sb.WriteString("\n")
			sb.WriteString(renderScores(s))
		}
		if len(s.Eliminated) > 0 {
			names := make([]string, 0, len(s.Eliminated))
			for _, p := range s.Eliminated {
				names = append(names, p.Name)
			}
			fmt.Fprintf(&sb, "\nOut: %s", strings.Join(names, ", "))
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}

func modeLabel(mode models.GameMode) string {
	switch mode {
	case models.GameModeFree:
		return "Free Play"
	case models.GameModeCompetitive:
		return "Competitive Mode"
	case models.GameModeSurvival:
		return "Survival Mode"
	default:
		return "not selected"
	}
}

func themeLabel(theme models.ThemePack) string {
	switch theme {
	case models.ThemePackParty:
		return "Party Mode"
	case models.ThemePackChill:
		return "Chill Mode"
	case models.ThemePackWild:
		return "Wild Mode"
	default:
		return string(theme)
	}
}

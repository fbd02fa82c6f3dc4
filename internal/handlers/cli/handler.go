package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/KirkDiggler/socialchaos/internal/models"
	"github.com/KirkDiggler/socialchaos/internal/services/session"
	"github.com/rs/zerolog"
)

// ErrQuit is returned by Execute when the user asks to leave
var ErrQuit = errors.New("quit")

// Handler dispatches typed commands to the session service
type Handler struct {
	commands       map[string]CommandHandler
	order          []string
	sessionService session.Service
	out            io.Writer
	logger         zerolog.Logger
}

// Config holds the configuration for the handler
type Config struct {
	// Session service driven by the commands
	SessionService session.Service

	// Out receives everything rendered for the players
	Out io.Writer

	// Logger for command failures; the zero value discards them
	Logger *zerolog.Logger
}

// New creates a new command handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.SessionService == nil {
		return nil, errors.New("session service cannot be nil")
	}

	if cfg.Out == nil {
		return nil, errors.New("output writer cannot be nil")
	}

	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = cfg.Logger.With().Str("component", "cli").Logger()
	}

	h := &Handler{
		commands:       make(map[string]CommandHandler),
		sessionService: cfg.SessionService,
		out:            cfg.Out,
		logger:         logger,
	}
	h.registerCommands()

	return h, nil
}

// Run reads commands line by line until quit, end of input or cancellation
func (h *Handler) Run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)

	if _, err := fmt.Fprint(h.out, renderWelcome()); err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if _, err := fmt.Fprint(h.out, "> "); err != nil {
			return err
		}

		if !scanner.Scan() {
			return scanner.Err()
		}

		err := h.Execute(scanner.Text())
		if errors.Is(err, ErrQuit) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// Execute runs one command line. Game errors are shown to the players;
// only ErrQuit and write failures are returned.
func (h *Handler) Execute(line string) error {
	name, args := splitCommand(line)
	if name == "" {
		return nil
	}

	if name == "quit" || name == "q" {
		return ErrQuit
	}

	cmd, ok := h.commands[name]
	if !ok {
		_, err := fmt.Fprintf(h.out, "Unknown command %q. Type help for a list of commands.\n", name)
		return err
	}

	message, err := cmd.Handle(args)
	if err != nil {
		h.logger.Debug().Err(err).Str("command", name).Msg("command failed")
		message = renderError(err)
	}

	if message == "" {
		return nil
	}

	_, err = fmt.Fprintln(h.out, message)
	return err
}

func (h *Handler) register(name, args, description string, handle func(args string) (string, error)) {
	h.commands[name] = &funcCommand{
		BaseCommand: BaseCommand{Name: name, Args: args, Description: description},
		handle:      handle,
	}
	h.order = append(h.order, name)
}

func (h *Handler) registerCommands() {
	h.register("add", "<name>", "add a player", h.handleAdd)
	h.register("remove", "<number>", "remove a player by roster number", h.handleRemove)
	h.register("mode", "<free|competitive|survival>", "select the game mode", h.handleMode)
	h.register("theme", "<party|chill|wild>", "select the theme pack", h.handleTheme)
	h.register("start", "", "start the game", h.handleStart)
	h.register("next", "", "serve the next prompt", h.handleNext)
	h.register("custom", "<prompt>", "add a custom prompt to the current theme", h.handleCustom)
	h.register("end", "", "end the game and announce the winner", h.handleEnd)
	h.register("exit", "", "leave the game and return to setup", h.handleExit)
	h.register("show", "", "show the session", h.handleShow)
	h.register("help", "", "list commands", h.handleHelp)
}

func (h *Handler) handleAdd(args string) (string, error) {
	output, err := h.sessionService.AddPlayer(&session.AddPlayerInput{Name: args})
	if err != nil {
		return "", err
	}

	if !output.Added {
		return "", nil
	}

	return fmt.Sprintf("Added %s.\n%s", output.Player.Name, renderPlayers(output.Session)), nil
}

func (h *Handler) handleRemove(args string) (string, error) {
	number, err := strconv.Atoi(args)
	if err != nil {
		return "", fmt.Errorf("player number must be a number, got %q", args)
	}

	output, err := h.sessionService.RemovePlayer(&session.RemovePlayerInput{Index: number - 1})
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Removed %s.\n", output.Player.Name)
	switch {
	case output.AutoExited:
		sb.WriteString("Not enough players left, back to setup.\n")
	case output.GameEnded:
		sb.WriteString(renderSession(output.Session))
		return sb.String(), nil
	}
	sb.WriteString(renderPlayers(output.Session))
	return sb.String(), nil
}

func (h *Handler) handleMode(args string) (string, error) {
	output, err := h.sessionService.SelectMode(&session.SelectModeInput{Mode: models.GameMode(strings.ToLower(args))})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Mode: %s", modeLabel(output.Session.Mode)), nil
}

func (h *Handler) handleTheme(args string) (string, error) {
	output, err := h.sessionService.SelectTheme(&session.SelectThemeInput{Theme: models.ThemePack(strings.ToLower(args))})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Theme: %s", themeLabel(output.Session.Theme)), nil
}

func (h *Handler) handleStart(_ string) (string, error) {
	output, err := h.sessionService.StartGame(&session.StartGameInput{})
	if err != nil {
		return "", err
	}

	return renderSession(output.Session), nil
}

func (h *Handler) handleNext(_ string) (string, error) {
	output, err := h.sessionService.NextPrompt(&session.NextPromptInput{})
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	if output.Prompt.Eliminated != nil {
		fmt.Fprintf(&sb, "%s pulled too far ahead and is out!\n", output.Prompt.Eliminated.Name)
	}
	sb.WriteString(renderSession(output.Session))
	return sb.String(), nil
}

func (h *Handler) handleCustom(args string) (string, error) {
	output, err := h.sessionService.AddCustomPrompt(&session.AddCustomPromptInput{Text: args})
	if err != nil {
		return "", err
	}

	if !output.Added {
		return "", nil
	}

	return fmt.Sprintf("Added a custom prompt to %s.", themeLabel(output.Theme)), nil
}

func (h *Handler) handleEnd(_ string) (string, error) {
	output, err := h.sessionService.EndGame(&session.EndGameInput{})
	if err != nil {
		return "", err
	}

	return renderSession(output.Session), nil
}

func (h *Handler) handleExit(_ string) (string, error) {
	output, err := h.sessionService.ExitGame(&session.ExitGameInput{})
	if err != nil {
		return "", err
	}

	return "Back to setup.\n" + renderPlayers(output.Session), nil
}

func (h *Handler) handleShow(_ string) (string, error) {
	return renderSession(h.sessionService.GetSession()), nil
}

func (h *Handler) handleHelp(_ string) (string, error) {
	var usages []string
	for _, name := range h.order {
		usages = append(usages, h.commands[name].GetUsage())
	}
	usages = append(usages, "quit - leave")
	return renderHelp(usages), nil
}

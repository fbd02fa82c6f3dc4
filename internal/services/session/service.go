package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/socialchaos/internal/common/clock"
	"github.com/KirkDiggler/socialchaos/internal/common/uuid"
	"github.com/KirkDiggler/socialchaos/internal/models"
	"github.com/KirkDiggler/socialchaos/internal/prompts"
	"github.com/KirkDiggler/socialchaos/internal/random"
	"github.com/rs/zerolog"
)

// service implements the Service interface
type service struct {
	random        random.Source
	clock         clock.Clock
	uuidGenerator uuid.UUID
	prompts       *prompts.Bank
	avatarBaseURL string
	logger        zerolog.Logger

	state         models.SessionState
	players       []*models.Player
	mode          models.GameMode
	theme         models.ThemePack
	turnIndex     int
	currentPrompt string
	winner        *models.Player
	eliminated    []*models.Player
	promptsServed int
	createdAt     time.Time
	startedAt     time.Time
	endedAt       time.Time
}

// New creates a new session in setup with an empty roster
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Random == nil {
		return nil, ErrNilRandom
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	if cfg.Prompts == nil {
		return nil, ErrNilPromptBank
	}

	avatarBaseURL := cfg.AvatarBaseURL
	if avatarBaseURL == "" {
		avatarBaseURL = DefaultAvatarBaseURL
	}

	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = cfg.Logger.With().Str("component", "session").Logger()
	}

	return &service{
		random:        cfg.Random,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		prompts:       cfg.Prompts.Clone(),
		avatarBaseURL: avatarBaseURL,
		logger:        logger,
		state:         models.SessionStateSetup,
		players:       []*models.Player{},
		theme:         models.ThemePackParty,
		createdAt:     cfg.Clock.Now(),
	}, nil
}

// AddPlayer appends a player with a fresh avatar and a zero score
func (s *service) AddPlayer(input *AddPlayerInput) (*AddPlayerOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return &AddPlayerOutput{Added: false, Session: s.snapshot()}, nil
	}

	// A survival roster only shrinks once the game is running
	if s.state == models.SessionStatePlaying && s.mode == models.GameModeSurvival {
		return nil, ErrInvalidGameState
	}

	id := s.uuidGenerator.NewUUID()
	player := &models.Player{
		ID:        id,
		Name:      name,
		AvatarRef: fmt.Sprintf("%s?seed=%s", s.avatarBaseURL, id),
		Score:     0,
	}
	s.players = append(s.players, player)

	s.logger.Debug().Str("player", name).Int("players", len(s.players)).Msg("player added")

	return &AddPlayerOutput{
		Added:   true,
		Player:  player.Clone(),
		Session: s.snapshot(),
	}, nil
}

// RemovePlayer removes the player at the given index. The turn stays with the
// same logical player; removing the turn holder passes the turn to whoever
// now occupies that slot.
func (s *service) RemovePlayer(input *RemovePlayerInput) (*RemovePlayerOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.Index < 0 || input.Index >= len(s.players) {
		return nil, ErrPlayerNotFound
	}

	removed := s.removeAt(input.Index)

	s.logger.Debug().Str("player", removed.Name).Int("players", len(s.players)).Msg("player removed")

	output := &RemovePlayerOutput{Player: removed.Clone()}

	if s.state == models.SessionStatePlaying {
		switch {
		case len(s.players) < 2:
			s.exit()
			output.AutoExited = true
			s.logger.Info().Int("players", len(s.players)).Msg("not enough players left, returned to setup")
		case s.mode == models.GameModeSurvival && len(s.players) <= 2:
			// Survival finishes once two players are left, however the roster shrank
			s.end()
			output.GameEnded = true
		}
	}

	output.Session = s.snapshot()
	return output, nil
}

// SelectMode chooses the game mode; only allowed during setup
func (s *service) SelectMode(input *SelectModeInput) (*SelectModeOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if s.state != models.SessionStateSetup {
		return nil, ErrInvalidGameState
	}

	if !input.Mode.Valid() {
		return nil, ErrUnknownMode
	}

	s.mode = input.Mode

	return &SelectModeOutput{Session: s.snapshot()}, nil
}

// SelectTheme chooses the prompt theme; only allowed during setup
func (s *service) SelectTheme(input *SelectThemeInput) (*SelectThemeOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if s.state != models.SessionStateSetup {
		return nil, ErrInvalidGameState
	}

	if !input.Theme.Valid() {
		return nil, ErrUnknownTheme
	}

	s.theme = input.Theme

	return &SelectThemeOutput{Session: s.snapshot()}, nil
}

// StartGame validates the roster and mode, then serves the first prompt.
// Nothing is changed when validation fails.
func (s *service) StartGame(input *StartGameInput) (*StartGameOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if s.state != models.SessionStateSetup {
		return nil, ErrInvalidGameState
	}

	if len(s.players) < 2 {
		return nil, ErrNotEnoughPlayers
	}

	if s.mode == models.GameModeNone {
		return nil, ErrNoModeSelected
	}

	if s.prompts.Len(s.theme) == 0 {
		return nil, ErrEmptyPromptBank
	}

	s.state = models.SessionStatePlaying
	s.startedAt = s.clock.Now()
	s.endedAt = time.Time{}
	s.winner = nil
	s.eliminated = nil
	s.promptsServed = 0

	s.logger.Info().
		Str("mode", string(s.mode)).
		Str("theme", string(s.theme)).
		Int("players", len(s.players)).
		Msg("game started")

	result, err := s.nextPrompt()
	if err != nil {
		return nil, err
	}

	return &StartGameOutput{
		Prompt:  result,
		Session: s.snapshot(),
	}, nil
}

// NextPrompt serves the next prompt for the turn holder
func (s *service) NextPrompt(input *NextPromptInput) (*NextPromptOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if s.state != models.SessionStatePlaying {
		return nil, ErrInvalidGameState
	}

	result, err := s.nextPrompt()
	if err != nil {
		return nil, err
	}

	return &NextPromptOutput{
		Prompt:  result,
		Session: s.snapshot(),
	}, nil
}

// AddCustomPrompt appends a template to the bank of the current theme
func (s *service) AddCustomPrompt(input *AddCustomPromptInput) (*AddCustomPromptOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	text := strings.TrimSpace(input.Text)
	if text == "" {
		return &AddCustomPromptOutput{Added: false, Theme: s.theme, Session: s.snapshot()}, nil
	}

	s.prompts.Add(s.theme, text)

	s.logger.Debug().Str("theme", string(s.theme)).Int("prompts", s.prompts.Len(s.theme)).Msg("custom prompt added")

	return &AddCustomPromptOutput{
		Added:   true,
		Theme:   s.theme,
		Session: s.snapshot(),
	}, nil
}

// ExitGame returns the session to setup with the roster intact
func (s *service) ExitGame(input *ExitGameInput) (*ExitGameOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.exit()

	return &ExitGameOutput{Session: s.snapshot()}, nil
}

// EndGame finishes a running game and names the winner
func (s *service) EndGame(input *EndGameInput) (*EndGameOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if s.state != models.SessionStatePlaying {
		return nil, ErrInvalidGameState
	}

	s.end()

	return &EndGameOutput{
		Winner:  s.winner.Clone(),
		Message: s.currentPrompt,
		Session: s.snapshot(),
	}, nil
}

// GetSession returns a snapshot of the session
func (s *service) GetSession() *models.Session {
	return s.snapshot()
}

// nextPrompt picks and personalizes a template, then scores, rotates the
// turn and applies survival elimination, in that order.
func (s *service) nextPrompt() (*PromptResult, error) {
	if len(s.players) == 0 {
		return nil, ErrInvalidGameState
	}

	count := s.prompts.Len(s.theme)
	if count == 0 {
		return nil, ErrEmptyPromptBank
	}

	template := s.prompts.Template(s.theme, s.random.Intn(count))
	turnPlayer := s.players[s.turnIndex]
	secondPlayer := s.pickSecondPlayer(turnPlayer)

	s.currentPrompt = prompts.Personalize(template, turnPlayer.Name, secondPlayer.Name)
	s.promptsServed++

	result := &PromptResult{
		Text:     s.currentPrompt,
		Template: template,
	}

	if s.mode.Scores() {
		turnPlayer.Score++
		result.Scored = true
	}

	result.TurnPlayer = turnPlayer.Clone()
	if prompts.UsesSecondPlayer(template) {
		result.SecondPlayer = secondPlayer.Clone()
	}

	s.turnIndex = (s.turnIndex + 1) % len(s.players)

	if s.mode == models.GameModeSurvival {
		s.applySurvivalElimination(result)
	}

	return result, nil
}

// pickSecondPlayer draws players until one has a different name than the
// turn holder. With no such player the turn holder fills both slots.
func (s *service) pickSecondPlayer(turnPlayer *models.Player) *models.Player {
	hasOther := false
	for _, p := range s.players {
		if p.Name != turnPlayer.Name {
			hasOther = true
			break
		}
	}
	if !hasOther {
		return turnPlayer
	}

	for {
		candidate := s.players[s.random.Intn(len(s.players))]
		if candidate.Name != turnPlayer.Name {
			return candidate
		}
	}
}

// applySurvivalElimination removes the new turn holder when they lead the
// lowest score by more than survivalLeadLimit.
func (s *service) applySurvivalElimination(result *PromptResult) {
	lowest := s.players[0].Score
	for _, p := range s.players[1:] {
		if p.Score < lowest {
			lowest = p.Score
		}
	}

	candidate := s.players[s.turnIndex]
	if candidate.Score <= lowest+survivalLeadLimit {
		return
	}

	s.removeAt(s.turnIndex)
	s.eliminated = append(s.eliminated, candidate)
	result.Eliminated = candidate.Clone()

	s.logger.Info().
		Str("player", candidate.Name).
		Int("score", candidate.Score).
		Int("lowest", lowest).
		Int("remaining", len(s.players)).
		Msg("player eliminated")

	if len(s.players) <= 2 {
		s.end()
		result.GameEnded = true
	}
}

// removeAt deletes the player at index and keeps turnIndex on the same player
func (s *service) removeAt(index int) *models.Player {
	removed := s.players[index]

	players := make([]*models.Player, 0, len(s.players)-1)
	players = append(players, s.players[:index]...)
	s.players = append(players, s.players[index+1:]...)

	if index < s.turnIndex {
		s.turnIndex--
	}
	s.normalizeTurn()

	return removed
}

func (s *service) normalizeTurn() {
	if len(s.players) == 0 {
		s.turnIndex = 0
		return
	}
	s.turnIndex %= len(s.players)
}

func (s *service) exit() {
	s.state = models.SessionStateSetup
	s.currentPrompt = ""
	s.turnIndex = 0
	s.winner = nil
	s.eliminated = nil
	s.promptsServed = 0
	s.startedAt = time.Time{}
	s.endedAt = time.Time{}

	for _, p := range s.players {
		p.Score = 0
	}
}

// end picks the winner for the mode. Competitive ties go to the earliest
// player in turn order; survival crowns the first remaining player.
func (s *service) end() {
	var winner *models.Player

	switch s.mode {
	case models.GameModeCompetitive:
		for _, p := range s.players {
			if winner == nil || p.Score > winner.Score {
				winner = p
			}
		}
	case models.GameModeSurvival:
		if len(s.players) > 0 {
			winner = s.players[0]
		}
	}

	s.state = models.SessionStateEnded
	s.endedAt = s.clock.Now()
	s.winner = winner.Clone()
	s.currentPrompt = gameOverMessage(winner)

	event := s.logger.Info().Str("mode", string(s.mode)).Int("prompts", s.promptsServed)
	if winner != nil {
		event = event.Str("winner", winner.Name)
	}
	event.Msg("game ended")
}

func gameOverMessage(winner *models.Player) string {
	if winner == nil {
		return "Game Over!"
	}
	return fmt.Sprintf("Game Over! %s wins!", winner.Name)
}

func (s *service) snapshot() *models.Session {
	players := make([]*models.Player, len(s.players))
	for i, p := range s.players {
		players[i] = p.Clone()
	}

	var eliminated []*models.Player
	for _, p := range s.eliminated {
		eliminated = append(eliminated, p.Clone())
	}

	return &models.Session{
		State:         s.state,
		Players:       players,
		Mode:          s.mode,
		Theme:         s.theme,
		TurnIndex:     s.turnIndex,
		CurrentPrompt: s.currentPrompt,
		Winner:        s.winner.Clone(),
		Eliminated:    eliminated,
		PromptsServed: s.promptsServed,
		CreatedAt:     s.createdAt,
		StartedAt:     s.startedAt,
		EndedAt:       s.endedAt,
	}
}

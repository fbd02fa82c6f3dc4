package prompts

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/KirkDiggler/socialchaos/internal/models"
	"gopkg.in/yaml.v3"
)

const (
	// Player1Token is replaced with the turn holder's name
	Player1Token = "{player1}"

	// Player2Token is replaced with a second, different player's name
	Player2Token = "{player2}"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Bank holds the ordered prompt templates of every theme pack
type Bank struct {
	templates map[models.ThemePack][]string
}

// New creates a bank from the given templates, copying the input
func New(templates map[models.ThemePack][]string) *Bank {
	b := &Bank{templates: make(map[models.ThemePack][]string, len(models.ThemePacks))}
	for theme, list := range templates {
		b.templates[theme] = append([]string(nil), list...)
	}
	return b
}

// LoadDefaults returns the embedded default prompt bank
func LoadDefaults() (*Bank, error) {
	b, err := Parse(defaultsYAML)
	if err != nil {
		return nil, fmt.Errorf("failed to load default prompts: %w", err)
	}
	return b, nil
}

// LoadFile reads a prompt bank from a YAML file keyed by theme
func LoadFile(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompts file: %w", err)
	}

	b, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load prompts from %s: %w", path, err)
	}
	return b, nil
}

// Parse decodes a YAML document mapping theme names to template lists.
// Unknown themes and blank templates are rejected.
func Parse(data []byte) (*Bank, error) {
	var raw map[string][]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode prompts: %w", err)
	}

	if len(raw) == 0 {
		return nil, errors.New("prompt bank is empty")
	}

	templates := make(map[models.ThemePack][]string, len(raw))
	for name, list := range raw {
		theme := models.ThemePack(name)
		if !theme.Valid() {
			return nil, fmt.Errorf("unknown theme pack %q", name)
		}

		for i, text := range list {
			if strings.TrimSpace(text) == "" {
				return nil, fmt.Errorf("theme %s: template %d is blank", name, i)
			}
		}
		templates[theme] = list
	}

	return New(templates), nil
}

// Clone returns a deep copy of the bank
func (b *Bank) Clone() *Bank {
	return New(b.templates)
}

// Add appends a template to the theme's list
func (b *Bank) Add(theme models.ThemePack, text string) {
	b.templates[theme] = append(b.templates[theme], text)
}

// Len returns the number of templates available for the theme
func (b *Bank) Len(theme models.ThemePack) int {
	return len(b.templates[theme])
}

// Template returns the template at index i of the theme
func (b *Bank) Template(theme models.ThemePack, i int) string {
	return b.templates[theme][i]
}

// Templates returns a copy of the theme's templates
func (b *Bank) Templates(theme models.ThemePack) []string {
	return append([]string(nil), b.templates[theme]...)
}

// Personalize fills the first occurrence of each player token.
// Templates without tokens are returned verbatim.
func Personalize(template, player1, player2 string) string {
	out := strings.Replace(template, Player1Token, player1, 1)
	return strings.Replace(out, Player2Token, player2, 1)
}

// UsesSecondPlayer reports whether the template names a second player
func UsesSecondPlayer(template string) bool {
	return strings.Contains(template, Player2Token)
}

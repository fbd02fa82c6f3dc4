package prompts

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KirkDiggler/socialchaos/internal/models"
	"github.com/stretchr/testify/suite"
)

type BankTestSuite struct {
	suite.Suite
}

func TestBankTestSuite(t *testing.T) {
	suite.Run(t, new(BankTestSuite))
}

func (s *BankTestSuite) TestLoadDefaults() {
	bank, err := LoadDefaults()
	s.Require().NoError(err)

	for _, theme := range models.ThemePacks {
		s.GreaterOrEqual(bank.Len(theme), 10, "theme %s", theme)
		for _, tmpl := range bank.Templates(theme) {
			s.Contains(tmpl, Player1Token)
		}
	}
}

func (s *BankTestSuite) TestParse_UnknownTheme() {
	_, err := Parse([]byte("spicy:\n  - \"{player1} jumps\"\n"))
	s.Require().Error(err)
	s.Contains(err.Error(), "unknown theme pack")
}

func (s *BankTestSuite) TestParse_BlankTemplate() {
	_, err := Parse([]byte("party:\n  - \"   \"\n"))
	s.Require().Error(err)
	s.Contains(err.Error(), "blank")
}

func (s *BankTestSuite) TestParse_Empty() {
	_, err := Parse([]byte(""))
	s.Require().Error(err)
}

func (s *BankTestSuite) TestParse_InvalidYAML() {
	_, err := Parse([]byte("party: [unterminated"))
	s.Require().Error(err)
}

func (s *BankTestSuite) TestLoadFile() {
	path := filepath.Join(s.T().TempDir(), "prompts.yaml")
	s.Require().NoError(os.WriteFile(path, []byte("chill:\n  - \"{player1}, breathe\"\n"), 0o600))

	bank, err := LoadFile(path)
	s.Require().NoError(err)
	s.Equal([]string{"{player1}, breathe"}, bank.Templates(models.ThemePackChill))
	s.Equal(0, bank.Len(models.ThemePackParty))
}

func (s *BankTestSuite) TestLoadFile_Missing() {
	_, err := LoadFile(filepath.Join(s.T().TempDir(), "nope.yaml"))
	s.Require().Error(err)
}

func (s *BankTestSuite) TestCloneIsIndependent() {
	bank := New(map[models.ThemePack][]string{
		models.ThemePackWild: {"{player1} sings"},
	})
	clone := bank.Clone()

	clone.Add(models.ThemePackWild, "Hello {player1}")

	s.Equal(1, bank.Len(models.ThemePackWild))
	s.Equal(2, clone.Len(models.ThemePackWild))
	s.Equal("Hello {player1}", clone.Template(models.ThemePackWild, 1))
}

func (s *BankTestSuite) TestTemplatesReturnsCopy() {
	bank := New(map[models.ThemePack][]string{
		models.ThemePackParty: {"{player1} dances"},
	})

	list := bank.Templates(models.ThemePackParty)
	list[0] = "changed"

	s.Equal("{player1} dances", bank.Template(models.ThemePackParty, 0))
}

func (s *BankTestSuite) TestPersonalize() {
	testCases := []struct {
		name     string
		template string
		expected string
	}{
		{"both tokens", "{player1} and {player2} dance", "Ann and Bob dance"},
		{"first token only", "{player1} sings", "Ann sings"},
		{"no tokens", "Everyone drinks water", "Everyone drinks water"},
		{"first occurrence only", "{player1} hugs {player1}", "Ann hugs {player1}"},
		{"second before first", "{player2} picks {player1}", "Bob picks Ann"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, Personalize(tc.template, "Ann", "Bob"))
		})
	}
}

func (s *BankTestSuite) TestUsesSecondPlayer() {
	s.True(UsesSecondPlayer("{player1} and {player2}"))
	s.False(UsesSecondPlayer("{player1} alone"))
	s.False(strings.Contains(Personalize("{player2}", "A", "B"), Player2Token))
}

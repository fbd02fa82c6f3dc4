package uuid

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type UUIDTestSuite struct {
	suite.Suite
}

func TestUUIDTestSuite(t *testing.T) {
	suite.Run(t, new(UUIDTestSuite))
}

func (s *UUIDTestSuite) TestNewUUIDIsParseableAndDistinct() {
	gen := New()
	seen := make(map[string]bool)

	for i := 0; i < 20; i++ {
		id := gen.NewUUID()
		_, err := uuid.Parse(id)
		s.Require().NoError(err)
		s.False(seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

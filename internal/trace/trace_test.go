package trace

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type TraceSuite struct {
	suite.Suite
}

func TestTraceSuite(t *testing.T) {
	suite.Run(t, new(TraceSuite))
}

// WYAG_TRACE is read once in init(), before any test can change it, so
// these only exercise the default (disabled) no-op path -- which must
// never panic regardless of target or format arguments.
func (s *TraceSuite) TestPrintfIsSilentNoOpByDefault() {
	s.NotPanics(func() {
		General.Printf("plain")
		Object.Printf("with args %d %s", 1, "two")
		Index.Printf("%v", nil)
	})
}

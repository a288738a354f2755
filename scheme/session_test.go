package scheme

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSessionBuildEvaluatesAndPrints(t *testing.T) {
	s := NewSession(nil)
	out, err := s.Build("(+ 2 4)")
	require.NoError(t, err)
	require.Equal(t, "6", out)
}

func TestSessionRetainsStateAcrossCalls(t *testing.T) {
	s := NewSession(nil)
	_, err := s.Build("(define x 10)")
	require.NoError(t, err)
	out, err := s.Build("(+ x 1)")
	require.NoError(t, err)
	require.Equal(t, "11", out)
}

func TestSessionRetainsPartialEffectsAfterFailure(t *testing.T) {
	s := NewSession(nil)
	_, err := s.Build("(define x 10)")
	require.NoError(t, err)

	_, err = s.Build("(+ x undefined-name)")
	require.Error(t, err)

	out, err := s.Build("x")
	require.NoError(t, err)
	require.Equal(t, "10", out)
}

func TestSessionIDIsStableWithinSession(t *testing.T) {
	s := NewSession(nil)
	require.Equal(t, s.ID(), s.ID())
}

func TestSessionBuildClassifiesErrorKinds(t *testing.T) {
	s := NewSession(nil)

	_, err := s.Build("")
	require.Error(t, err)
	require.Equal(t, "runtime", errorKind(err))

	_, err = s.Build("(a b")
	require.Error(t, err)
	require.Equal(t, "syntax", errorKind(err))

	_, err = s.Build("nope")
	require.Error(t, err)
	require.Equal(t, "name", errorKind(err))
}

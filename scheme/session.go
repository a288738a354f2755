package scheme

import (
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Session is one top-level interpreter instance: it owns the root
// scope and every value reachable from it for the session's lifetime.
// Sessions are ephemeral and carry no persisted state.
type Session struct {
	id   uuid.UUID
	root *Scope
	log  *logrus.Entry
}

// NewSession returns a ready-to-use Session with a fresh root scope.
// log may be nil, in which case diagnostics are discarded.
func NewSession(log *logrus.Logger) *Session {
	if log == nil {
		log = logrus.New()
		log.SetOutput(discardWriter{})
	}
	id := uuid.New()
	return &Session{
		id:   id,
		root: NewScope(nil),
		log:  log.WithField("session", id.String()),
	}
}

// ID returns the session's correlation id.
func (s *Session) ID() uuid.UUID { return s.id }

// Build parses exactly one top-level expression from source, evaluates
// it against the session's root scope, and returns the printed result.
// Errors propagate as the typed SyntaxError/RuntimeError/NameError
// failures described in the error-handling design; side effects already
// committed by earlier, successful calls to Build are retained even
// when a later call fails (there is no transactional rollback).
func (s *Session) Build(source string) (string, error) {
	expr, err := ReadString(source)
	if err != nil {
		s.log.WithError(err).WithField("kind", errorKind(err)).Debug("read failed")
		return "", err
	}
	result, err := Eval(expr, s.root)
	if err != nil {
		s.log.WithError(err).WithField("kind", errorKind(err)).Debug("eval failed")
		return "", err
	}
	return Print(result), nil
}

// errorKind names the error's taxonomy for structured logging.
func errorKind(err error) string {
	var syn *SyntaxError
	var rt *RuntimeError
	var name *NameError
	switch {
	case errors.As(err, &syn):
		return "syntax"
	case errors.As(err, &rt):
		return "runtime"
	case errors.As(err, &name):
		return "name"
	default:
		return "unknown"
	}
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

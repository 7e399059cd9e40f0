package errs

import "github.com/pkg/errors"

// Sentinels returned (wrapped) by the class, html and config packages.
// Match them with errors.Is.
var (
	ErrArgumentRequired = errors.New("argument required")
	ErrTypeMismatch     = errors.New("type mismatch")
	ErrNotFound         = errors.New("not found")
	ErrNotInitialized   = errors.New("not initialized")
	ErrNoElement        = errors.New("no element")
)

// Required reports a missing argument called what.
func Required(what string) error {
	return errors.Wrap(ErrArgumentRequired, what)
}

// Mismatch reports that what was of type got rather than the expected kind.
func Mismatch(what, want string, got interface{}) error {
	return errors.Wrapf(ErrTypeMismatch, "%s must be %s, got %T", what, want, got)
}

// NotFound reports that no entry called name exists in where.
func NotFound(where, name string) error {
	return errors.Wrapf(ErrNotFound, "%s %q", where, name)
}

// Name validates a dynamically typed name the way every Has* lookup does:
// nil and "" are missing, anything that is not a string is the wrong kind.
func Name(what string, name interface{}) (string, error) {
	if name == nil {
		return "", Required(what)
	}
	s, ok := name.(string)
	if !ok {
		return "", Mismatch(what, "a string", name)
	}
	if s == "" {
		return "", Required(what)
	}
	return s, nil
}

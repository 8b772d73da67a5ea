package tui

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// ErrInputClosed is returned when input ends while a prompt still needs an
// answer.
var ErrInputClosed = errors.New("input closed before a value was entered")

// Prompter asks the operator for values, one question at a time.
type Prompter interface {
	// Input asks for a plain value. Fields are required unless Optional is
	// given.
	Input(label string, opts ...InputOption) (string, error)
	// Sensitive asks for a non-empty value without echoing it.
	Sensitive(label string) (string, error)
	// Confirm asks a yes/no question. Only "yes" counts as yes.
	Confirm(question string) (bool, error)
}

// InputOption adjusts how an Input answer is resolved.
type InputOption func(*inputOptions)

type inputOptions struct {
	required     bool
	autoGenerate bool
	defaultValue string
}

// Optional accepts an empty answer.
func Optional() InputOption {
	return func(o *inputOptions) { o.required = false }
}

// AutoGenerate replaces an empty answer with a fresh identifier.
func AutoGenerate() InputOption {
	return func(o *inputOptions) { o.autoGenerate = true }
}

// Default replaces an empty answer with value.
func Default(value string) InputOption {
	return func(o *inputOptions) { o.defaultValue = value }
}

func newInputOptions(opts []InputOption) inputOptions {
	o := inputOptions{required: true}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// accepts reports whether value can be resolved without asking again.
func (o inputOptions) accepts(value string) bool {
	return value != "" || !o.required || o.autoGenerate
}

// resolve maps a raw answer to the returned value. ok is false when the
// operator has to be asked again.
func (o inputOptions) resolve(value string, newID func() string) (string, bool) {
	switch {
	case !o.accepts(value):
		return "", false
	case o.autoGenerate && value == "":
		return newID(), true
	case o.defaultValue != "" && value == "":
		return o.defaultValue, true
	default:
		return value, true
	}
}

// NewIdentifier returns a random lowercase UUID.
func NewIdentifier() string {
	return strings.ToLower(uuid.New().String())
}

// IsYes reports whether answer is an affirmative reply.
func IsYes(answer string) bool {
	return strings.ToLower(strings.TrimSpace(answer)) == "yes"
}

package trace

import (
	"errors"
	"fmt"
)

// Status is the state of a solver run.
type Status uint8

const (
	Running Status = iota
	Converged
	MaxIterationsExceeded
	DerivativeNearZero
	StalledBrackets
	Diverged
	DomainError
	InvalidBracket
	Stopped
)

// ErrUnknownStatus is returned by UnmarshalText for an unrecognised name.
var ErrUnknownStatus = errors.New("trace: unknown status")

var statusNames = [...]string{
	Running:               "running",
	Converged:             "converged",
	MaxIterationsExceeded: "max-iterations-exceeded",
	DerivativeNearZero:    "derivative-near-zero",
	StalledBrackets:       "stalled-brackets",
	Diverged:              "diverged",
	DomainError:           "domain-error",
	InvalidBracket:        "invalid-bracket",
	Stopped:               "stopped",
}

func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return fmt.Sprintf("status(%d)", uint8(s))
}

// Terminal reports whether s ends a run.
func (s Status) Terminal() bool { return s != Running }

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	if int(s) >= len(statusNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStatus, uint8(s))
	}
	return []byte(statusNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(text []byte) error {
	for i, name := range statusNames {
		if name == string(text) {
			*s = Status(i)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownStatus, text)
}

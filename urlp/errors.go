package urlp

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound when a history entry does not exist
	ErrNotFound      = errors.New("entry not found")
	ErrUnknownFormat = errors.New("unknown output format")
)

// ErrorKind classifies a parse failure
type ErrorKind int

const (
	KindLiteral  ErrorKind = iota + 1 // expected fixed text not found
	KindToken                         // zero characters of the required class
	KindOverflow                      // digit run does not fit the target integer
	KindMissing                       // a required stage (scheme, resource) is absent
)

func (k ErrorKind) String() string {
	switch k {
	case KindLiteral:
		return "literal mismatch"
	case KindToken:
		return "expected token"
	case KindOverflow:
		return "numeric overflow"
	case KindMissing:
		return "required stage missing"
	}
	return "unknown"
}

// MarshalText so the kind is readable in JSON error bodies
func (k ErrorKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText reads back MarshalText output, "unknown" is the zero kind
func (k *ErrorKind) UnmarshalText(text []byte) error {
	for kind := ErrorKind(0); kind <= KindMissing; kind++ {
		if kind.String() == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown error kind %q", text)
}

// ParseError is the structured failure every grammar rule returns. Pos is the
// byte offset into the original input.
type ParseError struct {
	Kind     ErrorKind `json:"kind"`
	Pos      int       `json:"pos"`
	Expected string    `json:"expected,omitempty"`
	Stage    string    `json:"stage,omitempty"`
	Err      error     `json:"-"`
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("%s at offset %d", e.Kind, e.Pos)
	if e.Expected != "" {
		msg = fmt.Sprintf("%s: expected %s", msg, e.Expected)
	}
	if e.Stage != "" {
		msg = e.Stage + ": " + msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Err }

// Root returns the innermost ParseError, or e itself
func (e *ParseError) Root() *ParseError {
	var inner *ParseError
	if errors.As(e.Err, &inner) {
		return inner.Root()
	}
	return e
}

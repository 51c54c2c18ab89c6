package urlp

import (
	"errors"
)

// ErrorBody is a ParseError flattened for output
type ErrorBody struct {
	Kind     ErrorKind `json:"kind"`
	Pos      int       `json:"pos"`
	Stage    string    `json:"stage,omitempty"`
	Expected string    `json:"expected,omitempty"`
	Cause    ErrorKind `json:"cause,omitempty"`
	Message  string    `json:"message"`
}

// Result of parsing Input, either URI or Error is set
type Result struct {
	Input     string     `json:"input"`
	URI       *URI       `json:"uri,omitempty"`
	Remainder string     `json:"remainder"`
	Domain    string     `json:"registrable_domain,omitempty"`
	Error     *ErrorBody `json:"error,omitempty"`
}

// NewErrorBody flattens err, nil for a nil err
func NewErrorBody(err error) *ErrorBody {
	if err == nil {
		return nil
	}
	body := &ErrorBody{Message: err.Error()}
	var perr *ParseError
	if errors.As(err, &perr) {
		body.Kind = perr.Kind
		body.Pos = perr.Pos
		body.Stage = perr.Stage
		body.Expected = perr.Expected
		if root := perr.Root(); root != perr {
			body.Cause = root.Kind
		}
	}
	return body
}

// NewResult from the return values of a parse
func NewResult(input string, u *URI, remainder string, err error) *Result {
	r := &Result{Input: input, URI: u, Remainder: remainder, Error: NewErrorBody(err)}
	if r.Error != nil {
		r.URI = nil
	}
	if r.URI != nil {
		r.Domain, _ = r.URI.Resource.RegistrableDomain()
	}
	return r
}

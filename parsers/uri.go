package parsers

import (
	"github.com/rs/zerolog"
	"gitlab.com/urlp/urlp"
)

// Parser assembles the grammar rules into a URI. It holds no parse state and
// can be shared between goroutines.
type Parser struct {
	log zerolog.Logger
}

// New parser tracing each grammar stage to logger at debug level
func New(logger zerolog.Logger) *Parser {
	return &Parser{log: logger}
}

var defaultParser = New(zerolog.Nop())

// ParseURI with a parser that does not log
func ParseURI(input string) (*urlp.URI, string, error) {
	return defaultParser.Parse(input)
}

// Parse input as scheme authority? resource port? path? query? fragment?
// returning the URI and whatever input was left unconsumed.
func (p *Parser) Parse(input string) (*urlp.URI, string, error) {
	var err error
	in := NewInput(input)
	u := &urlp.URI{}

	if u.Scheme, in, err = required(p, "scheme", Scheme, in); err != nil {
		return nil, input, err
	}
	u.Authority, in = optional(p, "authority", Authority, in)
	if u.Resource, in, err = required(p, "resource", Resource, in); err != nil {
		return nil, input, err
	}
	u.Port, in = optional(p, "port", Port, in)

	if path, next := optional(p, "path", Path, in); path != nil {
		u.Path, in = *path, next
	}
	if query, next := optional(p, "query", Query, in); query != nil {
		u.Query, in = *query, next
	}
	u.Fragment, in = optional(p, "fragment", Fragment, in)

	if e := p.log.Debug(); e.Enabled() {
		e.Str("uri", u.String()).Str("remainder", in.Rest()).Msg("parsed")
	}
	return u, in.Rest(), nil
}

// required stages abort the parse, the stage failure is kept as the cause
func required[T any](p *Parser, stage string, r Rule[T], in Input) (T, Input, error) {
	v, next, err := Context(stage, r)(in)
	if err != nil {
		p.log.Debug().Err(err).Str("stage", stage).Int("offset", in.Offset()).Msg("required stage failed")
		return v, in, &urlp.ParseError{
			Kind:     urlp.KindMissing,
			Pos:      in.Offset(),
			Expected: stage,
			Stage:    stage,
			Err:      err,
		}
	}
	p.log.Debug().Str("stage", stage).Int("offset", in.Offset()).Int("end", next.Offset()).Msg("matched")
	return v, next, nil
}

// optional stages that fail contribute nothing and consume nothing
func optional[T any](p *Parser, stage string, r Rule[T], in Input) (*T, Input) {
	v, next, err := r(in)
	if err != nil {
		p.log.Debug().Str("stage", stage).Int("offset", in.Offset()).Str("reason", err.Error()).Msg("optional stage absent")
		return nil, in
	}
	p.log.Debug().Str("stage", stage).Int("offset", in.Offset()).Int("end", next.Offset()).Msg("matched")
	return &v, next
}

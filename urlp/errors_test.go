package urlp_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gitlab.com/urlp/urlp"
)

func TestParseError(t *testing.T) {
	inner := &urlp.ParseError{Kind: urlp.KindToken, Pos: 7, Expected: "host token", Stage: "resource"}
	outer := &urlp.ParseError{Kind: urlp.KindMissing, Pos: 7, Expected: "resource", Stage: "resource", Err: inner}

	assert.Equal(t, "resource: expected token at offset 7: expected host token", inner.Error())
	assert.Equal(t, "resource: required stage missing at offset 7: expected resource: "+inner.Error(), outer.Error())
	assert.Same(t, inner, outer.Root())
	assert.Same(t, inner, inner.Root())

	var perr *urlp.ParseError
	assert.True(t, errors.As(outer, &perr))
	assert.True(t, errors.Is(outer, inner))
}

func TestErrorKindText(t *testing.T) {
	text, err := urlp.KindOverflow.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "numeric overflow", string(text))
	assert.Equal(t, "unknown", urlp.ErrorKind(0).String())

	for _, kind := range []urlp.ErrorKind{0, urlp.KindLiteral, urlp.KindToken, urlp.KindOverflow, urlp.KindMissing} {
		text, err := kind.MarshalText()
		assert.NoError(t, err)
		var back urlp.ErrorKind
		assert.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, kind, back)
	}
	var k urlp.ErrorKind
	assert.Error(t, k.UnmarshalText([]byte("bogus")))
}

func TestErrorBody(t *testing.T) {
	assert.Nil(t, urlp.NewErrorBody(nil))

	body := urlp.NewErrorBody(errors.New("disk full"))
	assert.Equal(t, "disk full", body.Message)
	data, err := json.Marshal(body)
	assert.NoError(t, err)
	decoded := &urlp.ErrorBody{}
	assert.NoError(t, json.Unmarshal(data, decoded))
	assert.Equal(t, body, decoded)
}

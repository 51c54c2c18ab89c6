package parsers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/urlp/parsers"
	"gitlab.com/urlp/urlp"
)

func TestInput(t *testing.T) {
	in := parsers.NewInput("abc")
	assert.Equal(t, byte('a'), in.Peek())
	next := in.Advance(2)
	assert.Equal(t, "c", next.Rest())
	assert.Equal(t, 2, next.Offset())
	assert.Equal(t, "ab", next.Since(in))
	assert.Equal(t, "abc", in.Rest(), "advancing must not change the original")

	end := next.Advance(10)
	assert.True(t, end.Empty())
	assert.Equal(t, byte(0), end.Peek())
	assert.Equal(t, 0, end.Len())
}

func TestAltFurthestError(t *testing.T) {
	r := parsers.Alt(
		parsers.Recognize(parsers.Pair(parsers.Char('a'), parsers.Char('b'))),
		parsers.Recognize(parsers.Char('x')),
	)
	_, _, err := run(r, "ac")
	kind, pos := kindOf(t, err)
	assert.Equal(t, urlp.KindLiteral, kind)
	assert.Equal(t, 1, pos)
}

func TestLongest(t *testing.T) {
	short := parsers.TagNoCase("ab")
	long := parsers.TagNoCase("abc")
	v, rest, err := run(parsers.Longest(short, long), "abcd")
	require.NoError(t, err)
	assert.Equal(t, "abc", v)
	assert.Equal(t, "d", rest)

	// ties go to the first rule
	first := parsers.Value("first", parsers.TagNoCase("ab"))
	second := parsers.Value("second", parsers.TagNoCase("AB"))
	choice, _, err := run(parsers.Longest(first, second), "ab")
	require.NoError(t, err)
	assert.Equal(t, "first", choice)
}

func TestManyStopsWithoutProgress(t *testing.T) {
	empty := parsers.Opt(parsers.Char('z'))
	out, rest, err := run(parsers.Many0(empty), "abc")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, "abc", rest)

	out1, rest, err := run(parsers.Many1(parsers.Char('a')), "aaab")
	require.NoError(t, err)
	assert.Equal(t, []byte{'a', 'a', 'a'}, out1)
	assert.Equal(t, "b", rest)

	_, rest, err = run(parsers.Many1(parsers.Char('a')), "baaa")
	assert.Error(t, err)
	assert.Equal(t, "baaa", rest)
}

func TestDigits(t *testing.T) {
	v, rest, err := run(parsers.Digits(3, 8), "2551")
	require.NoError(t, err)
	assert.Equal(t, uint64(255), v)
	assert.Equal(t, "1", rest)

	_, rest, err = run(parsers.Digits(3, 8), "300")
	kind, pos := kindOf(t, err)
	assert.Equal(t, urlp.KindOverflow, kind)
	assert.Equal(t, 0, pos)
	assert.Equal(t, "300", rest)
}

func TestContext(t *testing.T) {
	_, _, err := run(parsers.Context("port", parsers.Port), "x")
	var perr *urlp.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "port", perr.Stage)
	assert.Contains(t, err.Error(), "port: literal mismatch at offset 0")
}

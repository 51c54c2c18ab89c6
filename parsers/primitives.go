package parsers

import (
	"strconv"

	"gitlab.com/urlp/urlp"
)

// TagNoCase matches lit ignoring ASCII case
func TagNoCase(lit string) Rule[string] {
	return func(in Input) (string, Input, error) {
		rest := in.Rest()
		if len(rest) < len(lit) {
			return "", in, fail(urlp.KindLiteral, in, strconv.Quote(lit))
		}
		for i := 0; i < len(lit); i++ {
			if !foldEqual(rest[i], lit[i]) {
				return "", in, fail(urlp.KindLiteral, in, strconv.Quote(lit))
			}
		}
		s, next := in.take(len(lit))
		return s, next, nil
	}
}

// Char matches exactly c
func Char(c byte) Rule[byte] {
	return func(in Input) (byte, Input, error) {
		if in.Empty() || in.Peek() != c {
			return 0, in, fail(urlp.KindLiteral, in, strconv.QuoteRune(rune(c)))
		}
		return c, in.Advance(1), nil
	}
}

// scan returns how many leading bytes of in the class allows, at most limit
// (limit <= 0 means unbounded)
func scan(in Input, disallowed Class, limit int) int {
	rest := in.Rest()
	n := 0
	for n < len(rest) && !disallowed(rest[n]) {
		n++
		if n == limit {
			break
		}
	}
	return n
}

// TakeTill1 consumes the run of bytes the class allows, at least one. name
// describes the class in failures.
func TakeTill1(disallowed Class, name string) Rule[string] {
	return func(in Input) (string, Input, error) {
		n := scan(in, disallowed, 0)
		if n == 0 {
			return "", in, fail(urlp.KindToken, in, name+" token")
		}
		s, next := in.take(n)
		return s, next, nil
	}
}

// Alpha1 consumes one or more ASCII letters
var Alpha1 = TakeTill1(notAlpha, "alphabetic")

// Digits consumes between 1 and limit decimal digits and converts them to an
// unsigned integer of the given bit size. A digit run that fits limit but not
// the bit size fails with KindOverflow.
func Digits(limit, bitSize int) Rule[uint64] {
	return func(in Input) (uint64, Input, error) {
		n := scan(in, notDigit, limit)
		if n == 0 {
			return 0, in, fail(urlp.KindToken, in, "digit")
		}
		s, next := in.take(n)
		v, err := strconv.ParseUint(s, 10, bitSize)
		if err != nil {
			return 0, in, &urlp.ParseError{
				Kind:     urlp.KindOverflow,
				Pos:      in.Offset(),
				Expected: strconv.Itoa(bitSize) + " bit unsigned integer",
				Err:      err,
			}
		}
		return v, next, nil
	}
}

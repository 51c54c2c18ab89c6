package parsers

// Class functions report whether a byte is disallowed for a token. Scanning
// primitives consume the run of bytes the class does NOT reject.
type Class func(ch byte) bool

// notHostChar terminates host, userinfo, query and fragment tokens
func notHostChar(ch byte) bool {
	return !(isAlnum(ch) || ch == '-')
}

// notPathChar terminates path segments, same as a host token but dots are allowed
func notPathChar(ch byte) bool {
	return !(isAlnum(ch) || ch == '-' || ch == '.')
}

func notDigit(ch byte) bool { return !isDecimal(ch) }
func notAlpha(ch byte) bool { return !isLetter(ch) }

func lower(ch byte) byte       { return ('a' - 'A') | ch } // returns lower-case ch iff ch is ASCII letter
func isLetter(ch byte) bool    { return 'a' <= lower(ch) && lower(ch) <= 'z' }
func isDecimal(ch byte) bool   { return '0' <= ch && ch <= '9' }
func isAlnum(ch byte) bool     { return isLetter(ch) || isDecimal(ch) }
func foldEqual(a, b byte) bool { return a == b || isLetter(a) && lower(a) == lower(b) }

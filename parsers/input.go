package parsers

// Input is an immutable view of the source starting at an offset. Rules
// receive an Input by value, so a failed rule leaves the caller's Input
// untouched and alternatives can restart from the same point.
type Input struct {
	src string // original source
	off int    // offset of the first unconsumed byte
}

// NewInput over the whole of src
func NewInput(src string) Input {
	return Input{src: src}
}

// Rest is the unconsumed suffix
func (in Input) Rest() string { return in.src[in.off:] }

// Offset relative to the original source
func (in Input) Offset() int { return in.off }

// Len of the unconsumed suffix
func (in Input) Len() int { return len(in.src) - in.off }

func (in Input) Empty() bool { return in.off >= len(in.src) }

// Peek returns the next byte without consuming it. If the input is
// exhausted Peek returns 0.
func (in Input) Peek() byte {
	if in.off < len(in.src) {
		return in.src[in.off]
	}
	return 0
}

// Advance by n bytes
func (in Input) Advance(n int) Input {
	if in.off+n > len(in.src) {
		n = len(in.src) - in.off
	}
	return Input{src: in.src, off: in.off + n}
}

// Since returns the source consumed between start and in. start must be an
// earlier Input over the same source.
func (in Input) Since(start Input) string {
	return in.src[start.off:in.off]
}

// Take n bytes, returning them and the remaining input
func (in Input) take(n int) (string, Input) {
	next := in.Advance(n)
	return next.Since(in), next
}

package parsers

import (
	"github.com/pkg/errors"
	"gitlab.com/urlp/urlp"
)

// Rule consumes a prefix of in. On success it returns the value and the
// remaining input, on failure the zero value, the input it was given and a
// *urlp.ParseError.
type Rule[T any] func(in Input) (T, Input, error)

// Tuple holds the results of Pair
type Tuple[A, B any] struct {
	First  A
	Second B
}

func fail(kind urlp.ErrorKind, in Input, expected string) error {
	return &urlp.ParseError{Kind: kind, Pos: in.Offset(), Expected: expected}
}

// errPos returns the offset a failure happened at, or -1 for foreign errors
func errPos(err error) int {
	var perr *urlp.ParseError
	if errors.As(err, &perr) {
		return perr.Pos
	}
	return -1
}

// Map the value of a successful rule
func Map[T, U any](r Rule[T], f func(T) U) Rule[U] {
	return func(in Input) (U, Input, error) {
		v, next, err := r(in)
		if err != nil {
			var zero U
			return zero, in, err
		}
		return f(v), next, nil
	}
}

// Value replaces the result of r with v
func Value[T, U any](v U, r Rule[T]) Rule[U] {
	return Map(r, func(T) U { return v })
}

// Alt tries each rule from the same input and returns the first success. When
// every rule fails the error that got furthest into the input is returned.
func Alt[T any](rules ...Rule[T]) Rule[T] {
	return func(in Input) (T, Input, error) {
		var zero T
		var best error
		for _, r := range rules {
			v, next, err := r(in)
			if err == nil {
				return v, next, nil
			}
			if best == nil || errPos(err) >= errPos(best) {
				best = err
			}
		}
		return zero, in, best
	}
}

// Longest tries every rule from the same input and keeps the one that
// consumed the most. Ties go to the earlier rule.
func Longest[T any](rules ...Rule[T]) Rule[T] {
	return func(in Input) (T, Input, error) {
		var (
			value   T
			end     Input
			best    error
			matched bool
		)
		for _, r := range rules {
			v, next, err := r(in)
			if err != nil {
				if !matched && (best == nil || errPos(err) >= errPos(best)) {
					best = err
				}
				continue
			}
			if !matched || next.Offset() > end.Offset() {
				value, end, matched = v, next, true
			}
		}
		if !matched {
			return value, in, best
		}
		return value, end, nil
	}
}

// Opt never fails, a failing r yields nil and consumes nothing
func Opt[T any](r Rule[T]) Rule[*T] {
	return func(in Input) (*T, Input, error) {
		v, next, err := r(in)
		if err != nil {
			return nil, in, nil
		}
		return &v, next, nil
	}
}

// Preceded runs a then b and keeps b
func Preceded[A, B any](a Rule[A], b Rule[B]) Rule[B] {
	return func(in Input) (B, Input, error) {
		var zero B
		_, next, err := a(in)
		if err != nil {
			return zero, in, err
		}
		v, next, err := b(next)
		if err != nil {
			return zero, in, err
		}
		return v, next, nil
	}
}

// Terminated runs a then b and keeps a
func Terminated[A, B any](a Rule[A], b Rule[B]) Rule[A] {
	return func(in Input) (A, Input, error) {
		var zero A
		v, next, err := a(in)
		if err != nil {
			return zero, in, err
		}
		_, next, err = b(next)
		if err != nil {
			return zero, in, err
		}
		return v, next, nil
	}
}

// Pair runs a then b and keeps both
func Pair[A, B any](a Rule[A], b Rule[B]) Rule[Tuple[A, B]] {
	return func(in Input) (Tuple[A, B], Input, error) {
		var t Tuple[A, B]
		first, next, err := a(in)
		if err != nil {
			return t, in, err
		}
		second, next, err := b(next)
		if err != nil {
			return t, in, err
		}
		t.First, t.Second = first, second
		return t, next, nil
	}
}

// Many0 applies r until it fails or stops making progress
func Many0[T any](r Rule[T]) Rule[[]T] {
	return func(in Input) ([]T, Input, error) {
		var out []T
		next := in
		for {
			v, n, err := r(next)
			if err != nil || n.Offset() == next.Offset() {
				return out, next, nil
			}
			out = append(out, v)
			next = n
		}
	}
}

// Many1 is Many0 that requires the first application to succeed
func Many1[T any](r Rule[T]) Rule[[]T] {
	rest := Many0(r)
	return func(in Input) ([]T, Input, error) {
		v, next, err := r(in)
		if err != nil {
			return nil, in, err
		}
		more, next, _ := rest(next)
		return append([]T{v}, more...), next, nil
	}
}

// Recognize returns the span of input r consumed instead of its value
func Recognize[T any](r Rule[T]) Rule[string] {
	return func(in Input) (string, Input, error) {
		_, next, err := r(in)
		if err != nil {
			return "", in, err
		}
		return next.Since(in), next, nil
	}
}

// Context tags failures of r with the grammar stage they happened in
func Context[T any](stage string, r Rule[T]) Rule[T] {
	return func(in Input) (T, Input, error) {
		v, next, err := r(in)
		if err == nil {
			return v, next, nil
		}
		var perr *urlp.ParseError
		if errors.As(err, &perr) && perr.Stage == "" {
			tagged := *perr
			tagged.Stage = stage
			return v, in, &tagged
		}
		return v, in, err
	}
}

package lineio

import (
	"fmt"
	"unicode/utf8"

	"github.com/samber/lo"
)

// Signed covers the built-in signed integer extraction targets.
type Signed interface {
	int | int8 | int16 | int32 | int64
}

// Number covers the built-in numeric extraction targets.
type Number interface {
	Signed | uint | uint8 | uint16 | uint32 | uint64 | float32 | float64
}

// Value consumes the next token of ln and parses it as T.
func Value[T any](ln *Line) (T, error) {
	return valueAt[T](ln, 0)
}

// Tuple2 consumes the next two tokens of ln
// and parses them positionally into (T1, T2).
// Like all the tuple extractors, it consumes nothing
// when fewer tokens remain than the arity needs,
// and stops at the first token that fails to convert.
func Tuple2[T1, T2 any](ln *Line) (T1, T2, error) {
	var v1 T1
	var v2 T2
	err := need(ln, 2)
	if err == nil {
		v1, v2, err = pair[T1, T2](ln, 0)
	}
	return v1, v2, err
}

// Tuple3 consumes the next three tokens of ln
// and parses them positionally into (T1, T2, T3).
func Tuple3[T1, T2, T3 any](ln *Line) (T1, T2, T3, error) {
	var v1 T1
	var v2 T2
	var v3 T3
	err := need(ln, 3)
	if err == nil {
		v1, v2, err = pair[T1, T2](ln, 0)
	}
	if err == nil {
		v3, err = valueAt[T3](ln, 2)
	}
	return v1, v2, v3, err
}

// Tuple4 consumes the next four tokens of ln
// and parses them positionally into (T1, T2, T3, T4).
func Tuple4[T1, T2, T3, T4 any](ln *Line) (T1, T2, T3, T4, error) {
	var v1 T1
	var v2 T2
	var v3 T3
	var v4 T4
	err := need(ln, 4)
	if err == nil {
		v1, v2, err = pair[T1, T2](ln, 0)
	}
	if err == nil {
		v3, v4, err = pair[T3, T4](ln, 2)
	}
	return v1, v2, v3, v4, err
}

// Tuple5 consumes the next five tokens of ln
// and parses them positionally into (T1, T2, T3, T4, T5).
func Tuple5[T1, T2, T3, T4, T5 any](ln *Line) (T1, T2, T3, T4, T5, error) {
	var v1 T1
	var v2 T2
	var v3 T3
	var v4 T4
	var v5 T5
	err := need(ln, 5)
	if err == nil {
		v1, v2, err = pair[T1, T2](ln, 0)
	}
	if err == nil {
		v3, v4, err = pair[T3, T4](ln, 2)
	}
	if err == nil {
		v5, err = valueAt[T5](ln, 4)
	}
	return v1, v2, v3, v4, v5, err
}

// Tuple6 consumes the next six tokens of ln
// and parses them positionally into (T1, T2, T3, T4, T5, T6).
// Six is the largest supported tuple shape.
func Tuple6[T1, T2, T3, T4, T5, T6 any](ln *Line) (T1, T2, T3, T4, T5, T6, error) {
	var v1 T1
	var v2 T2
	var v3 T3
	var v4 T4
	var v5 T5
	var v6 T6
	err := need(ln, 6)
	if err == nil {
		v1, v2, err = pair[T1, T2](ln, 0)
	}
	if err == nil {
		v3, v4, err = pair[T3, T4](ln, 2)
	}
	if err == nil {
		v5, v6, err = pair[T5, T6](ln, 4)
	}
	return v1, v2, v3, v4, v5, v6, err
}

// Slice consumes the next n tokens of ln and parses each as T.
// The same all-or-nothing arity rule as the tuple extractors applies.
func Slice[T any](ln *Line, n int) ([]T, error) {
	if err := need(ln, n); err != nil {
		return nil, err
	}

	out := make([]T, 0, n)
	for i := range n {
		v, err := valueAt[T](ln, i)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}

// PositiveNums returns, in order, the remaining tokens of ln
// that parse as T and are strictly greater than zero.
// Tokens that do not parse, or are not positive, are skipped silently:
// this is a filter, not an extraction, and it never fails.
// It consumes every token it scans.
func PositiveNums[T Number](ln *Line) []T {
	toks := ln.Tokens()
	ln.Skip(len(toks))
	return lo.FilterMap(toks, func(tok string, _ int) (T, bool) {
		v, err := parseToken[T](tok)
		return v, err == nil && v > 0
	})
}

// Chars consumes the next token of ln and returns its characters.
func Chars(ln *Line) ([]rune, error) {
	tok, ok := ln.next()
	if !ok {
		return nil, &ArityError{Needed: 1, Found: 0, LineInfo: ln.infoNext()}
	}

	return []rune(tok), nil
}

// Char consumes the next token of ln,
// which must be exactly one character long.
func Char(ln *Line) (rune, error) {
	tok, ok := ln.next()
	if !ok {
		return 0, &ArityError{Needed: 1, Found: 0, LineInfo: ln.infoNext()}
	}
	if utf8.RuneCountInString(tok) != 1 {
		return 0, &ConversionError{
			Token:    tok,
			Target:   "char",
			LineInfo: ln.infoLast(),
		}
	}

	r, _ := utf8.DecodeRuneInString(tok)
	return r, nil
}

// Index consumes a 1-based index token and returns it 0-based,
// ready for slice indexing.
func Index(ln *Line) (int, error) {
	v, err := Value[int](ln)
	if err != nil {
		return 0, err
	}
	return v - 1, nil
}

func need(ln *Line, n int) error {
	if rem := ln.Remaining(); rem < n {
		return &ArityError{Needed: n, Found: rem, LineInfo: ln.infoNext()}
	}
	return nil
}

func valueAt[T any](ln *Line, pos int) (T, error) {
	var zero T
	tok, ok := ln.next()
	if !ok {
		return zero, &ArityError{
			Needed:   pos + 1,
			Found:    pos,
			LineInfo: ln.infoNext(),
		}
	}

	v, err := parseToken[T](tok)
	if err != nil {
		return zero, &ConversionError{
			Token:    tok,
			Target:   fmt.Sprintf("%T", zero),
			Pos:      pos,
			Cause:    err,
			LineInfo: ln.infoLast(),
		}
	}

	return v, nil
}

func pair[T1, T2 any](ln *Line, pos int) (T1, T2, error) {
	var v2 T2
	v1, err := valueAt[T1](ln, pos)
	if err == nil {
		v2, err = valueAt[T2](ln, pos+1)
	}
	return v1, v2, err
}

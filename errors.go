package lineio

import (
	"errors"
	"fmt"
)

var (
	ErrInput = errorWrap("input failure", nil)

	ErrExtract    = errorWrap("extract error", nil)
	ErrConversion = errorWrap("conversion failure", ErrExtract)
	ErrArity      = errorWrap("not enough tokens", ErrExtract)
)

// LineInfo carries the source location of a failure.
type LineInfo struct {
	// The 1-based index of the line in the input
	Lineno int
	// The 1-based index of the token at question within the line
	Offset int
	// The full text of the line at Lineno
	Text string
}

func (l LineInfo) String() string {
	return fmt.Sprintf("line %d:%d", l.Lineno, l.Offset)
}

// ErrorLocation returns the source location recorded on err,
// or the zero LineInfo if err carries none.
func ErrorLocation(err error) LineInfo {
	var located interface{ Location() LineInfo }
	if errors.As(err, &located) {
		return located.Location()
	}

	return LineInfo{}
}

// IOError reports an unreadable source or an unrecoverable read error.
// It matches ErrInput and unwraps to the underlying error.
type IOError struct {
	Err error
}

func (e *IOError) Error() string {
	return "input failure: " + e.Err.Error()
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func (e *IOError) Is(target error) bool {
	return target == ErrInput
}

// ConversionError reports a single token that did not parse
// as the requested target type.
// It matches ErrConversion and, through Is, the underlying cause.
type ConversionError struct {
	// The offending token, verbatim
	Token string
	// Name of the requested target type
	Target string
	// 0-indexed position of the token within the extraction call
	Pos int
	// Underlying parse error, if any
	Cause error

	LineInfo
}

func (e *ConversionError) Error() string {
	detail := ""
	if e.Cause != nil {
		detail = ": " + e.Cause.Error()
	}

	if e.Lineno == 0 {
		return fmt.Sprintf("conversion failure: %q is not a valid %s%s",
			e.Token, e.Target, detail)
	}

	return fmt.Sprintf("conversion failure at %v: %q is not a valid %s%s",
		e.LineInfo, e.Token, e.Target, detail)
}

func (e *ConversionError) Unwrap() error {
	return ErrConversion
}

func (e *ConversionError) Is(target error) bool {
	return errors.Is(e.Cause, target)
}

func (e *ConversionError) Location() LineInfo {
	return e.LineInfo
}

// ArityError reports an extraction that requested more tokens
// than the line had left.
// It matches ErrArity.
type ArityError struct {
	// Number of tokens the requested shape needs
	Needed int
	// Number of tokens that were actually available
	Found int

	LineInfo
}

func (e *ArityError) Error() string {
	if e.Lineno == 0 {
		return fmt.Sprintf("not enough tokens: needed %d, found %d",
			e.Needed, e.Found)
	}

	return fmt.Sprintf("not enough tokens at %v: needed %d, found %d",
		e.LineInfo, e.Needed, e.Found)
}

func (e *ArityError) Unwrap() error {
	return ErrArity
}

func (e *ArityError) Location() LineInfo {
	return e.LineInfo
}

type errSimpleWrapper struct {
	Err     error
	Message string
}

func errorWrap(msg string, err error) error {
	return errSimpleWrapper{err, msg}
}

func (err errSimpleWrapper) Error() string {
	return err.Message
}

func (err errSimpleWrapper) Unwrap() error {
	return err.Err
}

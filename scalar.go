package lineio

import (
	"encoding"
	"fmt"
	"strconv"
)

// Unmarshaler is the capability an extraction target implements
// to parse itself from a single token.
// Types implementing encoding.TextUnmarshaler are accepted too,
// which covers the math/big types without any special casing here.
type Unmarshaler interface {
	UnmarshalToken(tok string) error
}

// parseToken converts one token into a value of type T.
// The error is the raw parse failure;
// extraction wraps it with token and position detail.
func parseToken[T any](tok string) (T, error) {
	var v T
	err := parseInto(&v, tok)
	return v, err
}

func parseInto(dst any, tok string) error {
	switch p := dst.(type) {
	case *string:
		*p = tok
		return nil

	case *bool:
		v, err := strconv.ParseBool(tok)
		*p = v
		return err

	case *int:
		v, err := strconv.ParseInt(tok, 10, strconv.IntSize)
		*p = int(v)
		return err

	case *int8:
		v, err := strconv.ParseInt(tok, 10, 8)
		*p = int8(v)
		return err

	case *int16:
		v, err := strconv.ParseInt(tok, 10, 16)
		*p = int16(v)
		return err

	case *int32:
		v, err := strconv.ParseInt(tok, 10, 32)
		*p = int32(v)
		return err

	case *int64:
		v, err := strconv.ParseInt(tok, 10, 64)
		*p = v
		return err

	case *uint:
		v, err := strconv.ParseUint(tok, 10, strconv.IntSize)
		*p = uint(v)
		return err

	case *uint8:
		v, err := strconv.ParseUint(tok, 10, 8)
		*p = uint8(v)
		return err

	case *uint16:
		v, err := strconv.ParseUint(tok, 10, 16)
		*p = uint16(v)
		return err

	case *uint32:
		v, err := strconv.ParseUint(tok, 10, 32)
		*p = uint32(v)
		return err

	case *uint64:
		v, err := strconv.ParseUint(tok, 10, 64)
		*p = v
		return err

	case *float32:
		v, err := strconv.ParseFloat(tok, 32)
		*p = float32(v)
		return err

	case *float64:
		v, err := strconv.ParseFloat(tok, 64)
		*p = v
		return err

	case *complex128:
		v, err := strconv.ParseComplex(tok, 128)
		*p = v
		return err

	case Unmarshaler:
		return p.UnmarshalToken(tok)

	case encoding.TextUnmarshaler:
		return p.UnmarshalText([]byte(tok))
	}

	return fmt.Errorf("type %T cannot be parsed from a token", dst)
}

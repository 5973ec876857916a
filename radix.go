package lineio

import (
	"errors"
	"fmt"
	"math/big"
)

// Radix conversion handles any magnitude, so it goes through big.Int.
const maxBase = 62

// ConvertRadix re-encodes an integer token from one base to another.
// Bases 2 through 62 are supported, and the token may be negative.
// A token containing a digit invalid in fromBase,
// or a base outside the supported range,
// fails with a ConversionError.
// Typed extraction never applies radix conversion implicitly.
func ConvertRadix(tok string, fromBase, toBase int) (string, error) {
	if fromBase < 2 || fromBase > maxBase || toBase < 2 || toBase > maxBase {
		return "", &ConversionError{
			Token:  tok,
			Target: "radix",
			Cause:  fmt.Errorf("base out of range [2,%d]", maxBase),
		}
	}

	n, ok := new(big.Int).SetString(tok, fromBase)
	if !ok {
		return "", &ConversionError{
			Token:  tok,
			Target: fmt.Sprintf("base-%d integer", fromBase),
			Cause:  errors.New("invalid digit"),
		}
	}

	return n.Text(toBase), nil
}

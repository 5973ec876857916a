package lineio

import (
	"crypto/md5"
	"encoding/hex"
)

// MD5Hex returns the lowercase hex MD5 digest of s.
// Several judge problems are built around chasing digest prefixes,
// so this saves the ceremony each time.
func MD5Hex(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

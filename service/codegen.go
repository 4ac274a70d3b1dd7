package service

import (
	"crypto/rand"
	"math/big"
)

const codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateCode returns a random alphanumeric join code of the given length.
// Codes are drawn from a secure source so they stay unguessable between
// sessions, which is all the engine requires of its id supplier.
func GenerateCode(length int) string {
	code := make([]byte, length)
	max := big.NewInt(int64(len(codeCharset)))

	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the platform source is broken.
			panic(err)
		}
		code[i] = codeCharset[n.Int64()]
	}
	return string(code)
}

package password

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
)

// GeneratedLen is the length of every generated password.
const GeneratedLen = 16

const (
	lower   = "abcdefghijklmnopqrstuvwxyz"
	upper   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits  = "0123456789"
	symbols = "!@#$%^&*"

	alphabet = lower + upper + digits + symbols
)

var ErrRandomUnavailable = errors.New("password: secure random source unavailable")

// Generator draws passwords from Reader. A nil Reader means crypto/rand.
type Generator struct {
	Reader io.Reader
}

// Generate returns a GeneratedLen password from crypto/rand.
func Generate() (string, error) {
	return Generator{}.Generate()
}

// Generate fills every position uniformly from the full alphabet, then forces
// positions 0..3 to a lowercase letter, an uppercase letter, a digit and a symbol.
func (g Generator) Generate() (string, error) {
	src := g.Reader
	if src == nil {
		src = rand.Reader
	}

	buf := make([]byte, GeneratedLen)
	for i := range buf {
		c, err := pick(src, alphabet)
		if err != nil {
			return "", err
		}
		buf[i] = c
	}

	for i, set := range [...]string{lower, upper, digits, symbols} {
		c, err := pick(src, set)
		if err != nil {
			return "", err
		}
		buf[i] = c
	}
	return string(buf), nil
}

// pick returns a uniformly chosen byte of set.
func pick(src io.Reader, set string) (byte, error) {
	n, err := rand.Int(src, big.NewInt(int64(len(set))))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrRandomUnavailable, err)
	}
	return set[n.Int64()], nil
}

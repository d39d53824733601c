// Package generator produces strong random passwords and scores
// candidate passwords for strength.
package generator

import (
	"crypto/rand"
	"errors"
	"math/big"

	zxcvbn "github.com/nbutton23/zxcvbn-go"
)

// DefaultLength is used when the caller does not care.
const DefaultLength = 16

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"0123456789" +
	"!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Generate returns a random password of the given length drawn uniformly
// from letters, digits and punctuation. Non-positive length falls back to
// DefaultLength.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}
	out := make([]byte, length)
	alphaLen := big.NewInt(int64(len(alphabet)))
	for i := range out {
		n, err := rand.Int(rand.Reader, alphaLen)
		if err != nil {
			return "", errors.New("generator: no entropy available")
		}
		out[i] = alphabet[n.Int64()]
	}
	return string(out), nil
}

// Strength scores a password 0 (trivial) to 4 (very strong) using the
// zxcvbn estimator.
func Strength(password string) int {
	return zxcvbn.PasswordStrength(password, nil).Score
}

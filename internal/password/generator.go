package password

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	upperChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerChars = "abcdefghijklmnopqrstuvwxyz"
	digitChars = "0123456789"
	allChars   = upperChars + lowerChars + digitChars + SpecialChars
)

// DefaultLength is the generated password length when callers have no
// stricter requirement.
const DefaultLength = 12

// MinLength is the smallest length that can satisfy all four character
// class guarantees.
const MinLength = 4

// InvalidLengthError reports a generation request too short to hold one
// character from each required class.
type InvalidLengthError struct {
	Requested int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("password length %d is below the minimum of %d", e.Requested, MinLength)
}

// Generate produces a random password of the given length guaranteed to
// pass ValidateStrength: one character from each class up front, the
// remainder drawn from the combined set, then a uniform shuffle of the
// whole sequence. Lengths below MinLength are rejected.
func Generate(length int) (string, error) {
	if length < MinLength {
		return "", &InvalidLengthError{Requested: length}
	}

	chars := make([]byte, 0, length)
	for _, set := range []string{upperChars, lowerChars, digitChars, SpecialChars} {
		c, err := randomChar(set)
		if err != nil {
			return "", err
		}
		chars = append(chars, c)
	}
	for i := MinLength; i < length; i++ {
		c, err := randomChar(allChars)
		if err != nil {
			return "", err
		}
		chars = append(chars, c)
	}

	// Fisher-Yates so the guaranteed characters are not pinned to the front.
	for i := len(chars) - 1; i > 0; i-- {
		j, err := randomInt(i + 1)
		if err != nil {
			return "", err
		}
		chars[i], chars[j] = chars[j], chars[i]
	}

	return string(chars), nil
}

func randomChar(set string) (byte, error) {
	i, err := randomInt(len(set))
	if err != nil {
		return 0, err
	}
	return set[i], nil
}

func randomInt(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("random draw failed: %w", err)
	}
	return int(v.Int64()), nil
}

package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// codeSpan is the size of the 6-digit verification code range [100000, 999999]
const codeSpan = 900000

// GenerateVerificationCode returns a 6-digit numeric code sampled uniformly
// from [100000, 999999]
func GenerateVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeSpan))
	if err != nil {
		return "", fmt.Errorf("failed to generate verification code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

// IsSixDigitCode reports whether s consists of exactly six ASCII digits
func IsSixDigitCode(s string) bool {
	if len(s) != 6 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

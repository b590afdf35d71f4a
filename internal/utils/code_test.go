package utils

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateVerificationCode(t *testing.T) {
	for i := 0; i < 100; i++ {
		code, err := GenerateVerificationCode()
		require.NoError(t, err)
		require.True(t, IsSixDigitCode(code), "got %q", code)

		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100000)
		assert.LessOrEqual(t, n, 999999)
	}
}

func TestIsSixDigitCode(t *testing.T) {
	tests := []struct {
		name  string
		code  string
		valid bool
	}{
		{name: "valid code", code: "123456", valid: true},
		{name: "lowest code", code: "100000", valid: true},
		{name: "too short", code: "12345", valid: false},
		{name: "too long", code: "1234567", valid: false},
		{name: "empty", code: "", valid: false},
		{name: "letters", code: "12a456", valid: false},
		{name: "whitespace", code: "123 56", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsSixDigitCode(tt.code))
		})
	}
}

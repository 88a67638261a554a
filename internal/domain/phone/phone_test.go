package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"bare national number gets country code", "9876543210", "919876543210"},
		{"national number starting with country digits", "9187654321", "919187654321"},
		{"already has country code", "919876543210", "919876543210"},
		{"plus prefix stripped", "+919876543210", "919876543210"},
		{"spaces and dashes stripped", "+91 98765-43210", "919876543210"},
		{"parentheses stripped", "(91) 98765 43210", "919876543210"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Normalize(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalizeRejects(t *testing.T) {
	cases := []struct {
		name string
		in   string
		err  error
	}{
		{"empty", "", ErrEmpty},
		{"whitespace only", "   ", ErrEmpty},
		{"letters", "98765abcde", ErrNotDigits},
		{"too short", "12345678", ErrLength},
		{"too long", "1234567890123456", ErrLength},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Normalize(tc.in)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestNormalizeWithCountry(t *testing.T) {
	got, err := NormalizeWithCountry("0812345678", "62")
	require.NoError(t, err)
	assert.Equal(t, "620812345678", got)

	// empty country code leaves the number as-is
	got, err = NormalizeWithCountry("9876543210", "")
	require.NoError(t, err)
	assert.Equal(t, "9876543210", got)
}

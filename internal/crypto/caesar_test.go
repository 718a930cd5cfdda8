package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaesarEncode(t *testing.T) {
	tests := []struct {
		name string
		text string
		key  int
		want string
	}{
		{name: "shift by one", text: "AB", key: 1, want: "BC"},
		{name: "wraps at the end of the table", text: "~", key: 1, want: "!"},
		{name: "negative key", text: "BC", key: -1, want: "AB"},
		{name: "key larger than the table", text: "AB", key: 95, want: "BC"},
		{name: "spaces are preserved", text: "A  B", key: 1, want: "B  C"},
		{name: "non-ascii passes through", text: "é A", key: 2, want: "é C"},
		{name: "empty text", text: "", key: 7, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CaesarEncode(tt.text, tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCaesarDecode(t *testing.T) {
	got, err := CaesarDecode("BC", 1)
	require.NoError(t, err)
	assert.Equal(t, "AB", got)

	got, err = CaesarDecode("!", 1)
	require.NoError(t, err)
	assert.Equal(t, "~", got)
}

func TestCaesar_RejectsMultiplesOfTableLength(t *testing.T) {
	for _, key := range []int{0, 94, -94, 188} {
		_, err := CaesarEncode("x", key)
		assert.ErrorIs(t, err, ErrInvalidKey, "encode key %d", key)

		_, err = CaesarDecode("x", key)
		assert.ErrorIs(t, err, ErrInvalidKey, "decode key %d", key)
	}
}

func TestCaesar_RoundTrip(t *testing.T) {
	texts := []string{
		"Hello, World!",
		"The quick brown fox jumps over the lazy dog 0123456789",
		"~!@#$%^&*()_+{}|:\"<>?",
		"  leading and trailing  ",
		"mixed\ttabs\nand newlines",
	}
	keys := []int{1, 3, 47, 93, 95, -1, -50, 1000}

	for _, text := range texts {
		for _, key := range keys {
			enc, err := CaesarEncode(text, key)
			require.NoError(t, err)

			dec, err := CaesarDecode(enc, key)
			require.NoError(t, err)
			assert.Equal(t, text, dec, "key %d", key)
		}
	}
}

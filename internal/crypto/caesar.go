package crypto

import (
	"fmt"
	"strings"
)

// CaesarEncode shifts every [Table] symbol of text forward by key
// positions. Runes outside the table (space, control characters, non-ASCII)
// are copied unchanged, so spacing is preserved exactly.
//
// A key that is a multiple of [AlphabetSize] would leave the text unchanged
// and is rejected with [ErrInvalidKey].
func CaesarEncode(text string, key int) (string, error) {
	if err := validateShift(key); err != nil {
		return "", err
	}
	return shift(text, mod(key, AlphabetSize)), nil
}

// CaesarDecode reverses [CaesarEncode] for the same key.
func CaesarDecode(text string, key int) (string, error) {
	if err := validateShift(key); err != nil {
		return "", err
	}
	return shift(text, AlphabetSize-mod(key, AlphabetSize)), nil
}

func validateShift(key int) error {
	if mod(key, AlphabetSize) == 0 {
		return fmt.Errorf("%w: caesar shift %d is a multiple of %d", ErrInvalidKey, key, AlphabetSize)
	}
	return nil
}

// shift moves every table symbol forward by k, which must already be
// reduced into [0, AlphabetSize).
func shift(text string, k int) string {
	table := Table()

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		idx, ok := table.IndexOf(r)
		if !ok {
			b.WriteRune(r)
			continue
		}
		b.WriteRune(table.SymbolAt(idx + k))
	}
	return b.String()
}

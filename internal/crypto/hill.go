package crypto

import (
	"fmt"
	"strconv"
	"strings"
)

// hillPad is appended to plaintext until its length is a multiple of the
// key size. It is not a [Table] symbol, so a padded block is never
// enciphered.
const hillPad = ' '

// MaxHillKeySize bounds the side of a Hill key. The determinant and
// cofactors are computed by Laplace expansion, which is factorial in n.
const MaxHillKeySize = 8

// HillEncode enciphers text with the n x n key matrix over [Table].
//
// The text is right-padded with spaces to a multiple of n runes and cut
// into blocks of n runes. A block made only of table symbols is replaced
// by key·v mod 94; any other block (padding, spaces, non-ASCII runes) is
// copied unchanged.
//
// Returns [ErrInvalidKey] for an empty or non-square key and
// [ErrNotInvertible] when det(key) is not coprime with 94.
func HillEncode(text string, key Matrix) (string, error) {
	if err := validateHillKey(key); err != nil {
		return "", err
	}

	runes := []rune(text)
	for len(runes)%key.Size() != 0 {
		runes = append(runes, hillPad)
	}

	return hillApply(runes, key), nil
}

// HillDecode reverses [HillEncode] using the modular inverse of key. The
// result keeps the trailing padding added during encoding; callers that
// need the exact original length must track it themselves.
func HillDecode(ciphertext string, key Matrix) (string, error) {
	if err := validateHillKey(key); err != nil {
		return "", err
	}

	inv, err := InverseMatrix(key, AlphabetSize)
	if err != nil {
		return "", err
	}

	return hillApply([]rune(ciphertext), inv), nil
}

func validateHillKey(key Matrix) error {
	if !key.IsSquare() {
		return fmt.Errorf("%w: hill key must be a non-empty square matrix", ErrInvalidKey)
	}
	if key.Size() > MaxHillKeySize {
		return fmt.Errorf("%w: hill key is %dx%d, at most %dx%d is supported", ErrInvalidKey, key.Size(), key.Size(), MaxHillKeySize, MaxHillKeySize)
	}

	det := Determinant(key, AlphabetSize)
	if GCD(det, AlphabetSize) != 1 {
		return fmt.Errorf("%w: gcd(det=%d, %d) != 1", ErrNotInvertible, det, AlphabetSize)
	}
	return nil
}

// hillApply multiplies every all-table block of runes by key. A trailing
// block shorter than the key is copied unchanged.
func hillApply(runes []rune, key Matrix) string {
	table := Table()
	n := key.Size()

	var b strings.Builder
	b.Grow(len(runes))

	block := make([]int, n)
	for start := 0; start < len(runes); start += n {
		end := min(start+n, len(runes))
		chunk := runes[start:end]

		if len(chunk) < n || !blockIndices(table, chunk, block) {
			b.WriteString(string(chunk))
			continue
		}

		for _, idx := range MultiplyVector(key, block, AlphabetSize) {
			b.WriteRune(table.SymbolAt(idx))
		}
	}
	return b.String()
}

// blockIndices fills dst with the table indices of chunk and reports
// whether every rune was found.
func blockIndices(table *Alphabet, chunk []rune, dst []int) bool {
	for i, r := range chunk {
		idx, ok := table.IndexOf(r)
		if !ok {
			return false
		}
		dst[i] = idx
	}
	return true
}

// ParseHillKey parses a matrix written as semicolon-separated rows of
// comma-separated integers, e.g. "3,2;5,7". Whitespace around numbers is
// ignored. Only the row count is checked here; the codecs reject
// non-square and oversized keys.
func ParseHillKey(s string) (Matrix, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty hill key", ErrInvalidKey)
	}

	rows := strings.Split(s, ";")
	if len(rows) > MaxHillKeySize {
		return nil, fmt.Errorf("%w: hill key has %d rows, at most %d are supported", ErrInvalidKey, len(rows), MaxHillKeySize)
	}
	m := make(Matrix, 0, len(rows))
	for i, row := range rows {
		cells := strings.Split(row, ",")
		parsed := make([]int, 0, len(cells))
		for j, cell := range cells {
			v, err := strconv.Atoi(strings.TrimSpace(cell))
			if err != nil {
				return nil, fmt.Errorf("%w: hill key cell [%d][%d] %q is not an integer", ErrInvalidKey, i, j, cell)
			}
			parsed = append(parsed, v)
		}
		m = append(m, parsed)
	}
	return m, nil
}

// FormatHillKey is the inverse of [ParseHillKey].
func FormatHillKey(m Matrix) string {
	rows := make([]string, len(m))
	for i, row := range m {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = strconv.Itoa(v)
		}
		rows[i] = strings.Join(cells, ",")
	}
	return strings.Join(rows, ";")
}

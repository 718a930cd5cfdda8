package crypto

import "sync"

const (
	// firstPrintable and lastPrintable bound the symbols of [Table].
	firstPrintable = '!'
	lastPrintable  = '~'

	// AlphabetSize is the number of symbols in [Table] and the modulus of
	// all Caesar and Hill index arithmetic.
	AlphabetSize = lastPrintable - firstPrintable + 1
)

// Alphabet is an ordered, duplicate-free symbol set with a bijection
// between symbols and their 0-based indices.
type Alphabet struct {
	symbols []rune
	index   map[rune]int
}

// Table returns the process-wide alphabet of the 94 printable ASCII
// symbols ('!' through '~'). It is built once and never mutated.
var Table = sync.OnceValue(func() *Alphabet {
	symbols := make([]rune, 0, AlphabetSize)
	for r := rune(firstPrintable); r <= lastPrintable; r++ {
		symbols = append(symbols, r)
	}
	return NewAlphabet(symbols)
})

// NewAlphabet builds an [Alphabet] from symbols. Repeated symbols keep the
// index of their first occurrence in the lookup map.
func NewAlphabet(symbols []rune) *Alphabet {
	a := &Alphabet{
		symbols: make([]rune, len(symbols)),
		index:   make(map[rune]int, len(symbols)),
	}
	copy(a.symbols, symbols)
	for i, r := range a.symbols {
		if _, ok := a.index[r]; !ok {
			a.index[r] = i
		}
	}
	return a
}

// Len returns the number of symbols.
func (a *Alphabet) Len() int {
	return len(a.symbols)
}

// IndexOf returns the index of r and whether r belongs to the alphabet.
func (a *Alphabet) IndexOf(r rune) (int, bool) {
	i, ok := a.index[r]
	return i, ok
}

// Contains reports whether r belongs to the alphabet.
func (a *Alphabet) Contains(r rune) bool {
	_, ok := a.index[r]
	return ok
}

// SymbolAt returns the symbol at index i reduced modulo Len, so negative
// and overflowing indices wrap around.
func (a *Alphabet) SymbolAt(i int) rune {
	return a.symbols[mod(i, len(a.symbols))]
}

// String returns the symbols in order.
func (a *Alphabet) String() string {
	return string(a.symbols)
}

package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_HasPrintableASCII(t *testing.T) {
	table := Table()

	require.Equal(t, 94, table.Len())
	assert.Equal(t, '!', table.SymbolAt(0))
	assert.Equal(t, '~', table.SymbolAt(93))

	for i := range table.Len() {
		r := table.SymbolAt(i)
		idx, ok := table.IndexOf(r)
		require.True(t, ok)
		assert.Equal(t, i, idx, "symbol %q", r)
	}
}

func TestTable_IsSingleton(t *testing.T) {
	assert.Same(t, Table(), Table())
}

func TestTable_ExcludesSpaceAndNonASCII(t *testing.T) {
	table := Table()

	for _, r := range []rune{' ', '\n', '\t', 'é', 0x7f} {
		_, ok := table.IndexOf(r)
		assert.False(t, ok, "rune %q must not be in the table", r)
	}
}

func TestAlphabet_SymbolAtWraps(t *testing.T) {
	table := Table()

	assert.Equal(t, table.SymbolAt(0), table.SymbolAt(94))
	assert.Equal(t, table.SymbolAt(93), table.SymbolAt(-1))
	assert.Equal(t, table.SymbolAt(5), table.SymbolAt(5+94*3))
}

func TestNewAlphabet_KeepsFirstOccurrence(t *testing.T) {
	a := NewAlphabet([]rune("ABA"))

	idx, ok := a.IndexOf('A')
	require.True(t, ok)
	assert.Equal(t, 0, idx)
	assert.Equal(t, "ABA", a.String())
	assert.True(t, a.Contains('B'))
	assert.False(t, a.Contains('C'))
}

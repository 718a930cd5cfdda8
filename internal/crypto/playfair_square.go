package crypto

import (
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru"
)

// Allowed Playfair universes, in canonical order.
const (
	lettersWithoutJ = "ABCDEFGHIKLMNOPQRSTUVWXYZ"
	letters         = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	alphanumerics   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// DefaultSquareCacheSize is the number of squares kept by the package-level
// cache used by [PlayfairEncode] and [PlayfairDecode].
const DefaultSquareCacheSize = 128

// Position is the row and column of a symbol inside a [Square].
type Position struct {
	Row int
	Col int
}

// Square is a size x size Playfair grid together with its inverse
// symbol → position map. A Square is immutable once built.
//
// The 26-letter universe does not fit a 5x5 grid: the symbol that would
// land in cell 26 is left out of the square and treated as foreign.
type Square struct {
	size      int
	mergeJ    bool
	universe  string
	grid      [][]rune
	positions map[rune]Position
}

// universeFor returns the allowed symbols for a square of the given size.
// mergeJ only matters for 5x5 squares.
func universeFor(size int, mergeJ bool) (string, error) {
	switch size {
	case 5:
		if mergeJ {
			return lettersWithoutJ, nil
		}
		return letters, nil
	case 6:
		return alphanumerics, nil
	default:
		return "", fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
}

// NewSquare builds the square for key. The distinct allowed symbols of the
// upper-cased key come first, in order of first occurrence, followed by
// the rest of the universe in canonical order.
func NewSquare(key string, size int, mergeJ bool) (*Square, error) {
	universe, err := universeFor(size, mergeJ)
	if err != nil {
		return nil, err
	}
	mergeJ = mergeJ && size == 5

	key = strings.ToUpper(key)
	if mergeJ {
		key = strings.ReplaceAll(key, "J", "I")
	}

	sequence := make([]rune, 0, size*size)
	seen := make(map[rune]bool, size*size)
	for _, r := range key + universe {
		if seen[r] || !strings.ContainsRune(universe, r) {
			continue
		}
		seen[r] = true
		sequence = append(sequence, r)
	}

	sq := &Square{
		size:      size,
		mergeJ:    mergeJ,
		grid:      make([][]rune, size),
		positions: make(map[rune]Position, size*size),
	}
	for row := range size {
		sq.grid[row] = sequence[row*size : (row+1)*size]
		for col, r := range sq.grid[row] {
			sq.positions[r] = Position{Row: row, Col: col}
		}
	}
	sq.universe = strings.Map(func(r rune) rune {
		if sq.Contains(r) {
			return r
		}
		return -1
	}, universe)
	return sq, nil
}

// Size returns the side length of the square.
func (s *Square) Size() int {
	return s.size
}

// MergeJ reports whether J is folded into I.
func (s *Square) MergeJ() bool {
	return s.mergeJ
}

// Universe returns the symbols placed in the grid, in canonical order.
func (s *Square) Universe() string {
	return s.universe
}

// At returns the symbol at (row, col), wrapping both coordinates.
func (s *Square) At(row, col int) rune {
	return s.grid[mod(row, s.size)][mod(col, s.size)]
}

// PositionOf returns the position of r and whether r is in the square.
func (s *Square) PositionOf(r rune) (Position, bool) {
	p, ok := s.positions[r]
	return p, ok
}

// Contains reports whether r is part of the square's universe.
func (s *Square) Contains(r rune) bool {
	_, ok := s.positions[r]
	return ok
}

// Rows returns the grid as strings, one per row.
func (s *Square) Rows() []string {
	rows := make([]string, s.size)
	for i, row := range s.grid {
		rows[i] = string(row)
	}
	return rows
}

// String renders the grid one row per line.
func (s *Square) String() string {
	return strings.Join(s.Rows(), "\n")
}

// SquareCache memoizes squares by (key, size, mergeJ). It is safe for
// concurrent use; two goroutines racing on the same key build identical
// squares, so whichever is stored last is equally valid.
type SquareCache struct {
	cache *lru.Cache
}

type squareCacheKey struct {
	key    string
	size   int
	mergeJ bool
}

// NewSquareCache returns a cache holding at most size squares.
func NewSquareCache(size int) (*SquareCache, error) {
	c, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("error creating square cache: %w", err)
	}
	return &SquareCache{cache: c}, nil
}

// Get returns the cached square for the parameters, building and storing
// it on a miss.
func (c *SquareCache) Get(key string, size int, mergeJ bool) (*Square, error) {
	k := squareCacheKey{key: key, size: size, mergeJ: mergeJ}
	if v, ok := c.cache.Get(k); ok {
		return v.(*Square), nil
	}

	sq, err := NewSquare(key, size, mergeJ)
	if err != nil {
		return nil, err
	}
	c.cache.Add(k, sq)
	return sq, nil
}

// Len returns the number of cached squares.
func (c *SquareCache) Len() int {
	return c.cache.Len()
}

var defaultSquares = mustSquareCache(DefaultSquareCacheSize)

func mustSquareCache(size int) *SquareCache {
	c, err := NewSquareCache(size)
	if err != nil {
		panic(err)
	}
	return c
}

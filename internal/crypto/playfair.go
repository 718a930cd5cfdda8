package crypto

import (
	"fmt"
	"slices"
	"strings"
)

// Default Playfair parameters used when the caller gives only a keyword.
const (
	DefaultPlayfairSize   = 5
	DefaultPlayfairMergeJ = true
	defaultFiller         = 'X'
	fallbackFiller        = 'Z'
)

// PlayfairMeta is the side channel produced by [PlayfairEncode]. Without it
// decryption only recovers the canonical upper-cased, I/J-merged,
// filler-padded text.
type PlayfairMeta struct {
	Key    string `json:"key"`
	Size   int    `json:"size"`
	MergeJ bool   `json:"mergeJ"`

	// Filler is the symbol used to split doubled letters and to complete
	// the final pair.
	Filler string `json:"filler"`

	// XAddedEnd is set when the last pair was a lone symbol completed with
	// Filler.
	XAddedEnd bool `json:"xAddedEnd"`

	// InsertedFillerPositions are the indices, in the paired sequence, of
	// fillers inserted between doubled letters. The trailing filler is
	// covered by XAddedEnd instead.
	InsertedFillerPositions []int `json:"insertedFillerPositions"`

	// JPositions are the indices, in the normalized text, of symbols that
	// were "J" before being folded into "I". Empty unless MergeJ.
	JPositions []int `json:"jPositions"`
}

// PlayfairCodec encodes and decodes with squares taken from a [SquareCache].
type PlayfairCodec struct {
	squares *SquareCache
}

// NewPlayfairCodec returns a codec that memoizes squares in squares. A nil
// cache falls back to the package-level one.
func NewPlayfairCodec(squares *SquareCache) *PlayfairCodec {
	if squares == nil {
		squares = defaultSquares
	}
	return &PlayfairCodec{squares: squares}
}

var defaultPlayfair = NewPlayfairCodec(nil)

// PlayfairEncode enciphers message with the package-level square cache.
// See [PlayfairCodec.Encode].
func PlayfairEncode(message, key string, size int, mergeJ bool) (string, PlayfairMeta, error) {
	return defaultPlayfair.Encode(message, key, size, mergeJ)
}

// PlayfairDecode deciphers ciphertext with the package-level square cache.
// See [PlayfairCodec.Decode].
func PlayfairDecode(ciphertext, key string, size int, mergeJ bool, meta *PlayfairMeta) (string, error) {
	return defaultPlayfair.Decode(ciphertext, key, size, mergeJ, meta)
}

// Encode normalizes message (upper-case, J→I when merging, symbols outside
// the square dropped), splits it into digraphs and substitutes each pair
// through the square for key.
//
// Symbols dropped by normalization cannot be recovered, with or without
// the returned metadata.
func (p *PlayfairCodec) Encode(message, key string, size int, mergeJ bool) (string, PlayfairMeta, error) {
	sq, err := p.squares.Get(key, size, mergeJ)
	if err != nil {
		return "", PlayfairMeta{}, err
	}

	text, js := normalizePlayfair(message, sq)
	filler := chooseFiller(text, sq.Universe())
	pairs, inserted, addedEnd := pairUp(text, filler)

	var b strings.Builder
	b.Grow(len(pairs) * 2)
	for _, pair := range pairs {
		out, err := sq.encipher(pair)
		if err != nil {
			return "", PlayfairMeta{}, err
		}
		b.WriteRune(out[0])
		b.WriteRune(out[1])
	}

	meta := PlayfairMeta{
		Key:                     key,
		Size:                    size,
		MergeJ:                  mergeJ,
		Filler:                  string(filler),
		XAddedEnd:               addedEnd,
		InsertedFillerPositions: inserted,
		JPositions:              js,
	}
	return b.String(), meta, nil
}

// Decode reverses [PlayfairCodec.Encode]. With meta it strips inserted fillers
// and restores every J, returning the original message (minus symbols lost
// to normalization). With a nil meta it returns the canonical form.
func (p *PlayfairCodec) Decode(ciphertext, key string, size int, mergeJ bool, meta *PlayfairMeta) (string, error) {
	sq, err := p.squares.Get(key, size, mergeJ)
	if err != nil {
		return "", err
	}

	text, _ := normalizePlayfair(ciphertext, sq)
	if len(text)%2 == 1 {
		pad := metaFiller(meta)
		if !sq.Contains(pad) {
			return "", fmt.Errorf("%w: playfair filler %q is not in the square", ErrInvalidKey, pad)
		}
		text = append(text, pad)
	}

	plain := make([]rune, 0, len(text))
	for i := 0; i < len(text); i += 2 {
		out, err := sq.decipher(digraph{text[i], text[i+1]})
		if err != nil {
			return "", err
		}
		plain = append(plain, out[0], out[1])
	}

	if meta == nil {
		return string(plain), nil
	}
	return restore(plain, meta, sq.MergeJ()), nil
}

type digraph [2]rune

// encipher substitutes one pair: same row shifts right, same column shifts
// down, otherwise the pair swaps columns.
func (s *Square) encipher(d digraph) (digraph, error) {
	return s.substitute(d, 1)
}

// decipher is the inverse of encipher.
func (s *Square) decipher(d digraph) (digraph, error) {
	return s.substitute(d, -1)
}

// substitute requires both runes of d to be in the square. Normalized text
// always is; a rune that is not would otherwise read as position (0,0).
func (s *Square) substitute(d digraph, step int) (digraph, error) {
	a, okA := s.positions[d[0]]
	b, okB := s.positions[d[1]]
	if !okA || !okB {
		return digraph{}, fmt.Errorf("%w: playfair pair %q is not in the square", ErrInvalidKey, string(d[:]))
	}
	switch {
	case a.Row == b.Row:
		return digraph{s.At(a.Row, a.Col+step), s.At(b.Row, b.Col+step)}, nil
	case a.Col == b.Col:
		return digraph{s.At(a.Row+step, a.Col), s.At(b.Row+step, b.Col)}, nil
	default:
		return digraph{s.At(a.Row, b.Col), s.At(b.Row, a.Col)}, nil
	}
}

// normalizePlayfair upper-cases text, folds J into I when the square does,
// and keeps only symbols present in the square. It also returns the
// indices of folded J's in the normalized result.
func normalizePlayfair(text string, sq *Square) (out []rune, js []int) {
	out = make([]rune, 0, len(text))
	js = make([]int, 0)
	for _, r := range strings.ToUpper(text) {
		if r == 'J' && sq.MergeJ() {
			js = append(js, len(out))
			r = 'I'
		}
		if sq.Contains(r) {
			out = append(out, r)
		}
	}
	return out, js
}

// chooseFiller picks X when the text has none, otherwise the first symbol
// of the universe missing from the text, and Z when every symbol occurs.
// A candidate outside the universe is skipped.
func chooseFiller(text []rune, universe string) rune {
	if strings.ContainsRune(universe, defaultFiller) && !slices.Contains(text, defaultFiller) {
		return defaultFiller
	}
	for _, r := range universe {
		if !slices.Contains(text, r) {
			return r
		}
	}
	if strings.ContainsRune(universe, fallbackFiller) || universe == "" {
		return fallbackFiller
	}
	return []rune(universe)[len([]rune(universe))-1]
}

// pairUp walks text left to right. A doubled letter or a lone trailing
// symbol is completed with filler and the cursor advances by one;
// otherwise two symbols are consumed. It returns the pairs, the sequence
// indices of fillers inserted between doubled letters, and whether a
// trailing filler completed the last pair.
func pairUp(text []rune, filler rune) (pairs []digraph, inserted []int, addedEnd bool) {
	pairs = make([]digraph, 0, len(text)/2+1)
	inserted = make([]int, 0)

	for i := 0; i < len(text); {
		a := text[i]
		switch {
		case i+1 == len(text):
			pairs = append(pairs, digraph{a, filler})
			addedEnd = true
			i++
		case text[i+1] == a:
			inserted = append(inserted, 2*len(pairs)+1)
			pairs = append(pairs, digraph{a, filler})
			i++
		default:
			pairs = append(pairs, digraph{a, text[i+1]})
			i += 2
		}
	}
	return pairs, inserted, addedEnd
}

func metaFiller(meta *PlayfairMeta) rune {
	if meta != nil && meta.Filler != "" {
		return []rune(meta.Filler)[0]
	}
	return defaultFiller
}

// restore removes synthetic fillers and, when the square folds J into I,
// puts back J at its recorded positions.
func restore(plain []rune, meta *PlayfairMeta, mergeJ bool) string {
	drop := make(map[int]bool, len(meta.InsertedFillerPositions))
	for _, pos := range meta.InsertedFillerPositions {
		drop[pos] = true
	}

	out := make([]rune, 0, len(plain))
	for i, r := range plain {
		if !drop[i] {
			out = append(out, r)
		}
	}

	filler := metaFiller(meta)
	if meta.XAddedEnd && len(out) > 0 && out[len(out)-1] == filler {
		out = out[:len(out)-1]
	}

	if !mergeJ {
		return string(out)
	}
	for _, pos := range meta.JPositions {
		if pos >= 0 && pos < len(out) && out[pos] == 'I' {
			out[pos] = 'J'
		}
	}
	return string(out)
}

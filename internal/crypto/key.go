// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Algorithm names a codec.
type Algorithm string

const (
	Caesar   Algorithm = "caesar"
	Hill     Algorithm = "hill"
	Playfair Algorithm = "playfair"
)

// Algorithms lists every supported codec.
var Algorithms = []Algorithm{Caesar, Hill, Playfair}

// ParseAlgorithm maps a user supplied name to an [Algorithm]. Matching is
// case-insensitive and accepts the "ceasar" spelling used by older clients.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "caesar", "ceasar":
		return Caesar, nil
	case "hill":
		return Hill, nil
	case "playfair":
		return Playfair, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// Key is the tagged variant of codec key material: [CaesarKey], [HillKey]
// or [PlayfairKey].
type Key interface {
	// Algorithm returns the codec the key belongs to.
	Algorithm() Algorithm

	// String returns the boundary serialization accepted by [ParseKey].
	String() string
}

// CaesarKey is a shift amount.
type CaesarKey struct {
	Shift int
}

func (CaesarKey) Algorithm() Algorithm { return Caesar }

func (k CaesarKey) String() string { return strconv.Itoa(k.Shift) }

// HillKey is a square key matrix.
type HillKey struct {
	Matrix Matrix
}

func (HillKey) Algorithm() Algorithm { return Hill }

func (k HillKey) String() string { return FormatHillKey(k.Matrix) }

// PlayfairKey is a keyword plus square parameters. Meta, when present, is
// the metadata produced by encryption and enables exact decryption.
type PlayfairKey struct {
	Keyword string
	Size    int
	MergeJ  bool
	Meta    *PlayfairMeta
}

func (PlayfairKey) Algorithm() Algorithm { return Playfair }

// String returns the metadata as JSON when it is attached, otherwise the
// bare keyword.
func (k PlayfairKey) String() string {
	if k.Meta != nil {
		raw, err := json.Marshal(k.Meta)
		if err == nil {
			return string(raw)
		}
	}
	return k.Keyword
}

// ParseKey parses raw key material for algorithm:
//   - Caesar: a decimal integer;
//   - Hill: a matrix in [ParseHillKey] form;
//   - Playfair: either a bare keyword (5x5 square, J merged into I) or a
//     JSON [PlayfairMeta] record.
func ParseKey(algorithm Algorithm, raw string) (Key, error) {
	switch algorithm {
	case Caesar:
		shift, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("%w: caesar key %q is not an integer", ErrInvalidKey, raw)
		}
		return CaesarKey{Shift: shift}, nil
	case Hill:
		m, err := ParseHillKey(raw)
		if err != nil {
			return nil, err
		}
		return HillKey{Matrix: m}, nil
	case Playfair:
		return parsePlayfairKey(raw)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}
}

func parsePlayfairKey(raw string) (Key, error) {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "{") {
		return PlayfairKey{Keyword: raw, Size: DefaultPlayfairSize, MergeJ: DefaultPlayfairMergeJ}, nil
	}

	var meta PlayfairMeta
	if err := json.Unmarshal([]byte(trimmed), &meta); err != nil {
		return nil, fmt.Errorf("%w: playfair metadata: %v", ErrInvalidKey, err)
	}
	if meta.Size == 0 {
		meta.Size = DefaultPlayfairSize
	}
	return PlayfairKey{Keyword: meta.Key, Size: meta.Size, MergeJ: meta.MergeJ, Meta: &meta}, nil
}

// Sealed is a ciphertext together with whatever side channel its codec
// produced.
type Sealed struct {
	Algorithm  Algorithm
	Ciphertext string
	Meta       *PlayfairMeta
}

// Codec dispatches [Key] variants to the matching cipher.
type Codec struct {
	playfair *PlayfairCodec
}

// NewCodec returns a Codec whose Playfair squares are memoized in squares.
// A nil cache uses the package-level one.
func NewCodec(squares *SquareCache) *Codec {
	return &Codec{playfair: NewPlayfairCodec(squares)}
}

var defaultCodec = NewCodec(nil)

// Encrypt enciphers text with the package-level [Codec].
func Encrypt(text string, key Key) (Sealed, error) {
	return defaultCodec.Encrypt(text, key)
}

// Decrypt deciphers sealed with the package-level [Codec].
func Decrypt(sealed Sealed, key Key) (string, error) {
	return defaultCodec.Decrypt(sealed, key)
}

// Encrypt enciphers text with key.
func (c *Codec) Encrypt(text string, key Key) (Sealed, error) {
	switch k := key.(type) {
	case CaesarKey:
		out, err := CaesarEncode(text, k.Shift)
		return Sealed{Algorithm: Caesar, Ciphertext: out}, err
	case HillKey:
		out, err := HillEncode(text, k.Matrix)
		return Sealed{Algorithm: Hill, Ciphertext: out}, err
	case PlayfairKey:
		out, meta, err := c.playfair.Encode(text, k.Keyword, k.Size, k.MergeJ)
		if err != nil {
			return Sealed{}, err
		}
		return Sealed{Algorithm: Playfair, Ciphertext: out, Meta: &meta}, nil
	default:
		return Sealed{}, fmt.Errorf("%w: key type %T", ErrUnknownAlgorithm, key)
	}
}

// Decrypt deciphers sealed with key. For Playfair the metadata carried by
// sealed wins over the one attached to key; with neither, the canonical
// form is returned.
func (c *Codec) Decrypt(sealed Sealed, key Key) (string, error) {
	switch k := key.(type) {
	case CaesarKey:
		return CaesarDecode(sealed.Ciphertext, k.Shift)
	case HillKey:
		return HillDecode(sealed.Ciphertext, k.Matrix)
	case PlayfairKey:
		meta := sealed.Meta
		if meta == nil {
			meta = k.Meta
		}
		return c.playfair.Decode(sealed.Ciphertext, k.Keyword, k.Size, k.MergeJ, meta)
	default:
		return "", fmt.Errorf("%w: key type %T", ErrUnknownAlgorithm, key)
	}
}

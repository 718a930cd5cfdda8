// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package stego hides a payload inside cover text using zero-width
// characters. Each payload bit becomes one invisible rune placed after a
// visible rune of the cover.
package stego

import (
	"strings"
)

// Zero-width runes used as the carrier alphabet.
const (
	Zero      = '\u200B' // zero-width space, bit 0
	One       = '\u200C' // zero-width non-joiner, bit 1
	Separator = '\u200D' // zero-width joiner
)

// Capacity describes how much payload a cover text carries without
// spilling bits past its last visible rune.
type Capacity struct {
	Bits  int `json:"bits"`
	Chars int `json:"chars"`
}

// TextToBits returns the payload as a string of '0' and '1', eight bits
// per byte of its UTF-8 encoding, most significant bit first.
func TextToBits(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 8)
	for i := 0; i < len(s); i++ {
		for bit := 7; bit >= 0; bit-- {
			if s[i]>>bit&1 == 1 {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
	}
	return b.String()
}

// BitsToText is the inverse of TextToBits. A trailing group shorter than
// eight bits is ignored; characters other than '1' count as 0.
func BitsToText(bits string) string {
	out := make([]byte, 0, len(bits)/8)
	for i := 0; i+8 <= len(bits); i += 8 {
		var c byte
		for _, r := range bits[i : i+8] {
			c <<= 1
			if r == '1' {
				c |= 1
			}
		}
		out = append(out, c)
	}
	return string(out)
}

// Embed hides secret in cover: one bit after each visible rune, and the
// bits left over once the cover runs out are appended at the end.
// An empty secret returns cover unchanged.
func Embed(cover, secret string) string {
	bits := TextToBits(secret)
	if bits == "" {
		return cover
	}

	var b strings.Builder
	b.Grow(len(cover) + len(bits)*3)

	next := 0
	for _, r := range cover {
		b.WriteRune(r)
		if next < len(bits) {
			b.WriteRune(carrier(bits[next]))
			next++
		}
	}
	for ; next < len(bits); next++ {
		b.WriteRune(carrier(bits[next]))
	}
	return b.String()
}

// Extract collects every carrier rune of s and decodes them. Visible text
// and separators are ignored.
func Extract(s string) string {
	var bits strings.Builder
	for _, r := range s {
		switch r {
		case Zero:
			bits.WriteByte('0')
		case One:
			bits.WriteByte('1')
		}
	}
	return BitsToText(bits.String())
}

// Strip removes every zero-width rune from s.
func Strip(s string) string {
	return strings.Map(func(r rune) rune {
		if isZeroWidth(r) {
			return -1
		}
		return r
	}, s)
}

// CountHidden returns the number of zero-width runes in s, separators
// included.
func CountHidden(s string) int {
	n := 0
	for _, r := range s {
		if isZeroWidth(r) {
			n++
		}
	}
	return n
}

// CapacityOf returns how many bits fit between the visible runes of cover.
func CapacityOf(cover string) Capacity {
	slots := max(len([]rune(cover))-1, 0)
	return Capacity{Bits: slots, Chars: slots / 8}
}

func carrier(bit byte) rune {
	if bit == '0' {
		return Zero
	}
	return One
}

func isZeroWidth(r rune) bool {
	return r == Zero || r == One || r == Separator
}

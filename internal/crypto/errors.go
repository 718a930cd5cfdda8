// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

// Sentinel errors returned by the codecs. Callers should match them with
// [errors.Is]; codec functions may wrap them with additional context.
var (
	// ErrInvalidKey is returned when key material cannot be used at all:
	// a Caesar shift that is a multiple of the alphabet length, a Hill
	// matrix that is empty or not square, or a key string that cannot be
	// parsed.
	ErrInvalidKey = errors.New("invalid key")

	// ErrNotInvertible is returned when the determinant of a Hill key is
	// not coprime with the alphabet length.
	ErrNotInvertible = errors.New("key matrix is not invertible")

	// ErrInvalidSize is returned when a Playfair square size is not 5 or 6.
	ErrInvalidSize = errors.New("playfair square size must be 5 or 6")

	// ErrNoInverse is returned by [ModInverse] when no multiplicative
	// inverse exists. Hill codecs check invertibility first, so reaching it
	// from a codec means the toolkit itself is broken.
	ErrNoInverse = errors.New("no modular inverse")

	// ErrUnknownAlgorithm is returned when an algorithm name does not match
	// any of the supported codecs.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "fmt"

// Matrix is a row-major integer matrix. The modular operations below treat
// its entries as residues modulo a caller-supplied modulus; entries do not
// need to be reduced beforehand.
type Matrix [][]int

// Identity returns the n x n identity matrix.
func Identity(n int) Matrix {
	m := make(Matrix, n)
	for i := range m {
		m[i] = make([]int, n)
		m[i][i] = 1
	}
	return m
}

// Size returns the number of rows.
func (m Matrix) Size() int {
	return len(m)
}

// IsSquare reports whether m is non-empty and every row has exactly
// len(m) columns.
func (m Matrix) IsSquare() bool {
	n := len(m)
	if n == 0 {
		return false
	}
	for _, row := range m {
		if len(row) != n {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of m.
func (m Matrix) Clone() Matrix {
	c := make(Matrix, len(m))
	for i, row := range m {
		c[i] = append([]int(nil), row...)
	}
	return c
}

// mod reduces a into [0, m).
func mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

// reduce returns a copy of m with every entry reduced into [0, modulus).
// Keeping entries small keeps the cofactor products far from overflow.
func (m Matrix) reduce(modulus int) Matrix {
	c := make(Matrix, len(m))
	for i, row := range m {
		c[i] = make([]int, len(row))
		for j, v := range row {
			c[i][j] = mod(v, modulus)
		}
	}
	return c
}

// minor returns m without row r and column c.
func (m Matrix) minor(r, c int) Matrix {
	out := make(Matrix, 0, len(m)-1)
	for i, row := range m {
		if i == r {
			continue
		}
		next := make([]int, 0, len(row)-1)
		for j, v := range row {
			if j != c {
				next = append(next, v)
			}
		}
		out = append(out, next)
	}
	return out
}

// Determinant returns det(m) reduced into [0, modulus), computed by
// cofactor (Laplace) expansion along the first row.
//
// The expansion costs O(n!) and is meant for the small keys typed into a
// chat form. Larger keys would need fraction-free elimination mod modulus
// behind the same signature.
func Determinant(m Matrix, modulus int) int {
	return determinant(m.reduce(modulus), modulus)
}

func determinant(m Matrix, modulus int) int {
	switch len(m) {
	case 0:
		return mod(1, modulus)
	case 1:
		return mod(m[0][0], modulus)
	case 2:
		return mod(m[0][0]*m[1][1]-m[0][1]*m[1][0], modulus)
	}

	det := 0
	for c := range m[0] {
		term := m[0][c] * determinant(m.minor(0, c), modulus) % modulus
		if c%2 == 1 {
			term = -term
		}
		det = mod(det+term, modulus)
	}
	return det
}

// GCD returns the greatest common divisor of a and b, always non-negative.
func GCD(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// ModInverse returns x in [1, modulus) such that a*x ≡ 1 (mod modulus).
// It searches exhaustively, which is fine for alphabet-sized moduli.
// Returns [ErrNoInverse] when a is not coprime with modulus.
func ModInverse(a, modulus int) (int, error) {
	a = mod(a, modulus)
	for x := 1; x < modulus; x++ {
		if a*x%modulus == 1 {
			return x, nil
		}
	}
	return 0, fmt.Errorf("%w: %d mod %d", ErrNoInverse, a, modulus)
}

// CofactorMatrix returns the matrix of signed minors of m, each reduced
// into [0, modulus).
func CofactorMatrix(m Matrix, modulus int) Matrix {
	reduced := m.reduce(modulus)
	n := len(reduced)

	cof := make(Matrix, n)
	for i := range n {
		cof[i] = make([]int, n)
		for j := range n {
			minorDet := determinant(reduced.minor(i, j), modulus)
			if (i+j)%2 == 1 {
				minorDet = -minorDet
			}
			cof[i][j] = mod(minorDet, modulus)
		}
	}
	return cof
}

// Transpose returns the transpose of a square or rectangular matrix.
func Transpose(m Matrix) Matrix {
	if len(m) == 0 {
		return Matrix{}
	}
	t := make(Matrix, len(m[0]))
	for j := range t {
		t[j] = make([]int, len(m))
		for i := range m {
			t[j][i] = m[i][j]
		}
	}
	return t
}

// Adjugate returns the transpose of the cofactor matrix of m.
func Adjugate(m Matrix, modulus int) Matrix {
	return Transpose(CofactorMatrix(m, modulus))
}

// InverseMatrix returns m⁻¹ modulo modulus, computed as
// adj(m) · det(m)⁻¹. Returns [ErrNoInverse] when det(m) has no inverse.
func InverseMatrix(m Matrix, modulus int) (Matrix, error) {
	detInv, err := ModInverse(Determinant(m, modulus), modulus)
	if err != nil {
		return nil, fmt.Errorf("error inverting matrix: %w", err)
	}

	inv := Adjugate(m, modulus)
	for i := range inv {
		for j := range inv[i] {
			inv[i][j] = mod(inv[i][j]*detInv, modulus)
		}
	}
	return inv, nil
}

// MultiplyVector returns m · v modulo modulus. len(v) must equal the
// number of columns of m.
func MultiplyVector(m Matrix, v []int, modulus int) []int {
	out := make([]int, len(m))
	for i, row := range m {
		acc := 0
		for j, x := range row {
			acc = mod(acc+mod(x, modulus)*mod(v[j], modulus), modulus)
		}
		out[i] = acc
	}
	return out
}

// Multiply returns a · b modulo modulus.
func Multiply(a, b Matrix, modulus int) Matrix {
	if len(b) == 0 {
		return Matrix{}
	}
	out := make(Matrix, len(a))
	for i := range a {
		out[i] = make([]int, len(b[0]))
		for j := range b[0] {
			acc := 0
			for k := range b {
				acc = mod(acc+mod(a[i][k], modulus)*mod(b[k][j], modulus), modulus)
			}
			out[i][j] = acc
		}
	}
	return out
}

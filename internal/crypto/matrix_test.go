package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeterminant(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		want int
	}{
		{name: "1x1", m: Matrix{{5}}, want: 5},
		{name: "1x1 negative", m: Matrix{{-1}}, want: 93},
		{name: "2x2", m: Matrix{{3, 2}, {5, 7}}, want: 11},
		{name: "2x2 negative determinant", m: Matrix{{1, 2}, {3, 4}}, want: 92},
		{name: "3x3", m: Matrix{{6, 24, 1}, {13, 16, 10}, {20, 17, 15}}, want: 65},
		{name: "upper triangular", m: Matrix{{1, 2, 3}, {0, 4, 5}, {0, 0, 6}}, want: 24},
		{name: "4x4 diagonal", m: Matrix{{2, 0, 0, 0}, {0, 3, 0, 0}, {0, 0, 5, 0}, {0, 0, 0, 7}}, want: 22},
		{name: "entries larger than modulus", m: Matrix{{97, 2}, {99, 7}}, want: 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Determinant(tt.m, AlphabetSize))
		})
	}
}

func TestGCD(t *testing.T) {
	assert.Equal(t, 1, GCD(11, 94))
	assert.Equal(t, 2, GCD(-4, 6))
	assert.Equal(t, 5, GCD(0, 5))
	assert.Equal(t, 47, GCD(47, 94))
}

func TestModInverse(t *testing.T) {
	inv, err := ModInverse(11, 94)
	require.NoError(t, err)
	assert.Equal(t, 77, inv)

	inv, err = ModInverse(-83, 94)
	require.NoError(t, err)
	assert.Equal(t, 77, inv)

	_, err = ModInverse(2, 94)
	assert.ErrorIs(t, err, ErrNoInverse)

	_, err = ModInverse(47, 94)
	assert.ErrorIs(t, err, ErrNoInverse)
}

func TestCofactorAndAdjugate(t *testing.T) {
	m := Matrix{{3, 2}, {5, 7}}

	assert.Equal(t, Matrix{{7, 89}, {92, 3}}, CofactorMatrix(m, AlphabetSize))
	assert.Equal(t, Matrix{{7, 92}, {89, 3}}, Adjugate(m, AlphabetSize))
}

func TestInverseMatrix(t *testing.T) {
	keys := []Matrix{
		{{5}},
		{{3, 2}, {5, 7}},
		{{6, 24, 1}, {13, 16, 10}, {20, 17, 15}},
		{{1, 2, 3}, {0, 1, 4}, {5, 6, 0}},
	}

	for _, key := range keys {
		inv, err := InverseMatrix(key, AlphabetSize)
		require.NoError(t, err)
		assert.Equal(t, Identity(key.Size()), Multiply(key, inv, AlphabetSize), "key %v", key)
		assert.Equal(t, Identity(key.Size()), Multiply(inv, key, AlphabetSize), "key %v", key)
	}
}

func TestInverseMatrix_KnownValue(t *testing.T) {
	inv, err := InverseMatrix(Matrix{{3, 2}, {5, 7}}, AlphabetSize)
	require.NoError(t, err)
	assert.Equal(t, Matrix{{69, 34}, {85, 43}}, inv)
}

func TestInverseMatrix_Singular(t *testing.T) {
	_, err := InverseMatrix(Matrix{{2, 4}, {1, 3}}, AlphabetSize)
	assert.ErrorIs(t, err, ErrNoInverse)
}

func TestMultiplyVector(t *testing.T) {
	got := MultiplyVector(Matrix{{3, 2}, {5, 7}}, []int{32, 33}, AlphabetSize)
	assert.Equal(t, []int{68, 15}, got)

	got = MultiplyVector(Matrix{{-1, 0}, {0, 1}}, []int{1, 1}, AlphabetSize)
	assert.Equal(t, []int{93, 1}, got)
}

func TestMatrix_IsSquare(t *testing.T) {
	assert.True(t, Matrix{{1}}.IsSquare())
	assert.True(t, Matrix{{1, 2}, {3, 4}}.IsSquare())
	assert.False(t, Matrix{}.IsSquare())
	assert.False(t, Matrix{{1, 2, 3}, {4, 5, 6}}.IsSquare())
	assert.False(t, Matrix{{1, 2}, {3}}.IsSquare())
}

func TestMatrix_CloneAndTranspose(t *testing.T) {
	m := Matrix{{1, 2, 3}, {4, 5, 6}}
	c := m.Clone()
	c[0][0] = 42

	assert.Equal(t, 1, m[0][0])
	assert.Equal(t, Matrix{{1, 4}, {2, 5}, {3, 6}}, Transpose(m))
	assert.Equal(t, Matrix{}, Transpose(Matrix{}))
}

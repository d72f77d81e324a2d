package core

import (
	"errors"
	"fmt"
	"math"
)

// ErrNotInvertible is returned when a matrix has a zero determinant
var ErrNotInvertible = errors.New("matrix is not invertible")

// Matrix4 is a row-major 4x4 transformation matrix
type Matrix4 [4][4]float64

// Identity4 returns the 4x4 identity matrix
func Identity4() Matrix4 {
	return Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Multiply returns m * other
func (m Matrix4) Multiply(other Matrix4) Matrix4 {
	var result Matrix4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[row][col] = m[row][0]*other[0][col] +
				m[row][1]*other[1][col] +
				m[row][2]*other[2][col] +
				m[row][3]*other[3][col]
		}
	}
	return result
}

// MultiplyTuple returns m * t
func (m Matrix4) MultiplyTuple(t Tuple) Tuple {
	return Tuple{
		X: m[0][0]*t.X + m[0][1]*t.Y + m[0][2]*t.Z + m[0][3]*t.W,
		Y: m[1][0]*t.X + m[1][1]*t.Y + m[1][2]*t.Z + m[1][3]*t.W,
		Z: m[2][0]*t.X + m[2][1]*t.Y + m[2][2]*t.Z + m[2][3]*t.W,
		W: m[3][0]*t.X + m[3][1]*t.Y + m[3][2]*t.Z + m[3][3]*t.W,
	}
}

// Then composes transformations in reading order: m.Then(t) applies m first, then t.
func (m Matrix4) Then(t Matrix4) Matrix4 {
	return t.Multiply(m)
}

// Transpose returns the transposed matrix
func (m Matrix4) Transpose() Matrix4 {
	var result Matrix4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[col][row] = m[row][col]
		}
	}
	return result
}

// minor3 returns the determinant of the 3x3 submatrix left after removing row r and column c
func (m Matrix4) minor3(r, c int) float64 {
	var sub [3][3]float64
	si := 0
	for row := 0; row < 4; row++ {
		if row == r {
			continue
		}
		sj := 0
		for col := 0; col < 4; col++ {
			if col == c {
				continue
			}
			sub[si][sj] = m[row][col]
			sj++
		}
		si++
	}
	return sub[0][0]*(sub[1][1]*sub[2][2]-sub[1][2]*sub[2][1]) -
		sub[0][1]*(sub[1][0]*sub[2][2]-sub[1][2]*sub[2][0]) +
		sub[0][2]*(sub[1][0]*sub[2][1]-sub[1][1]*sub[2][0])
}

// cofactor returns the signed minor at (r, c)
func (m Matrix4) cofactor(r, c int) float64 {
	minor := m.minor3(r, c)
	if (r+c)%2 == 1 {
		return -minor
	}
	return minor
}

// Determinant returns the determinant of the matrix
func (m Matrix4) Determinant() float64 {
	det := 0.0
	for col := 0; col < 4; col++ {
		det += m[0][col] * m.cofactor(0, col)
	}
	return det
}

// Invertible reports whether the matrix has an inverse
func (m Matrix4) Invertible() bool {
	return m.Determinant() != 0
}

// TryInverse returns the inverse, or ErrNotInvertible for a singular matrix
func (m Matrix4) TryInverse() (Matrix4, error) {
	det := m.Determinant()
	if det == 0 {
		return Matrix4{}, ErrNotInvertible
	}

	var result Matrix4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			// transposed cofactor matrix divided by the determinant
			result[col][row] = m.cofactor(row, col) / det
		}
	}
	return result, nil
}

// Inverse returns the inverse of the matrix. It panics if the matrix is singular;
// callers handling external data should check Invertible or use TryInverse first.
func (m Matrix4) Inverse() Matrix4 {
	inv, err := m.TryInverse()
	if err != nil {
		panic(fmt.Sprintf("Inverse: %v: %v", err, m))
	}
	return inv
}

// Equals compares two matrices element-wise within EPSILON
func (m Matrix4) Equals(other Matrix4) bool {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if math.Abs(m[row][col]-other[row][col]) >= EPSILON {
				return false
			}
		}
	}
	return true
}

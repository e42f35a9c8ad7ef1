// Package grid provides array transforms for square faces stored as flat
// slices in reading order. Nothing here knows about cubes.
//
// Every function returns freshly allocated slices, so callers may keep
// references to earlier results.
package grid

import (
	"errors"
	"fmt"
)

// ErrInvalidRotation is returned by Rotate for amounts other than ±1 or ±2.
var ErrInvalidRotation = errors.New("cube: invalid rotation, must be -1, 1 or 2")

// Side returns the side length of a square face with n cells.
// It returns -1 if n is not a perfect square.
func Side(n int) int {
	if n < 0 {
		return -1
	}
	s := 0
	for s*s < n {
		s++
	}
	if s*s != n {
		return -1
	}
	return s
}

// ChunkRows splits a face into its rows.
//
//	1 2 3        [1 2 3]
//	4 5 6   ->   [4 5 6]
//	7 8 9        [7 8 9]
func ChunkRows[T any](face []T) [][]T {
	size := Side(len(face))
	if size < 0 {
		return nil
	}
	rows := make([][]T, size)
	for i := range rows {
		rows[i] = append([]T(nil), face[i*size:(i+1)*size]...)
	}
	return rows
}

// ChunkCols splits a face into its columns.
//
//	1 2 3        [1 4 7]
//	4 5 6   ->   [2 5 8]
//	7 8 9        [3 6 9]
func ChunkCols[T any](face []T) [][]T {
	return Flip(ChunkRows(face))
}

// Flip converts between row chunks and column chunks (a transpose).
// Think of holding a card by its top-left and bottom-right corners and
// turning it over.
func Flip[T any](chunks [][]T) [][]T {
	if len(chunks) == 0 {
		return [][]T{}
	}
	out := make([][]T, len(chunks[0]))
	for i := range out {
		out[i] = make([]T, len(chunks))
		for j, chunk := range chunks {
			out[i][j] = chunk[i]
		}
	}
	return out
}

// FlattenRows joins row chunks back into a flat face.
func FlattenRows[T any](rows [][]T) []T {
	out := make([]T, 0, len(rows)*len(rows))
	for _, row := range rows {
		out = append(out, row...)
	}
	return out
}

// FlattenCols joins column chunks back into a flat face.
func FlattenCols[T any](cols [][]T) []T {
	return FlattenRows(Flip(cols))
}

// Reverse returns a reversed copy of s.
func Reverse[T any](s []T) []T {
	out := make([]T, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}

// Rotate turns a face as seen from outside the cube.
// 1 is 90° clockwise, -1 is 90° counter-clockwise and 2 (or -2) is 180°.
func Rotate[T any](face []T, rotation int) ([]T, error) {
	switch rotation {
	case 1:
		return FlattenCols(Reverse(ChunkRows(face))), nil
	case -1:
		return FlattenRows(Reverse(ChunkCols(face))), nil
	case 2, -2:
		return Reverse(face), nil
	}
	return nil, fmt.Errorf("%w: got %d", ErrInvalidRotation, rotation)
}

// Row returns a copy of row i of a face with the given side length.
func Row[T any](face []T, size, i int) []T {
	return append([]T(nil), face[i*size:(i+1)*size]...)
}

// Col returns a copy of column i of a face with the given side length.
func Col[T any](face []T, size, i int) []T {
	out := make([]T, size)
	for r := 0; r < size; r++ {
		out[r] = face[r*size+i]
	}
	return out
}

// SetRow writes strip into row i of face in place.
func SetRow[T any](face []T, size, i int, strip []T) {
	copy(face[i*size:(i+1)*size], strip)
}

// SetCol writes strip into column i of face in place.
func SetCol[T any](face []T, size, i int, strip []T) {
	for r := 0; r < size; r++ {
		face[r*size+i] = strip[r]
	}
}

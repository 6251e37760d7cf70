// Package vector provides the small set of dense-vector operations the
// similarity engine needs: cosine similarity over gene vectors and
// Euclidean distance over emotional coordinates.
package vector

import (
	"fmt"
	"math"
)

// ErrDimensionMismatch is returned when vector dimensions don't match.
var ErrDimensionMismatch = fmt.Errorf("vector dimensions mismatch")

// CosineSimilarity calculates the cosine similarity between two vectors.
// Returns a value between -1 (opposite) and 1 (identical). A zero-norm
// vector on either side yields 0, never NaN.
func CosineSimilarity(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d != %d", ErrDimensionMismatch, len(a), len(b))
	}

	dotProd := 0.0
	normA := 0.0
	normB := 0.0

	for i := 0; i < len(a); i++ {
		dotProd += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0, nil
	}

	return dotProd / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}

// EuclideanDistance calculates the Euclidean (L2) distance between two
// vectors.
func EuclideanDistance(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d != %d", ErrDimensionMismatch, len(a), len(b))
	}

	sum := 0.0
	for i := 0; i < len(a); i++ {
		diff := a[i] - b[i]
		sum += diff * diff
	}

	return math.Sqrt(sum), nil
}

// DotProduct calculates the dot product of two vectors.
func DotProduct(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d != %d", ErrDimensionMismatch, len(a), len(b))
	}

	result := 0.0
	for i := 0; i < len(a); i++ {
		result += a[i] * b[i]
	}

	return result, nil
}

// Magnitude calculates the L2 norm of a vector.
func Magnitude(v []float64) float64 {
	sum := 0.0
	for _, val := range v {
		sum += val * val
	}
	return math.Sqrt(sum)
}

// Normalize normalizes a vector to unit length. A zero vector is returned
// unchanged.
func Normalize(v []float64) []float64 {
	norm := Magnitude(v)
	if norm == 0 {
		return v
	}

	result := make([]float64, len(v))
	for i, val := range v {
		result[i] = val / norm
	}

	return result
}

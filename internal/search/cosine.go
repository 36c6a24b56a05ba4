package search

import (
	"fmt"
	"math"
)

// CosineSimilarity computes dot(a,b) / (‖a‖·‖b‖). A zero-magnitude
// vector yields exactly 0 ("no signal"). A length mismatch is a
// data-integrity bug, not a scoring question, and is returned as an
// error.
func CosineSimilarity(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("vector length mismatch: %d vs %d", len(a), len(b))
	}

	var dot, magA, magB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		magA += float64(a[i]) * float64(a[i])
		magB += float64(b[i]) * float64(b[i])
	}

	if magA == 0 || magB == 0 {
		return 0, nil
	}
	return dot / (math.Sqrt(magA) * math.Sqrt(magB)), nil
}

// isZeroVector reports whether every component is zero, the Gateway's
// "no signal" marker.
func isZeroVector(vec []float32) bool {
	for _, v := range vec {
		if v != 0 {
			return false
		}
	}
	return true
}

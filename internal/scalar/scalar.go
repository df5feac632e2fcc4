// Package scalar holds the real-number helpers shared by the complex
// operations: the overflow-safe Euclidean norm, float-bit utilities, and
// the numeric constraints for widening conversions.
package scalar

// Real is the type constraint for real-number types that widen losslessly
// into the real component of a complex value.
type Real interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

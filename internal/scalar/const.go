package scalar

import "math"

// InvLn10 is 1/ln(10) with full float64 precision, used to derive the
// base-10 logarithm from the natural one.
const InvLn10 = 0.43429448190325182765

// SqrtRescaleThreshold is the largest component magnitude for which
// Hypot(x, x) + x cannot overflow. Inputs above it are scaled down before
// the square-root core computation and the result scaled back up.
const SqrtRescaleThreshold = math.MaxFloat64 / (math.Sqrt2 + 1)

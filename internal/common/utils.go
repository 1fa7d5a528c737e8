package common

import "math"

// Round rounds x to the nearest integer with halves going toward +Inf,
// so Round(2.5) == 3 and Round(-2.5) == -2. Consumers of the API were built
// against that behaviour; math.Round would move negative halves away from zero.
func Round(x float64) int {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return int(math.Floor(x + 0.5))
}

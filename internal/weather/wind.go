package weather

import (
	"math"

	"github.com/i474232898/weather-lookup/internal/common"
)

var compassPoints = [16]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// WindDirectionText maps a direction in degrees to one of 16 compass points.
//
// Each point covers 22.5°, centred on k*22.5°, so boundaries sit at
// 11.25° + k*22.5°. A direction exactly on a boundary goes to the clockwise
// neighbour: 11.25 is "NNE", 348.75 is "N". Any real input is accepted and
// taken modulo 360.
func WindDirectionText(deg float64) string {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return compassPoints[0]
	}
	idx := common.Round(deg/22.5) % len(compassPoints)
	if idx < 0 {
		idx += len(compassPoints)
	}
	return compassPoints[idx]
}

// MetersPerSecondToKmh converts a provider wind speed to whole km/h.
func MetersPerSecondToKmh(ms float64) int {
	return common.Round(ms * 3.6)
}

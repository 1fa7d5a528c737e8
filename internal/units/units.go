package units

import (
	"fmt"
	"strings"

	"github.com/i474232898/weather-lookup/internal/common"
)

// Unit is a temperature display unit.
type Unit string

const (
	Celsius    Unit = "celsius"
	Fahrenheit Unit = "fahrenheit"
)

// Parse accepts "celsius" or "fahrenheit" in any case; empty means Celsius.
func Parse(s string) (Unit, error) {
	switch Unit(strings.ToLower(strings.TrimSpace(s))) {
	case "", Celsius:
		return Celsius, nil
	case Fahrenheit:
		return Fahrenheit, nil
	default:
		return "", fmt.Errorf("unknown temperature unit %q", s)
	}
}

// ConvertTemperature converts a whole-degree Celsius value. Celsius is
// returned unchanged.
func ConvertTemperature(c int, u Unit) int {
	if u == Fahrenheit {
		return common.Round(float64(c)*9/5 + 32)
	}
	return c
}

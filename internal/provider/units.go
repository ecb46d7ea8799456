package provider

import (
	"fmt"
	"math"
)

// UnitSystem selects how heights and weights are displayed.
type UnitSystem string

const (
	Metric   UnitSystem = "metric"
	Imperial UnitSystem = "imperial"
)

const (
	inchesPerDecimetre = 3.937007874
	poundsPerHectogram = 0.220462262
)

// ParseUnitSystem accepts "metric" or "imperial".
func ParseUnitSystem(s string) (UnitSystem, error) {
	switch UnitSystem(s) {
	case Metric, Imperial:
		return UnitSystem(s), nil
	default:
		return "", fmt.Errorf("unknown unit system %q (want metric or imperial)", s)
	}
}

// FormatHeight renders a height given in decimetres, e.g. "0.7 m" or 2'04".
func FormatHeight(dm int, u UnitSystem) string {
	if u == Imperial {
		inches := int(math.Round(float64(dm) * inchesPerDecimetre))
		return fmt.Sprintf("%d'%02d\"", inches/12, inches%12)
	}
	return fmt.Sprintf("%.1f m", float64(dm)/10)
}

// FormatWeight renders a weight given in hectograms, e.g. "6.9 kg" or "15.2 lbs".
func FormatWeight(hg int, u UnitSystem) string {
	if u == Imperial {
		return fmt.Sprintf("%.1f lbs", float64(hg)*poundsPerHectogram)
	}
	return fmt.Sprintf("%.1f kg", float64(hg)/10)
}

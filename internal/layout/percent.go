package layout

import "math"

// Percentages are scaled to 1e7 before dividing so that common values
// like 50 or 33.33 floor to the expected cell instead of one below it.
const (
	percentScale  = 100000.0
	percentDivide = 10000000.0
)

// percentToMagnitude returns floor(whole * percent / 100).
// percent must be in (0, 100].
func percentToMagnitude(whole uint32, percent float64) (uint32, error) {
	if !(percent > 0 && percent <= 100) {
		return 0, invalidArgument("percent", "%v is not in (0, 100]", percent)
	}
	v := math.Floor(float64(whole) * (percent * percentScale) / percentDivide)
	if v < 0 || v > float64(whole) {
		return 0, invalidArgument("percent", "%v%% of %d is out of range", percent, whole)
	}
	return uint32(v), nil
}

func percentToSignedMagnitude(whole uint32, percent float64) (int32, error) {
	m, err := percentToMagnitude(whole, percent)
	if err != nil {
		return 0, err
	}
	if m > math.MaxInt32 {
		return 0, invalidArgument("percent", "magnitude %d does not fit int32", m)
	}
	return int32(m), nil
}

// halfPercentToSignedMagnitude is the centering offset: half the signed magnitude, truncated.
func halfPercentToSignedMagnitude(whole uint32, percent float64) (int32, error) {
	m, err := percentToSignedMagnitude(whole, percent)
	if err != nil {
		return 0, err
	}
	return m / 2, nil
}

package units

import "math"

// niceFractions are the sub-unit values a cook can actually measure.
// Order matters: on equal distance the earlier candidate wins.
var niceFractions = [...]float64{0.25, 0.33, 0.5, 0.67, 0.75, 1}

// RoundToNice rounds a non-negative quantity to a kitchen-friendly value.
//
//	v < 0.125        two decimals
//	0.125 <= v < 1   nearest of ¼ ⅓ ½ ⅔ ¾ 1
//	1 <= v < 10      nearest quarter
//	10 <= v < 100    nearest half
//	v >= 100         nearest integer
func RoundToNice(v float64) float64 {
	switch {
	case v < 0.125:
		return math.Round(v*100) / 100
	case v < 1:
		best := niceFractions[0]
		for _, f := range niceFractions[1:] {
			if math.Abs(f-v) < math.Abs(best-v) {
				best = f
			}
		}
		return best
	case v < 10:
		return math.Round(v*4) / 4
	case v < 100:
		return math.Round(v*2) / 2
	default:
		return math.Round(v)
	}
}

// ScaleFactor returns the multiplier taking a recipe from original to desired
// servings. Both must be positive; callers validate.
func ScaleFactor(original, desired int) float64 {
	return float64(desired) / float64(original)
}

// Scale rescales quantity from original to desired servings and rounds the
// result to a nice value.
func Scale(quantity float64, original, desired int) float64 {
	return RoundToNice(quantity * ScaleFactor(original, desired))
}

package codec

import "math"

// MapQuality rescales the caller-facing 0-100 quality onto the format's
// native range. Out-of-range input is clamped, not rejected. The second
// result is false for formats with no quality concept (GIF, BMP); their
// encoders are invoked without a quality argument.
func MapQuality(requested int, f Format) (int, bool) {
	if requested < 0 {
		requested = 0
	}
	if requested > 100 {
		requested = 100
	}

	ceiling := table[f].ceiling
	if ceiling == 0 {
		return 0, false
	}
	return int(math.Round(float64(requested) / 100 * float64(ceiling))), true
}

// HasQuality reports whether the format takes a quality parameter.
func HasQuality(f Format) bool {
	return table[f].ceiling != 0
}

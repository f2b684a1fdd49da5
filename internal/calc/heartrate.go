package calc

import "math"

// HRZone is one training intensity band in beats per minute.
type HRZone struct {
	Name   string `json:"name"`
	MinBPM int    `json:"min_bpm"`
	MaxBPM int    `json:"max_bpm"`
}

// The five fixed intensity bands, as fractions of effort.
var hrBands = []struct {
	name string
	low  float64
	high float64
}{
	{"Very light", 0.50, 0.60},
	{"Light", 0.60, 0.70},
	{"Moderate", 0.70, 0.80},
	{"Hard", 0.80, 0.90},
	{"Maximum", 0.90, 1.00},
}

// MaxHeartRate computes maximum heart rate from age using the selected
// formula: "tanaka" (208 - 0.7a), "gulati" (206 - 0.88a, derived for women),
// or "traditional" (220 - a).
func MaxHeartRate(formula string, ageYears int) (float64, bool) {
	if ageYears <= 0 {
		return 0, false
	}
	a := float64(ageYears)
	switch formula {
	case "tanaka":
		return 208 - 0.7*a, true
	case "gulati":
		return 206 - 0.88*a, true
	case "traditional":
		return 220 - a, true
	}
	return 0, false
}

// HeartRateZones computes the five bands from a max heart rate. When
// restingBPM is positive the Karvonen method is used (bands span the heart
// rate reserve above rest); otherwise bands are plain percentages of max.
func HeartRateZones(maxHR, restingBPM float64) ([]HRZone, bool) {
	if maxHR <= 0 || restingBPM < 0 || restingBPM >= maxHR {
		return nil, false
	}

	zones := make([]HRZone, 0, len(hrBands))
	for _, band := range hrBands {
		var lo, hi float64
		if restingBPM > 0 {
			reserve := maxHR - restingBPM
			lo = restingBPM + reserve*band.low
			hi = restingBPM + reserve*band.high
		} else {
			lo = maxHR * band.low
			hi = maxHR * band.high
		}
		zones = append(zones, HRZone{
			Name:   band.name,
			MinBPM: int(math.Round(lo)),
			MaxBPM: int(math.Round(hi)),
		})
	}
	return zones, true
}

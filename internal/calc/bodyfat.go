package calc

import "math"

// BodyFatResult is the estimated body fat percentage with its fitness
// category.
type BodyFatResult struct {
	Percentage float64 `json:"percentage"`
	Category   string  `json:"category"`
}

// BodyFatMale estimates body fat via the U.S. Navy circumference method.
// All measurements are in centimetres. The result is clamped to [3, 60]
// because the log-based formula degenerates outside plausible inputs.
func BodyFatMale(waistCM, neckCM, heightCM float64) (BodyFatResult, bool) {
	if waistCM <= 0 || neckCM <= 0 || heightCM <= 0 || waistCM <= neckCM {
		return BodyFatResult{}, false
	}
	pct := 495/(1.0324-0.19077*math.Log10(waistCM-neckCM)+0.15456*math.Log10(heightCM)) - 450
	pct = clampBodyFat(pct)
	return BodyFatResult{Percentage: Round1(pct), Category: bodyFatCategoryMale(pct)}, true
}

// BodyFatFemale is the female variant of the Navy method; it additionally
// takes the hip circumference.
func BodyFatFemale(waistCM, neckCM, hipCM, heightCM float64) (BodyFatResult, bool) {
	if waistCM <= 0 || neckCM <= 0 || hipCM <= 0 || heightCM <= 0 || waistCM+hipCM <= neckCM {
		return BodyFatResult{}, false
	}
	pct := 495/(1.29579-0.35004*math.Log10(waistCM+hipCM-neckCM)+0.22100*math.Log10(heightCM)) - 450
	pct = clampBodyFat(pct)
	return BodyFatResult{Percentage: Round1(pct), Category: bodyFatCategoryFemale(pct)}, true
}

func clampBodyFat(pct float64) float64 {
	if pct < 3 {
		return 3
	}
	if pct > 60 {
		return 60
	}
	return pct
}

func bodyFatCategoryMale(pct float64) string {
	switch {
	case pct < 6:
		return "Essential fat"
	case pct < 14:
		return "Athletes"
	case pct < 18:
		return "Fitness"
	case pct < 25:
		return "Average"
	default:
		return "Obese"
	}
}

func bodyFatCategoryFemale(pct float64) string {
	switch {
	case pct < 14:
		return "Essential fat"
	case pct < 21:
		return "Athletes"
	case pct < 25:
		return "Fitness"
	case pct < 32:
		return "Average"
	default:
		return "Obese"
	}
}

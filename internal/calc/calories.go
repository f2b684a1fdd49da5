package calc

import "math"

// ActivityFactors maps activity level names to their TDEE multiplier. This is
// the single source of truth for valid levels; handlers validate against it.
var ActivityFactors = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

// CaloriesResult holds the Mifflin-St Jeor basal rate and the daily need
// after applying the activity factor, both rounded to whole calories.
type CaloriesResult struct {
	BMR   int `json:"bmr"`
	Daily int `json:"daily"`
}

// Calories computes daily calorie needs. gender is "male" or "female";
// activityLevel must be a key of ActivityFactors.
func Calories(gender string, weightKG, heightCM float64, ageYears int, activityLevel string) (CaloriesResult, bool) {
	if weightKG <= 0 || heightCM <= 0 || ageYears <= 0 {
		return CaloriesResult{}, false
	}
	factor, ok := ActivityFactors[activityLevel]
	if !ok {
		return CaloriesResult{}, false
	}

	bmr := 10*weightKG + 6.25*heightCM - 5*float64(ageYears)
	switch gender {
	case "male":
		bmr += 5
	case "female":
		bmr -= 161
	default:
		return CaloriesResult{}, false
	}

	return CaloriesResult{
		BMR:   int(math.Round(bmr)),
		Daily: int(math.Round(bmr * factor)),
	}, true
}

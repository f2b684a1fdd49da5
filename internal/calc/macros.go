package calc

import "math"

// macroSplits maps goal presets to protein/carb/fat percentages of the
// calorie target.
var macroSplits = map[string][3]float64{
	"maintain": {0.30, 0.40, 0.30},
	"lose":     {0.40, 0.30, 0.30},
	"gain":     {0.30, 0.45, 0.25},
}

// MacrosResult is the daily gram targets for each macronutrient.
type MacrosResult struct {
	ProteinG int `json:"protein_g"`
	CarbsG   int `json:"carbs_g"`
	FatG     int `json:"fat_g"`
}

// Macros splits a daily calorie target into macronutrient grams using the
// goal preset ("maintain", "lose", or "gain"). Protein and carbs are counted
// at 4 kcal/g, fat at 9 kcal/g.
func Macros(dailyCalories float64, goal string) (MacrosResult, bool) {
	if dailyCalories <= 0 {
		return MacrosResult{}, false
	}
	split, ok := macroSplits[goal]
	if !ok {
		return MacrosResult{}, false
	}

	return MacrosResult{
		ProteinG: int(math.Round(dailyCalories * split[0] / 4)),
		CarbsG:   int(math.Round(dailyCalories * split[1] / 4)),
		FatG:     int(math.Round(dailyCalories * split[2] / 9)),
	}, true
}

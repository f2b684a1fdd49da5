package calc

import "math"

// WaterIntakeResult is the recommended daily intake.
type WaterIntakeResult struct {
	Milliliters int     `json:"milliliters"`
	Liters      float64 `json:"liters"`
}

// WaterIntake computes daily water needs as weight times an activity factor
// in millilitres per kilogram (30..50) times a climate multiplier (0.9..1.2).
// Inputs outside those ranges are rejected.
func WaterIntake(weightKG, activityMLPerKG, climateMultiplier float64) (WaterIntakeResult, bool) {
	if weightKG <= 0 {
		return WaterIntakeResult{}, false
	}
	if activityMLPerKG < 30 || activityMLPerKG > 50 {
		return WaterIntakeResult{}, false
	}
	if climateMultiplier < 0.9 || climateMultiplier > 1.2 {
		return WaterIntakeResult{}, false
	}

	ml := weightKG * activityMLPerKG * climateMultiplier
	return WaterIntakeResult{
		Milliliters: int(math.Round(ml)),
		Liters:      Round1(ml / 1000),
	}, true
}

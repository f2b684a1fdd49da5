package calc

// BoneMass estimates skeletal mass in kilograms from weight and height. The
// male estimate carries a 1.05 multiplier; the result never goes below zero.
func BoneMass(gender string, weightKG, heightCM float64) (float64, bool) {
	if weightKG <= 0 || heightCM <= 0 {
		return 0, false
	}
	if gender != "male" && gender != "female" {
		return 0, false
	}

	mass := 0.022*weightKG + 0.04*heightCM - 3.8
	if gender == "male" {
		mass *= 1.05
	}
	if mass < 0 {
		mass = 0
	}
	return Round1(mass), true
}

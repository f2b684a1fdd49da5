package calc

// BloodVolume estimates total blood volume in liters via Nadler's formula.
// Height is in centimetres, weight in kilograms.
func BloodVolume(gender string, weightKG, heightCM float64) (float64, bool) {
	if weightKG <= 0 || heightCM <= 0 {
		return 0, false
	}

	h := heightCM / 100
	var liters float64
	switch gender {
	case "male":
		liters = 0.3669*h*h*h + 0.03219*weightKG + 0.6041
	case "female":
		liters = 0.3561*h*h*h + 0.03308*weightKG + 0.1833
	default:
		return 0, false
	}
	return Round1(liters), true
}

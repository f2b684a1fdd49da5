package calc

// BMIResult carries the index rounded to one decimal plus its category label.
type BMIResult struct {
	Value    float64 `json:"value"`
	Category string  `json:"category"`
}

// BMIMetric computes body mass index from kilograms and centimetres.
// Returns ok=false when either input is non-positive.
func BMIMetric(weightKG, heightCM float64) (BMIResult, bool) {
	if weightKG <= 0 || heightCM <= 0 {
		return BMIResult{}, false
	}
	heightM := heightCM / 100
	value := weightKG / (heightM * heightM)
	return BMIResult{Value: Round1(value), Category: BMICategory(value)}, true
}

// BMIImperial computes body mass index from pounds and inches.
func BMIImperial(weightLB, heightIN float64) (BMIResult, bool) {
	if weightLB <= 0 || heightIN <= 0 {
		return BMIResult{}, false
	}
	value := weightLB * 703 / (heightIN * heightIN)
	return BMIResult{Value: Round1(value), Category: BMICategory(value)}, true
}

// BMICategory maps an index to its label. Boundaries are closed-open:
// exactly 18.5 is Normal weight, exactly 25 is Overweight, and so on.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal weight"
	case bmi < 30:
		return "Overweight"
	case bmi < 35:
		return "Obesity class I"
	case bmi < 40:
		return "Obesity class II"
	default:
		return "Obesity class III"
	}
}

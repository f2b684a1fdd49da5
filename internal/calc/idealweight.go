package calc

// IdealWeightResult reports the four named formulas individually, in
// kilograms, plus their unweighted arithmetic mean.
type IdealWeightResult struct {
	Devine   float64 `json:"devine"`
	Robinson float64 `json:"robinson"`
	Miller   float64 `json:"miller"`
	Hamwi    float64 `json:"hamwi"`
	Average  float64 `json:"average"`
}

// IdealWeight computes ideal body weight from height in centimetres. Each
// formula is linear in inches over five feet with gender-specific
// coefficients; below five feet the over-height term is zero.
func IdealWeight(gender string, heightCM float64) (IdealWeightResult, bool) {
	if heightCM <= 0 {
		return IdealWeightResult{}, false
	}

	inchesOver := heightCM/2.54 - 60
	if inchesOver < 0 {
		inchesOver = 0
	}

	var devine, robinson, miller, hamwi float64
	switch gender {
	case "male":
		devine = 50 + 2.3*inchesOver
		robinson = 52 + 1.9*inchesOver
		miller = 56.2 + 1.41*inchesOver
		hamwi = 48 + 2.7*inchesOver
	case "female":
		devine = 45.5 + 2.3*inchesOver
		robinson = 49 + 1.7*inchesOver
		miller = 53.1 + 1.36*inchesOver
		hamwi = 45.5 + 2.2*inchesOver
	default:
		return IdealWeightResult{}, false
	}

	return IdealWeightResult{
		Devine:   Round1(devine),
		Robinson: Round1(robinson),
		Miller:   Round1(miller),
		Hamwi:    Round1(hamwi),
		Average:  Round1((devine + robinson + miller + hamwi) / 4),
	}, true
}

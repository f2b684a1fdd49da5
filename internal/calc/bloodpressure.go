package calc

import "math"

// BPCategory is one of the six blood-pressure classification bands.
type BPCategory string

const (
	BPLow      BPCategory = "Low"
	BPNormal   BPCategory = "Normal"
	BPElevated BPCategory = "Elevated"
	BPStage1   BPCategory = "Hypertension Stage 1"
	BPStage2   BPCategory = "Hypertension Stage 2"
	BPCrisis   BPCategory = "Hypertensive Crisis"
)

// BPCategories lists the bands in classification order.
var BPCategories = []BPCategory{BPLow, BPNormal, BPElevated, BPStage1, BPStage2, BPCrisis}

// ClassifyBloodPressure maps a systolic/diastolic pair to its band. The
// branches overlap at boundaries, so order matters: they are tested
// top-to-bottom and the first match wins. In particular (120, 80) is
// Stage 1 — 120 falls in the Elevated systolic range but dia=80 fails the
// "<80" requirement, and the Stage 1 "or" branch then matches.
func ClassifyBloodPressure(systolic, diastolic float64) BPCategory {
	switch {
	case systolic < 90 || diastolic < 60:
		return BPLow
	case systolic < 120 && diastolic < 80:
		return BPNormal
	case systolic >= 120 && systolic <= 129 && diastolic < 80:
		return BPElevated
	case (systolic >= 130 && systolic <= 139) || (diastolic >= 80 && diastolic <= 89):
		return BPStage1
	case (systolic >= 140 && systolic <= 180) || (diastolic >= 90 && diastolic <= 120):
		return BPStage2
	default:
		return BPCrisis
	}
}

// MeanArterialPressure is (systolic + 2*diastolic)/3 rounded to the nearest
// integer.
func MeanArterialPressure(systolic, diastolic float64) int {
	return int(math.Round((systolic + 2*diastolic) / 3))
}

// BloodPressureResult bundles the classification with the derived MAP.
type BloodPressureResult struct {
	Category BPCategory `json:"category"`
	MAP      int        `json:"map"`
}

// BloodPressure validates and classifies a reading.
func BloodPressure(systolic, diastolic float64) (BloodPressureResult, bool) {
	if systolic <= 0 || diastolic <= 0 || diastolic > systolic {
		return BloodPressureResult{}, false
	}
	return BloodPressureResult{
		Category: ClassifyBloodPressure(systolic, diastolic),
		MAP:      MeanArterialPressure(systolic, diastolic),
	}, true
}

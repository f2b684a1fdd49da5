package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/parsa-a/HealthTrackBack/internal/calc"
)

// CalculatorHandler exposes the pure formula modules. A calculator never
// errors in the domain sense: missing or out-of-range input means no
// computation happens and the caller gets a 400 with no result.
type CalculatorHandler struct{}

func NewCalculatorHandler() *CalculatorHandler {
	return &CalculatorHandler{}
}

func badCalcInput(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing or invalid input"})
}

type bmiRequest struct {
	Unit   string   `json:"unit"`
	Weight *float64 `json:"weight"`
	Height *float64 `json:"height"`
}

func (h *CalculatorHandler) BMI(c *fiber.Ctx) error {
	var req bmiRequest
	if err := c.BodyParser(&req); err != nil || req.Weight == nil || req.Height == nil {
		return badCalcInput(c)
	}

	var result calc.BMIResult
	var ok bool
	switch req.Unit {
	case "imperial":
		result, ok = calc.BMIImperial(*req.Weight, *req.Height)
	case "metric", "":
		result, ok = calc.BMIMetric(*req.Weight, *req.Height)
	}
	if !ok {
		return badCalcInput(c)
	}
	return c.JSON(result)
}

type bodyFatRequest struct {
	Gender string   `json:"gender"`
	Waist  *float64 `json:"waist_cm"`
	Neck   *float64 `json:"neck_cm"`
	Hip    *float64 `json:"hip_cm"`
	Height *float64 `json:"height_cm"`
}

func (h *CalculatorHandler) BodyFat(c *fiber.Ctx) error {
	var req bodyFatRequest
	if err := c.BodyParser(&req); err != nil || req.Waist == nil || req.Neck == nil || req.Height == nil {
		return badCalcInput(c)
	}

	var result calc.BodyFatResult
	var ok bool
	switch req.Gender {
	case "male":
		result, ok = calc.BodyFatMale(*req.Waist, *req.Neck, *req.Height)
	case "female":
		if req.Hip == nil {
			return badCalcInput(c)
		}
		result, ok = calc.BodyFatFemale(*req.Waist, *req.Neck, *req.Hip, *req.Height)
	}
	if !ok {
		return badCalcInput(c)
	}
	return c.JSON(result)
}

type caloriesRequest struct {
	Gender        string   `json:"gender"`
	Weight        *float64 `json:"weight_kg"`
	Height        *float64 `json:"height_cm"`
	Age           *int     `json:"age"`
	ActivityLevel string   `json:"activity_level"`
}

func (h *CalculatorHandler) Calories(c *fiber.Ctx) error {
	var req caloriesRequest
	if err := c.BodyParser(&req); err != nil || req.Weight == nil || req.Height == nil || req.Age == nil {
		return badCalcInput(c)
	}

	result, ok := calc.Calories(req.Gender, *req.Weight, *req.Height, *req.Age, req.ActivityLevel)
	if !ok {
		return badCalcInput(c)
	}
	return c.JSON(result)
}

type idealWeightRequest struct {
	Gender string   `json:"gender"`
	Height *float64 `json:"height_cm"`
}

func (h *CalculatorHandler) IdealWeight(c *fiber.Ctx) error {
	var req idealWeightRequest
	if err := c.BodyParser(&req); err != nil || req.Height == nil {
		return badCalcInput(c)
	}

	result, ok := calc.IdealWeight(req.Gender, *req.Height)
	if !ok {
		return badCalcInput(c)
	}
	return c.JSON(result)
}

type bloodPressureRequest struct {
	Systolic  *float64 `json:"systolic"`
	Diastolic *float64 `json:"diastolic"`
}

func (h *CalculatorHandler) BloodPressure(c *fiber.Ctx) error {
	var req bloodPressureRequest
	if err := c.BodyParser(&req); err != nil || req.Systolic == nil || req.Diastolic == nil {
		return badCalcInput(c)
	}

	result, ok := calc.BloodPressure(*req.Systolic, *req.Diastolic)
	if !ok {
		return badCalcInput(c)
	}
	return c.JSON(result)
}

type waterRequest struct {
	Weight            *float64 `json:"weight_kg"`
	ActivityMLPerKG   *float64 `json:"activity_ml_per_kg"`
	ClimateMultiplier *float64 `json:"climate_multiplier"`
}

func (h *CalculatorHandler) Water(c *fiber.Ctx) error {
	var req waterRequest
	if err := c.BodyParser(&req); err != nil || req.Weight == nil || req.ActivityMLPerKG == nil || req.ClimateMultiplier == nil {
		return badCalcInput(c)
	}

	result, ok := calc.WaterIntake(*req.Weight, *req.ActivityMLPerKG, *req.ClimateMultiplier)
	if !ok {
		return badCalcInput(c)
	}
	return c.JSON(result)
}

type boneMassRequest struct {
	Gender string   `json:"gender"`
	Weight *float64 `json:"weight_kg"`
	Height *float64 `json:"height_cm"`
}

func (h *CalculatorHandler) BoneMass(c *fiber.Ctx) error {
	var req boneMassRequest
	if err := c.BodyParser(&req); err != nil || req.Weight == nil || req.Height == nil {
		return badCalcInput(c)
	}

	mass, ok := calc.BoneMass(req.Gender, *req.Weight, *req.Height)
	if !ok {
		return badCalcInput(c)
	}
	return c.JSON(fiber.Map{"bone_mass_kg": mass})
}

type heartRateRequest struct {
	Formula    string   `json:"formula"`
	Age        *int     `json:"age"`
	RestingBPM *float64 `json:"resting_bpm"`
}

func (h *CalculatorHandler) HeartRate(c *fiber.Ctx) error {
	var req heartRateRequest
	if err := c.BodyParser(&req); err != nil || req.Age == nil {
		return badCalcInput(c)
	}

	maxHR, ok := calc.MaxHeartRate(req.Formula, *req.Age)
	if !ok {
		return badCalcInput(c)
	}

	resting := 0.0
	if req.RestingBPM != nil {
		resting = *req.RestingBPM
	}
	zones, ok := calc.HeartRateZones(maxHR, resting)
	if !ok {
		return badCalcInput(c)
	}

	return c.JSON(fiber.Map{
		"max_bpm": calc.Round1(maxHR),
		"zones":   zones,
	})
}

type bloodVolumeRequest struct {
	Gender string   `json:"gender"`
	Weight *float64 `json:"weight_kg"`
	Height *float64 `json:"height_cm"`
}

func (h *CalculatorHandler) BloodVolume(c *fiber.Ctx) error {
	var req bloodVolumeRequest
	if err := c.BodyParser(&req); err != nil || req.Weight == nil || req.Height == nil {
		return badCalcInput(c)
	}

	liters, ok := calc.BloodVolume(req.Gender, *req.Weight, *req.Height)
	if !ok {
		return badCalcInput(c)
	}
	return c.JSON(fiber.Map{"blood_volume_l": liters})
}

type macrosRequest struct {
	DailyCalories *float64 `json:"daily_calories"`
	Goal          string   `json:"goal"`
}

func (h *CalculatorHandler) Macros(c *fiber.Ctx) error {
	var req macrosRequest
	if err := c.BodyParser(&req); err != nil || req.DailyCalories == nil {
		return badCalcInput(c)
	}

	result, ok := calc.Macros(*req.DailyCalories, req.Goal)
	if !ok {
		return badCalcInput(c)
	}
	return c.JSON(result)
}

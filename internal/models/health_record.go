package models

import "time"

// RecordType is the closed set of measurement kinds a health record can hold.
// RecordValue and RecordValue2 are interpreted according to the type: for
// blood_pressure, RecordValue is the systolic and RecordValue2 the diastolic
// reading; every other type uses RecordValue alone.
type RecordType string

const (
	RecordBMI           RecordType = "bmi"
	RecordCalories      RecordType = "calories"
	RecordWeight        RecordType = "weight"
	RecordWater         RecordType = "water"
	RecordBloodPressure RecordType = "blood_pressure"
	RecordBodyFat       RecordType = "body_fat"
	RecordBoneMass      RecordType = "bone_mass"
)

// RecordTypes lists every valid record type in a stable order.
var RecordTypes = []RecordType{
	RecordBMI,
	RecordCalories,
	RecordWeight,
	RecordWater,
	RecordBloodPressure,
	RecordBodyFat,
	RecordBoneMass,
}

func (t RecordType) Valid() bool {
	switch t {
	case RecordBMI, RecordCalories, RecordWeight, RecordWater,
		RecordBloodPressure, RecordBodyFat, RecordBoneMass:
		return true
	}
	return false
}

// HealthRecord is one timestamped measurement tied to a profile. Records are
// immutable after creation and are never deleted by the application.
type HealthRecord struct {
	ID           int64      `json:"id"`
	UserID       string     `json:"user_id"`
	RecordType   RecordType `json:"record_type"`
	RecordValue  float64    `json:"record_value"`
	RecordValue2 *float64   `json:"record_value_2,omitempty"`
	RecordDate   time.Time  `json:"record_date"`
	CreatedAt    time.Time  `json:"created_at"`
}

package models

// Bucket is one row of a categorical distribution table.
type Bucket struct {
	Category   string  `json:"category"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// DashboardStats is the admin dashboard payload, recomputed from the full
// record list on every request.
type DashboardStats struct {
	TotalProfiles    int                `json:"total_profiles"`
	TotalRecords     int                `json:"total_records"`
	ActiveProfiles   int                `json:"active_profiles"`
	RecordsByType    map[RecordType]int `json:"records_by_type"`
	BMIDistribution  []Bucket           `json:"bmi_distribution"`
	BloodPressure    []Bucket           `json:"blood_pressure_distribution"`
	WeeklyActivity   [7]int             `json:"weekly_activity"`
	ActiveWindowDays int                `json:"active_window_days"`
}

type PaginationMeta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/parsa-a/HealthTrackBack/internal/aggregate"
	"github.com/parsa-a/HealthTrackBack/internal/calc"
	"github.com/parsa-a/HealthTrackBack/internal/models"
)

const activeWindowDays = 30

var (
	bmiThresholds = []float64{18.5, 25, 30}
	bmiLabels     = []string{"Underweight", "Normal", "Overweight", "Obese"}
)

type profileLister interface {
	ListAll(ctx context.Context) ([]models.Profile, error)
}

type recordLister interface {
	ListAll(ctx context.Context) ([]models.HealthRecord, error)
}

// DashboardService derives the admin statistics. Nothing is cached: every
// call recomputes from the full profile and record lists, so the dashboard
// and the profile pages always agree on the same snapshot semantics.
type DashboardService struct {
	profiles profileLister
	records  recordLister
	now      func() time.Time
}

func NewDashboardService(profiles profileLister, records recordLister) *DashboardService {
	return &DashboardService{
		profiles: profiles,
		records:  records,
		now:      time.Now,
	}
}

func (s *DashboardService) Stats(ctx context.Context) (*models.DashboardStats, error) {
	profiles, err := s.profiles.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	records, err := s.records.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	now := s.now().UTC()

	byType := make(map[models.RecordType]int, len(models.RecordTypes))
	for _, t := range models.RecordTypes {
		byType[t] = 0
	}
	var bmiValues []float64
	var bpCategories []string
	for _, rec := range records {
		byType[rec.RecordType]++
		switch rec.RecordType {
		case models.RecordBMI:
			bmiValues = append(bmiValues, rec.RecordValue)
		case models.RecordBloodPressure:
			if rec.RecordValue2 != nil {
				cat := calc.ClassifyBloodPressure(rec.RecordValue, *rec.RecordValue2)
				bpCategories = append(bpCategories, string(cat))
			}
		}
	}

	bpOrder := make([]string, len(calc.BPCategories))
	for i, c := range calc.BPCategories {
		bpOrder[i] = string(c)
	}

	return &models.DashboardStats{
		TotalProfiles:    len(profiles),
		TotalRecords:     len(records),
		ActiveProfiles:   len(aggregate.ActiveUserIDs(records, now, activeWindowDays)),
		RecordsByType:    byType,
		BMIDistribution:  aggregate.Bucketize(bmiValues, bmiThresholds, bmiLabels),
		BloodPressure:    aggregate.CountCategories(bpCategories, bpOrder),
		WeeklyActivity:   aggregate.WeeklyActivity(records, now),
		ActiveWindowDays: activeWindowDays,
	}, nil
}

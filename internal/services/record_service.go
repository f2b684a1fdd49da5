package services

import (
	"context"
	"fmt"
	"time"

	"github.com/parsa-a/HealthTrackBack/internal/aggregate"
	"github.com/parsa-a/HealthTrackBack/internal/models"
)

type recordStore interface {
	Insert(ctx context.Context, record *models.HealthRecord) error
	ListByUser(ctx context.Context, userID string) ([]models.HealthRecord, error)
}

type sessionResolver interface {
	Current(ctx context.Context, clientID string) (*Session, error)
}

// RecordService saves calculator results against the current profile and
// derives the per-profile summary views. Records are write-once: there is no
// update or delete path.
type RecordService struct {
	records recordStore
	session sessionResolver
}

func NewRecordService(records recordStore, session sessionResolver) *RecordService {
	return &RecordService{records: records, session: session}
}

type SaveRecordInput struct {
	RecordType   models.RecordType
	RecordValue  float64
	RecordValue2 *float64
	RecordDate   time.Time
}

// Save persists one measurement for the client's current profile. For
// blood_pressure, RecordValue is the systolic and RecordValue2 the diastolic
// reading; RecordValue2 is rejected for every other type.
func (s *RecordService) Save(ctx context.Context, clientID string, in SaveRecordInput) (*models.HealthRecord, error) {
	if !in.RecordType.Valid() {
		return nil, ErrInvalidInput
	}
	if in.RecordType == models.RecordBloodPressure {
		if in.RecordValue2 == nil {
			return nil, ErrInvalidInput
		}
	} else if in.RecordValue2 != nil {
		return nil, ErrInvalidInput
	}

	session, err := s.session.Current(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if session.State != StateAuthenticated {
		return nil, ErrNoProfile
	}

	recordDate := in.RecordDate
	if recordDate.IsZero() {
		recordDate = time.Now().UTC()
	}

	record := &models.HealthRecord{
		UserID:       session.Profile.ID,
		RecordType:   in.RecordType,
		RecordValue:  in.RecordValue,
		RecordValue2: in.RecordValue2,
		RecordDate:   recordDate,
	}
	if err := s.records.Insert(ctx, record); err != nil {
		return nil, fmt.Errorf("save record: %w", err)
	}
	return record, nil
}

// ListOwn returns the current profile's records, optionally filtered by
// type.
func (s *RecordService) ListOwn(ctx context.Context, clientID string, recordType models.RecordType) ([]models.HealthRecord, error) {
	if recordType != "" && !recordType.Valid() {
		return nil, ErrInvalidInput
	}

	session, err := s.session.Current(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if session.State != StateAuthenticated {
		return nil, ErrNoProfile
	}

	records, err := s.records.ListByUser(ctx, session.Profile.ID)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	if recordType == "" {
		return records, nil
	}

	filtered := make([]models.HealthRecord, 0, len(records))
	for _, rec := range records {
		if rec.RecordType == recordType {
			filtered = append(filtered, rec)
		}
	}
	return filtered, nil
}

// RecordSummary is the profile-view aggregate: the newest record of each
// type plus a short trend series per type.
type RecordSummary struct {
	Latest map[models.RecordType]*models.HealthRecord  `json:"latest"`
	Trends map[models.RecordType][]models.HealthRecord `json:"trends"`
}

// Summary recomputes the derived views from the profile's full record list.
func (s *RecordService) Summary(ctx context.Context, clientID string, trendLen int) (*RecordSummary, error) {
	if trendLen <= 0 {
		trendLen = 10
	}

	session, err := s.session.Current(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if session.State != StateAuthenticated {
		return nil, ErrNoProfile
	}

	records, err := s.records.ListByUser(ctx, session.Profile.ID)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	trends := make(map[models.RecordType][]models.HealthRecord)
	for _, t := range models.RecordTypes {
		if slice := aggregate.TrendSlice(records, t, trendLen); len(slice) > 0 {
			trends[t] = slice
		}
	}

	return &RecordSummary{
		Latest: aggregate.LatestByType(records),
		Trends: trends,
	}, nil
}

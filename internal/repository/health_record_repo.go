package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/parsa-a/HealthTrackBack/internal/models"
)

type HealthRecordRepository struct {
	db DBTX
}

func NewHealthRecordRepository(db DBTX) *HealthRecordRepository {
	return &HealthRecordRepository{db: db}
}

func (r *HealthRecordRepository) Insert(ctx context.Context, record *models.HealthRecord) error {
	query := `
		INSERT INTO health_records (user_id, record_type, record_value, record_value_2, record_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	return r.db.QueryRow(ctx, query,
		record.UserID,
		record.RecordType,
		record.RecordValue,
		record.RecordValue2,
		record.RecordDate,
	).Scan(&record.ID, &record.CreatedAt)
}

func (r *HealthRecordRepository) ListByUser(ctx context.Context, userID string) ([]models.HealthRecord, error) {
	query := `
		SELECT id, user_id, record_type, record_value, record_value_2, record_date, created_at
		FROM health_records
		WHERE user_id = $1
		ORDER BY record_date ASC, id ASC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRecords(rows)
}

func (r *HealthRecordRepository) ListAll(ctx context.Context) ([]models.HealthRecord, error) {
	query := `
		SELECT id, user_id, record_type, record_value, record_value_2, record_date, created_at
		FROM health_records
		ORDER BY record_date ASC, id ASC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRecords(rows)
}

func (r *HealthRecordRepository) List(ctx context.Context, limit, offset int) ([]models.HealthRecord, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM health_records`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, user_id, record_type, record_value, record_value_2, record_date, created_at
		FROM health_records
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	records, err := collectRecords(rows)
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

func collectRecords(rows pgx.Rows) ([]models.HealthRecord, error) {
	var records []models.HealthRecord
	for rows.Next() {
		var rec models.HealthRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.UserID,
			&rec.RecordType,
			&rec.RecordValue,
			&rec.RecordValue2,
			&rec.RecordDate,
			&rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/parsa-a/HealthTrackBack/internal/models"
)

type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type ProfileRepository struct {
	db DBTX
}

func NewProfileRepository(db DBTX) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) Insert(ctx context.Context, profile *models.Profile) error {
	query := `
		INSERT INTO profiles (id, username, full_name, avatar_url, department, stage, language_preference)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`
	return r.db.QueryRow(ctx, query,
		profile.ID,
		profile.Username,
		profile.FullName,
		profile.AvatarURL,
		profile.Department,
		profile.Stage,
		profile.LanguagePreference,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)
}

func (r *ProfileRepository) FindByID(ctx context.Context, id string) (*models.Profile, error) {
	query := `
		SELECT id, username, full_name, avatar_url, department, stage, language_preference, created_at, updated_at
		FROM profiles
		WHERE id = $1
	`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

// FindByUsername looks up by exact username match. The schema does not
// enforce uniqueness, so with duplicate names this returns an arbitrary
// single match.
func (r *ProfileRepository) FindByUsername(ctx context.Context, username string) (*models.Profile, error) {
	query := `
		SELECT id, username, full_name, avatar_url, department, stage, language_preference, created_at, updated_at
		FROM profiles
		WHERE username = $1
		LIMIT 1
	`
	return r.scanOne(r.db.QueryRow(ctx, query, username))
}

func (r *ProfileRepository) UpdatePartial(ctx context.Context, id string, in UpdateProfileInput) (*models.Profile, error) {
	query := `
		UPDATE profiles
		SET full_name = COALESCE($1, full_name),
			avatar_url = COALESCE($2, avatar_url),
			department = COALESCE($3, department),
			stage = COALESCE($4, stage),
			language_preference = COALESCE($5, language_preference),
			updated_at = NOW()
		WHERE id = $6
		RETURNING id, username, full_name, avatar_url, department, stage, language_preference, created_at, updated_at
	`
	return r.scanOne(r.db.QueryRow(ctx, query,
		in.FullName,
		in.AvatarURL,
		in.Department,
		in.Stage,
		in.LanguagePreference,
		id,
	))
}

func (r *ProfileRepository) ListAll(ctx context.Context) ([]models.Profile, error) {
	query := `
		SELECT id, username, full_name, avatar_url, department, stage, language_preference, created_at, updated_at
		FROM profiles
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []models.Profile
	for rows.Next() {
		var p models.Profile
		if err := scanProfile(rows, &p); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

func (r *ProfileRepository) List(ctx context.Context, limit, offset int) ([]models.Profile, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM profiles`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, username, full_name, avatar_url, department, stage, language_preference, created_at, updated_at
		FROM profiles
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var profiles []models.Profile
	for rows.Next() {
		var p models.Profile
		if err := scanProfile(rows, &p); err != nil {
			return nil, 0, err
		}
		profiles = append(profiles, p)
	}
	return profiles, total, rows.Err()
}

func (r *ProfileRepository) scanOne(row pgx.Row) (*models.Profile, error) {
	var p models.Profile
	if err := scanProfile(row, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func scanProfile(row pgx.Row, p *models.Profile) error {
	return row.Scan(
		&p.ID,
		&p.Username,
		&p.FullName,
		&p.AvatarURL,
		&p.Department,
		&p.Stage,
		&p.LanguagePreference,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
}

type UpdateProfileInput struct {
	FullName           *string
	AvatarURL          *string
	Department         *string
	Stage              *string
	LanguagePreference *string
}

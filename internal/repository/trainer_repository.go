package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kscst/vocational-training-backend/internal/model"
)

const trainerColumns = `id, username, password_hash, name, email, phone, expertise, status, created_at, updated_at`

// TrainerRepository handles trainer data access.
type TrainerRepository struct {
	pool *pgxpool.Pool
}

// NewTrainerRepository creates a new TrainerRepository.
func NewTrainerRepository(pool *pgxpool.Pool) *TrainerRepository {
	return &TrainerRepository{pool: pool}
}

func scanTrainer(row interface{ Scan(...any) error }) (*model.Trainer, error) {
	t := &model.Trainer{}
	err := row.Scan(&t.ID, &t.Username, &t.PasswordHash, &t.Name, &t.Email, &t.Phone,
		&t.Expertise, &t.Status, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, translateScanErr(err)
	}
	return t, nil
}

// GetByID retrieves a trainer by ID.
func (r *TrainerRepository) GetByID(ctx context.Context, id string) (*model.Trainer, error) {
	return scanTrainer(r.pool.QueryRow(ctx,
		`SELECT `+trainerColumns+` FROM trainers WHERE id = $1`, id))
}

// GetByUsername retrieves a trainer by their unique username.
func (r *TrainerRepository) GetByUsername(ctx context.Context, username string) (*model.Trainer, error) {
	return scanTrainer(r.pool.QueryRow(ctx,
		`SELECT `+trainerColumns+` FROM trainers WHERE username = $1`, username))
}

// Exists reports whether a trainer with the given ID exists.
func (r *TrainerRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM trainers WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

// List retrieves all trainers ordered by registration time.
func (r *TrainerRepository) List(ctx context.Context) ([]model.Trainer, error) {
	return r.queryTrainers(ctx,
		`SELECT `+trainerColumns+` FROM trainers ORDER BY created_at`)
}

// ListByStatus retrieves trainers with the given approval status.
func (r *TrainerRepository) ListByStatus(ctx context.Context, status model.Status) ([]model.Trainer, error) {
	return r.queryTrainers(ctx,
		`SELECT `+trainerColumns+` FROM trainers WHERE status = $1 ORDER BY name`, status)
}

func (r *TrainerRepository) queryTrainers(ctx context.Context, query string, args ...any) ([]model.Trainer, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trainers []model.Trainer
	for rows.Next() {
		t, err := scanTrainer(rows)
		if err != nil {
			return nil, err
		}
		trainers = append(trainers, *t)
	}
	return trainers, rows.Err()
}

// Create inserts a new trainer. The username must be unique among trainers.
func (r *TrainerRepository) Create(ctx context.Context, t *model.Trainer) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	err := r.pool.QueryRow(ctx,
		`INSERT INTO trainers (id, username, password_hash, name, email, phone, expertise, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING created_at, updated_at`,
		t.ID, t.Username, t.PasswordHash, t.Name, t.Email, t.Phone, t.Expertise, t.Status,
	).Scan(&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// Update writes profile fields and status.
func (r *TrainerRepository) Update(ctx context.Context, t *model.Trainer) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE trainers
		 SET name = $1, email = $2, phone = $3, expertise = $4, status = $5, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $6`,
		t.Name, t.Email, t.Phone, t.Expertise, t.Status, t.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a trainer by ID. Owned materials and playlists cascade;
// trainee assignments are left pointing at the removed trainer.
func (r *TrainerRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM trainers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kscst/vocational-training-backend/internal/model"
)

const traineeColumns = `id, username, password_hash, name, email, phone, skill, location, status, COALESCE(assigned_trainer_id::text, ''), created_at, updated_at`

// TraineeRepository handles trainee data access.
type TraineeRepository struct {
	pool *pgxpool.Pool
}

// NewTraineeRepository creates a new TraineeRepository.
func NewTraineeRepository(pool *pgxpool.Pool) *TraineeRepository {
	return &TraineeRepository{pool: pool}
}

func scanTrainee(row interface{ Scan(...any) error }) (*model.Trainee, error) {
	t := &model.Trainee{}
	err := row.Scan(&t.ID, &t.Username, &t.PasswordHash, &t.Name, &t.Email, &t.Phone,
		&t.Skill, &t.Location, &t.Status, &t.AssignedTrainerID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, translateScanErr(err)
	}
	return t, nil
}

// GetByID retrieves a trainee by ID.
func (r *TraineeRepository) GetByID(ctx context.Context, id string) (*model.Trainee, error) {
	return scanTrainee(r.pool.QueryRow(ctx,
		`SELECT `+traineeColumns+` FROM trainees WHERE id = $1`, id))
}

// GetByUsername retrieves a trainee by their unique username.
func (r *TraineeRepository) GetByUsername(ctx context.Context, username string) (*model.Trainee, error) {
	return scanTrainee(r.pool.QueryRow(ctx,
		`SELECT `+traineeColumns+` FROM trainees WHERE username = $1`, username))
}

// List retrieves all trainees ordered by registration time.
func (r *TraineeRepository) List(ctx context.Context) ([]model.Trainee, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+traineeColumns+` FROM trainees ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trainees []model.Trainee
	for rows.Next() {
		t, err := scanTrainee(rows)
		if err != nil {
			return nil, err
		}
		trainees = append(trainees, *t)
	}
	return trainees, rows.Err()
}

// ListByTrainer retrieves all trainees assigned to the given trainer.
func (r *TraineeRepository) ListByTrainer(ctx context.Context, trainerID string) ([]model.Trainee, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+traineeColumns+` FROM trainees WHERE assigned_trainer_id = $1 ORDER BY name`, trainerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trainees []model.Trainee
	for rows.Next() {
		t, err := scanTrainee(rows)
		if err != nil {
			return nil, err
		}
		trainees = append(trainees, *t)
	}
	return trainees, rows.Err()
}

// Create inserts a new trainee. The username must be unique among trainees.
func (r *TraineeRepository) Create(ctx context.Context, t *model.Trainee) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	err := r.pool.QueryRow(ctx,
		`INSERT INTO trainees (id, username, password_hash, name, email, phone, skill, location, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING created_at, updated_at`,
		t.ID, t.Username, t.PasswordHash, t.Name, t.Email, t.Phone, t.Skill, t.Location, t.Status,
	).Scan(&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// Update writes profile fields, status, and trainer assignment in one row
// write, which keeps trainee approval atomic per trainee.
func (r *TraineeRepository) Update(ctx context.Context, t *model.Trainee) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE trainees
		 SET name = $1, email = $2, phone = $3, skill = $4, location = $5,
		     status = $6, assigned_trainer_id = NULLIF($7, '')::uuid, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $8`,
		t.Name, t.Email, t.Phone, t.Skill, t.Location, t.Status, t.AssignedTrainerID, t.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a trainee by ID. Progress and certificate rows cascade.
func (r *TraineeRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM trainees WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

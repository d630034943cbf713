package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kscst/vocational-training-backend/internal/model"
)

const materialColumns = `id, trainer_id, title, file_name, file_path, file_type, created_at, updated_at`

// MaterialRepository handles training material metadata access. File bytes
// live on disk under the upload directory; only paths are stored here.
type MaterialRepository struct {
	pool *pgxpool.Pool
}

// NewMaterialRepository creates a new MaterialRepository.
func NewMaterialRepository(pool *pgxpool.Pool) *MaterialRepository {
	return &MaterialRepository{pool: pool}
}

func scanMaterial(row interface{ Scan(...any) error }) (*model.TrainingMaterial, error) {
	m := &model.TrainingMaterial{}
	err := row.Scan(&m.ID, &m.TrainerID, &m.Title, &m.FileName, &m.FilePath,
		&m.FileType, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, translateScanErr(err)
	}
	return m, nil
}

// GetByID retrieves a material by ID.
func (r *MaterialRepository) GetByID(ctx context.Context, id string) (*model.TrainingMaterial, error) {
	return scanMaterial(r.pool.QueryRow(ctx,
		`SELECT `+materialColumns+` FROM training_materials WHERE id = $1`, id))
}

// ListByTrainer retrieves all materials owned by the given trainer.
func (r *MaterialRepository) ListByTrainer(ctx context.Context, trainerID string) ([]model.TrainingMaterial, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+materialColumns+` FROM training_materials WHERE trainer_id = $1 ORDER BY created_at`, trainerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var materials []model.TrainingMaterial
	for rows.Next() {
		m, err := scanMaterial(rows)
		if err != nil {
			return nil, err
		}
		materials = append(materials, *m)
	}
	return materials, rows.Err()
}

// Create inserts a new material row.
func (r *MaterialRepository) Create(ctx context.Context, m *model.TrainingMaterial) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return r.pool.QueryRow(ctx,
		`INSERT INTO training_materials (id, trainer_id, title, file_name, file_path, file_type)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at, updated_at`,
		m.ID, m.TrainerID, m.Title, m.FileName, m.FilePath, m.FileType,
	).Scan(&m.CreatedAt, &m.UpdatedAt)
}

// Update writes the title and file reference of a material.
func (r *MaterialRepository) Update(ctx context.Context, m *model.TrainingMaterial) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE training_materials
		 SET title = $1, file_name = $2, file_path = $3, file_type = $4, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $5`,
		m.Title, m.FileName, m.FilePath, m.FileType, m.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a material by ID. Progress records referencing the material
// cascade at the storage level.
func (r *MaterialRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM training_materials WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kscst/vocational-training-backend/internal/model"
)

// ProgressRepository handles the append-only completion ledger. Partial
// unique indexes make insertion of an already-recorded target fail with
// ErrDuplicate, which callers treat as the idempotent-success path.
type ProgressRepository struct {
	pool *pgxpool.Pool
}

// NewProgressRepository creates a new ProgressRepository.
func NewProgressRepository(pool *pgxpool.Pool) *ProgressRepository {
	return &ProgressRepository{pool: pool}
}

func scanProgress(row interface{ Scan(...any) error }) (*model.Progress, error) {
	p := &model.Progress{}
	var materialID, playlistID, videoURL string
	err := row.Scan(&p.ID, &p.TraineeID, &materialID, &playlistID, &videoURL, &p.CompletedAt)
	if err != nil {
		return nil, translateScanErr(err)
	}
	if materialID != "" {
		p.Target = model.MaterialTarget(materialID)
	} else {
		p.Target = model.PlaylistVideoTarget(playlistID, videoURL)
	}
	return p, nil
}

const progressSelect = `SELECT id, trainee_id, COALESCE(material_id::text, ''), COALESCE(playlist_id::text, ''), COALESCE(video_url, ''), completed_at FROM progress`

// Create appends a new progress record for the target carried by p.
func (r *ProgressRepository) Create(ctx context.Context, p *model.Progress) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	var err error
	switch p.Target.Kind {
	case model.TargetMaterial:
		err = r.pool.QueryRow(ctx,
			`INSERT INTO progress (id, trainee_id, material_id)
			 VALUES ($1, $2, $3)
			 RETURNING completed_at`,
			p.ID, p.TraineeID, p.Target.MaterialID,
		).Scan(&p.CompletedAt)
	default:
		err = r.pool.QueryRow(ctx,
			`INSERT INTO progress (id, trainee_id, playlist_id, video_url)
			 VALUES ($1, $2, $3, $4)
			 RETURNING completed_at`,
			p.ID, p.TraineeID, p.Target.PlaylistID, p.Target.VideoURL,
		).Scan(&p.CompletedAt)
	}
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// GetByTarget retrieves the record for a (trainee, target) pair.
func (r *ProgressRepository) GetByTarget(ctx context.Context, traineeID string, target model.ProgressTarget) (*model.Progress, error) {
	if target.Kind == model.TargetMaterial {
		return scanProgress(r.pool.QueryRow(ctx,
			progressSelect+` WHERE trainee_id = $1 AND material_id = $2`,
			traineeID, target.MaterialID))
	}
	return scanProgress(r.pool.QueryRow(ctx,
		progressSelect+` WHERE trainee_id = $1 AND playlist_id = $2 AND video_url = $3`,
		traineeID, target.PlaylistID, target.VideoURL))
}

// ListByTrainee retrieves all progress records for a trainee in completion
// order.
func (r *ProgressRepository) ListByTrainee(ctx context.Context, traineeID string) ([]model.Progress, error) {
	rows, err := r.pool.Query(ctx,
		progressSelect+` WHERE trainee_id = $1 ORDER BY completed_at`, traineeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.Progress
	for rows.Next() {
		p, err := scanProgress(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *p)
	}
	return records, rows.Err()
}

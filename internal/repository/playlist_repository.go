package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kscst/vocational-training-backend/internal/model"
)

// PlaylistRepository handles playlist data access. The ordered video list is
// stored as a JSONB document, mirroring its embedded nature in the model.
type PlaylistRepository struct {
	pool *pgxpool.Pool
}

// NewPlaylistRepository creates a new PlaylistRepository.
func NewPlaylistRepository(pool *pgxpool.Pool) *PlaylistRepository {
	return &PlaylistRepository{pool: pool}
}

func scanPlaylist(row interface{ Scan(...any) error }) (*model.Playlist, error) {
	p := &model.Playlist{}
	var videos []byte
	err := row.Scan(&p.ID, &p.TrainerID, &p.Title, &p.Skill, &videos, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, translateScanErr(err)
	}
	if err := json.Unmarshal(videos, &p.Videos); err != nil {
		return nil, fmt.Errorf("decode videos: %w", err)
	}
	return p, nil
}

// GetByID retrieves a playlist by ID.
func (r *PlaylistRepository) GetByID(ctx context.Context, id string) (*model.Playlist, error) {
	return scanPlaylist(r.pool.QueryRow(ctx,
		`SELECT id, trainer_id, title, skill, videos, created_at, updated_at
		 FROM playlists WHERE id = $1`, id))
}

// ListByTrainer retrieves all playlists owned by the given trainer.
func (r *PlaylistRepository) ListByTrainer(ctx context.Context, trainerID string) ([]model.Playlist, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, trainer_id, title, skill, videos, created_at, updated_at
		 FROM playlists WHERE trainer_id = $1 ORDER BY created_at`, trainerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var playlists []model.Playlist
	for rows.Next() {
		p, err := scanPlaylist(rows)
		if err != nil {
			return nil, err
		}
		playlists = append(playlists, *p)
	}
	return playlists, rows.Err()
}

// Create inserts a new playlist row.
func (r *PlaylistRepository) Create(ctx context.Context, p *model.Playlist) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	videos, err := json.Marshal(p.Videos)
	if err != nil {
		return fmt.Errorf("encode videos: %w", err)
	}
	return r.pool.QueryRow(ctx,
		`INSERT INTO playlists (id, trainer_id, title, skill, videos)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at, updated_at`,
		p.ID, p.TrainerID, p.Title, p.Skill, videos,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
}

// Update replaces the title, skill, and full video list of a playlist.
func (r *PlaylistRepository) Update(ctx context.Context, p *model.Playlist) error {
	videos, err := json.Marshal(p.Videos)
	if err != nil {
		return fmt.Errorf("encode videos: %w", err)
	}
	tag, err := r.pool.Exec(ctx,
		`UPDATE playlists
		 SET title = $1, skill = $2, videos = $3, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $4`,
		p.Title, p.Skill, videos, p.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a playlist by ID. Progress records that reference it stay in
// the ledger; the completion engine drops them from display when they no
// longer resolve.
func (r *PlaylistRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM playlists WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

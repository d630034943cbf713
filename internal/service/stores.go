package service

import (
	"context"

	"github.com/kscst/vocational-training-backend/internal/model"
)

// Store interfaces consumed by the services. The pgx repositories satisfy
// them in production; tests substitute in-memory fakes.

// TraineeStore is the persistence surface for trainee accounts.
type TraineeStore interface {
	GetByID(ctx context.Context, id string) (*model.Trainee, error)
	GetByUsername(ctx context.Context, username string) (*model.Trainee, error)
	List(ctx context.Context) ([]model.Trainee, error)
	ListByTrainer(ctx context.Context, trainerID string) ([]model.Trainee, error)
	Create(ctx context.Context, t *model.Trainee) error
	Update(ctx context.Context, t *model.Trainee) error
	Delete(ctx context.Context, id string) error
}

// TrainerStore is the persistence surface for trainer accounts.
type TrainerStore interface {
	GetByID(ctx context.Context, id string) (*model.Trainer, error)
	GetByUsername(ctx context.Context, username string) (*model.Trainer, error)
	Exists(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]model.Trainer, error)
	ListByStatus(ctx context.Context, status model.Status) ([]model.Trainer, error)
	Create(ctx context.Context, t *model.Trainer) error
	Update(ctx context.Context, t *model.Trainer) error
	Delete(ctx context.Context, id string) error
}

// AdminStore is the persistence surface for admin accounts.
type AdminStore interface {
	GetByUsername(ctx context.Context, username string) (*model.Admin, error)
}

// MaterialStore is the persistence surface for training material metadata.
type MaterialStore interface {
	GetByID(ctx context.Context, id string) (*model.TrainingMaterial, error)
	ListByTrainer(ctx context.Context, trainerID string) ([]model.TrainingMaterial, error)
	Create(ctx context.Context, m *model.TrainingMaterial) error
	Update(ctx context.Context, m *model.TrainingMaterial) error
	Delete(ctx context.Context, id string) error
}

// PlaylistStore is the persistence surface for playlists.
type PlaylistStore interface {
	GetByID(ctx context.Context, id string) (*model.Playlist, error)
	ListByTrainer(ctx context.Context, trainerID string) ([]model.Playlist, error)
	Create(ctx context.Context, p *model.Playlist) error
	Update(ctx context.Context, p *model.Playlist) error
	Delete(ctx context.Context, id string) error
}

// ProgressStore is the persistence surface for the completion ledger.
type ProgressStore interface {
	Create(ctx context.Context, p *model.Progress) error
	GetByTarget(ctx context.Context, traineeID string, target model.ProgressTarget) (*model.Progress, error)
	ListByTrainee(ctx context.Context, traineeID string) ([]model.Progress, error)
}

// CertificateStore is the persistence surface for certificate records.
type CertificateStore interface {
	GetByTrainee(ctx context.Context, traineeID string) (*model.Certificate, error)
	Create(ctx context.Context, c *model.Certificate) error
}

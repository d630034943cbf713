package service

import (
	"context"
	"errors"

	"github.com/kscst/vocational-training-backend/internal/model"
	"github.com/kscst/vocational-training-backend/internal/repository"
)

// AdminService covers account lifecycle operations reserved for admins.
type AdminService struct {
	trainees TraineeStore
	trainers TrainerStore
}

// NewAdminService creates a new AdminService.
func NewAdminService(trainees TraineeStore, trainers TrainerStore) *AdminService {
	return &AdminService{trainees: trainees, trainers: trainers}
}

// ListTrainees returns every trainee account regardless of status.
func (s *AdminService) ListTrainees(ctx context.Context) ([]model.Trainee, error) {
	return s.trainees.List(ctx)
}

// ListTrainers returns every trainer account regardless of status.
func (s *AdminService) ListTrainers(ctx context.Context) ([]model.Trainer, error) {
	return s.trainers.List(ctx)
}

// ListApprovedTrainers returns trainers eligible for trainee assignment.
func (s *AdminService) ListApprovedTrainers(ctx context.Context) ([]model.Trainer, error) {
	return s.trainers.ListByStatus(ctx, model.StatusApproved)
}

// DeleteTrainee removes a trainee account. Progress rows and any issued
// certificate cascade at the storage level.
func (s *AdminService) DeleteTrainee(ctx context.Context, id string) error {
	if err := s.trainees.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// DeleteTrainer removes a trainer account along with its materials and
// playlists via storage cascades. Trainees assigned to the trainer keep the
// now-dangling assignment.
func (s *AdminService) DeleteTrainer(ctx context.Context, id string) error {
	if err := s.trainers.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// ApproveTrainee marks a trainee APPROVED and assigns the given trainer.
// Approval and assignment land together or not at all: when the trainer does
// not exist the trainee is left untouched.
func (s *AdminService) ApproveTrainee(ctx context.Context, traineeID, trainerID string) (*model.Trainee, error) {
	trainee, err := s.trainees.GetByID(ctx, traineeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	exists, err := s.trainers.Exists(ctx, trainerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNotFound
	}

	trainee.Status = model.StatusApproved
	trainee.AssignedTrainerID = trainerID
	if err := s.trainees.Update(ctx, trainee); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return trainee, nil
}

// RejectTrainee marks a trainee REJECTED. Any prior trainer assignment is
// cleared in the same write.
func (s *AdminService) RejectTrainee(ctx context.Context, traineeID string) (*model.Trainee, error) {
	trainee, err := s.trainees.GetByID(ctx, traineeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	trainee.Status = model.StatusRejected
	trainee.AssignedTrainerID = ""
	if err := s.trainees.Update(ctx, trainee); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return trainee, nil
}

// ApproveTrainer marks a trainer APPROVED.
func (s *AdminService) ApproveTrainer(ctx context.Context, trainerID string) (*model.Trainer, error) {
	return s.setTrainerStatus(ctx, trainerID, model.StatusApproved)
}

// RejectTrainer marks a trainer REJECTED.
func (s *AdminService) RejectTrainer(ctx context.Context, trainerID string) (*model.Trainer, error) {
	return s.setTrainerStatus(ctx, trainerID, model.StatusRejected)
}

func (s *AdminService) setTrainerStatus(ctx context.Context, trainerID string, status model.Status) (*model.Trainer, error) {
	trainer, err := s.trainers.GetByID(ctx, trainerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	trainer.Status = status
	if err := s.trainers.Update(ctx, trainer); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return trainer, nil
}

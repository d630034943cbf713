package service

import (
	"context"
	"errors"

	"github.com/kscst/vocational-training-backend/internal/model"
	"github.com/kscst/vocational-training-backend/internal/repository"
)

// TrainerService covers the trainer's own profile and roster.
type TrainerService struct {
	trainers TrainerStore
	trainees TraineeStore
}

// NewTrainerService creates a new TrainerService.
func NewTrainerService(trainers TrainerStore, trainees TraineeStore) *TrainerService {
	return &TrainerService{trainers: trainers, trainees: trainees}
}

// Profile returns the trainer's account.
func (s *TrainerService) Profile(ctx context.Context, trainerID string) (*model.Trainer, error) {
	trainer, err := s.trainers.GetByID(ctx, trainerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return trainer, nil
}

// UpdateProfile changes the trainer's contact and expertise fields. Username,
// password, and status are not editable here.
func (s *TrainerService) UpdateProfile(ctx context.Context, trainerID string, req *model.UpdateTrainerProfileRequest) (*model.Trainer, error) {
	trainer, err := s.Profile(ctx, trainerID)
	if err != nil {
		return nil, err
	}

	trainer.Name = req.Name
	trainer.Email = req.Email
	trainer.Phone = req.Phone
	trainer.Expertise = req.Expertise
	if err := s.trainers.Update(ctx, trainer); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return trainer, nil
}

// AssignedTrainees lists the trainees assigned to the trainer.
func (s *TrainerService) AssignedTrainees(ctx context.Context, trainerID string) ([]model.Trainee, error) {
	return s.trainees.ListByTrainer(ctx, trainerID)
}

package service

import (
	"context"
	"errors"

	"github.com/kscst/vocational-training-backend/internal/model"
	"github.com/kscst/vocational-training-backend/internal/repository"
)

// TraineeService covers the trainee's own profile and the catalog visible to
// them. A trainee only ever sees the materials and playlists of their
// assigned trainer; before assignment both lists are empty.
type TraineeService struct {
	trainees  TraineeStore
	materials MaterialStore
	playlists PlaylistStore
}

// NewTraineeService creates a new TraineeService.
func NewTraineeService(trainees TraineeStore, materials MaterialStore, playlists PlaylistStore) *TraineeService {
	return &TraineeService{trainees: trainees, materials: materials, playlists: playlists}
}

// Profile returns the trainee's account.
func (s *TraineeService) Profile(ctx context.Context, traineeID string) (*model.Trainee, error) {
	trainee, err := s.trainees.GetByID(ctx, traineeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return trainee, nil
}

// UpdateProfile changes the trainee's contact and skill fields. Username,
// password, status, and assignment are not editable here.
func (s *TraineeService) UpdateProfile(ctx context.Context, traineeID string, req *model.UpdateTraineeProfileRequest) (*model.Trainee, error) {
	trainee, err := s.Profile(ctx, traineeID)
	if err != nil {
		return nil, err
	}

	trainee.Name = req.Name
	trainee.Email = req.Email
	trainee.Phone = req.Phone
	trainee.Skill = req.Skill
	trainee.Location = req.Location
	if err := s.trainees.Update(ctx, trainee); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return trainee, nil
}

// AssignedMaterials lists the materials of the trainee's assigned trainer.
func (s *TraineeService) AssignedMaterials(ctx context.Context, traineeID string) ([]model.TrainingMaterial, error) {
	trainee, err := s.Profile(ctx, traineeID)
	if err != nil {
		return nil, err
	}
	if trainee.AssignedTrainerID == "" {
		return []model.TrainingMaterial{}, nil
	}
	return s.materials.ListByTrainer(ctx, trainee.AssignedTrainerID)
}

// AssignedPlaylists lists the playlists of the trainee's assigned trainer.
func (s *TraineeService) AssignedPlaylists(ctx context.Context, traineeID string) ([]model.Playlist, error) {
	trainee, err := s.Profile(ctx, traineeID)
	if err != nil {
		return nil, err
	}
	if trainee.AssignedTrainerID == "" {
		return []model.Playlist{}, nil
	}
	return s.playlists.ListByTrainer(ctx, trainee.AssignedTrainerID)
}

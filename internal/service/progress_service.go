package service

import (
	"context"
	"errors"

	"github.com/kscst/vocational-training-backend/internal/model"
	"github.com/kscst/vocational-training-backend/internal/repository"
)

// ProgressService records completion events and derives completion state.
// Completion is never stored: the summary is recomputed from the progress
// ledger against the assigned trainer's current catalog on every call, so
// catalog edits retroactively change percentages.
type ProgressService struct {
	trainees  TraineeStore
	materials MaterialStore
	playlists PlaylistStore
	progress  ProgressStore
}

// NewProgressService creates a new ProgressService.
func NewProgressService(trainees TraineeStore, materials MaterialStore, playlists PlaylistStore, progress ProgressStore) *ProgressService {
	return &ProgressService{trainees: trainees, materials: materials, playlists: playlists, progress: progress}
}

// MarkMaterial records that the trainee finished a material belonging to
// their assigned trainer. Repeat calls return the original record.
func (s *ProgressService) MarkMaterial(ctx context.Context, traineeID, materialID string) (*model.Progress, error) {
	trainee, err := s.getTrainee(ctx, traineeID)
	if err != nil {
		return nil, err
	}

	material, err := s.materials.GetByID(ctx, materialID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if material.TrainerID != trainee.AssignedTrainerID {
		return nil, ErrNotFound
	}

	return s.record(ctx, traineeID, model.MaterialTarget(materialID))
}

// MarkVideo records that the trainee finished a video in one of their
// assigned trainer's playlists. The URL must match a video in the playlist
// exactly. Repeat calls return the original record.
func (s *ProgressService) MarkVideo(ctx context.Context, traineeID, playlistID, videoURL string) (*model.Progress, error) {
	trainee, err := s.getTrainee(ctx, traineeID)
	if err != nil {
		return nil, err
	}

	playlist, err := s.playlists.GetByID(ctx, playlistID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if playlist.TrainerID != trainee.AssignedTrainerID {
		return nil, ErrNotFound
	}
	if _, ok := playlist.FindVideo(videoURL); !ok {
		return nil, ErrNotFound
	}

	return s.record(ctx, traineeID, model.PlaylistVideoTarget(playlistID, videoURL))
}

// record inserts a progress row, treating a concurrent duplicate as success.
// The unique indexes on the progress table make the insert at most once; on
// a duplicate the existing row is fetched and returned.
func (s *ProgressService) record(ctx context.Context, traineeID string, target model.ProgressTarget) (*model.Progress, error) {
	existing, err := s.progress.GetByTarget(ctx, traineeID, target)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	p := &model.Progress{TraineeID: traineeID, Target: target}
	if err := s.progress.Create(ctx, p); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return s.progress.GetByTarget(ctx, traineeID, target)
		}
		return nil, err
	}
	return p, nil
}

// ListForTrainee returns the raw progress ledger for a trainee, oldest first.
func (s *ProgressService) ListForTrainee(ctx context.Context, traineeID string) ([]model.Progress, error) {
	if _, err := s.getTrainee(ctx, traineeID); err != nil {
		return nil, err
	}
	return s.progress.ListByTrainee(ctx, traineeID)
}

// Summary computes the trainee's completion state against the assigned
// trainer's current catalog. Ledger entries whose target no longer exists in
// the catalog are dropped from the resolved list and do not count toward the
// percentage. A trainee with no assigned trainer, or an assigned trainer with
// an empty catalog, reports zero totals and zero percent.
func (s *ProgressService) Summary(ctx context.Context, traineeID string) (*model.TraineeProgressSummary, error) {
	trainee, err := s.getTrainee(ctx, traineeID)
	if err != nil {
		return nil, err
	}
	return s.summarize(ctx, trainee)
}

// AllSummaries computes summaries for every approved trainee with an
// assigned trainer. Pending, rejected, and unassigned trainees are skipped.
func (s *ProgressService) AllSummaries(ctx context.Context, hasCertificate func(traineeID string) bool) ([]model.TraineeProgressSummary, error) {
	trainees, err := s.trainees.List(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]model.TraineeProgressSummary, 0, len(trainees))
	for i := range trainees {
		t := &trainees[i]
		if t.Status != model.StatusApproved || t.AssignedTrainerID == "" {
			continue
		}
		summary, err := s.summarize(ctx, t)
		if err != nil {
			return nil, err
		}
		if hasCertificate != nil {
			summary.HasCertificate = hasCertificate(t.ID)
		}
		summaries = append(summaries, *summary)
	}
	return summaries, nil
}

func (s *ProgressService) summarize(ctx context.Context, trainee *model.Trainee) (*model.TraineeProgressSummary, error) {
	summary := &model.TraineeProgressSummary{
		TraineeID:     trainee.ID,
		Username:      trainee.Username,
		Name:          trainee.Name,
		Skill:         trainee.Skill,
		ProgressItems: []model.ProgressItem{},
	}
	if trainee.AssignedTrainerID == "" {
		return summary, nil
	}

	materials, err := s.materials.ListByTrainer(ctx, trainee.AssignedTrainerID)
	if err != nil {
		return nil, err
	}
	playlists, err := s.playlists.ListByTrainer(ctx, trainee.AssignedTrainerID)
	if err != nil {
		return nil, err
	}

	materialByID := make(map[string]*model.TrainingMaterial, len(materials))
	for i := range materials {
		materialByID[materials[i].ID] = &materials[i]
	}
	playlistByID := make(map[string]*model.Playlist, len(playlists))
	total := len(materials)
	for i := range playlists {
		playlistByID[playlists[i].ID] = &playlists[i]
		total += playlists[i].VideoCount()
	}
	summary.TotalItems = total

	ledger, err := s.progress.ListByTrainee(ctx, trainee.ID)
	if err != nil {
		return nil, err
	}

	for _, p := range ledger {
		switch p.Target.Kind {
		case model.TargetMaterial:
			material, ok := materialByID[p.Target.MaterialID]
			if !ok {
				continue
			}
			summary.ProgressItems = append(summary.ProgressItems, model.ProgressItem{
				Type:        model.ProgressItemMaterial,
				Title:       material.Title,
				FileType:    material.FileType,
				CompletedAt: p.CompletedAt,
			})
		case model.TargetPlaylistVideo:
			playlist, ok := playlistByID[p.Target.PlaylistID]
			if !ok {
				continue
			}
			video, found := playlist.FindVideo(p.Target.VideoURL)
			if !found {
				continue
			}
			summary.ProgressItems = append(summary.ProgressItems, model.ProgressItem{
				Type:          model.ProgressItemVideo,
				Title:         video.Name,
				PlaylistTitle: playlist.Title,
				CompletedAt:   p.CompletedAt,
			})
		}
	}

	summary.CompletedItems = len(summary.ProgressItems)
	if summary.TotalItems > 0 {
		summary.CompletionPercentage = float64(summary.CompletedItems) / float64(summary.TotalItems) * 100
	}
	return summary, nil
}

func (s *ProgressService) getTrainee(ctx context.Context, traineeID string) (*model.Trainee, error) {
	trainee, err := s.trainees.GetByID(ctx, traineeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return trainee, nil
}

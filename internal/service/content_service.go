package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"time"

	"github.com/kscst/vocational-training-backend/internal/model"
	"github.com/kscst/vocational-training-backend/internal/repository"
	"github.com/rs/zerolog"
)

// Content MIME types accepted for material uploads.
var materialFileTypes = map[string]model.FileType{
	"application/pdf": model.FileTypePDF,
	"video/mp4":       model.FileTypeVideo,
}

// ContentService manages a trainer's training materials and playlists.
// Every lookup is scoped to the owning trainer; a material or playlist that
// belongs to someone else resolves to ErrNotFound rather than a distinct
// ownership error.
type ContentService struct {
	materials      MaterialStore
	playlists      PlaylistStore
	files          FileStore
	maxUploadBytes int64
	log            zerolog.Logger
}

// NewContentService creates a new ContentService.
func NewContentService(materials MaterialStore, playlists PlaylistStore, files FileStore, maxUploadBytes int64, log zerolog.Logger) *ContentService {
	return &ContentService{
		materials:      materials,
		playlists:      playlists,
		files:          files,
		maxUploadBytes: maxUploadBytes,
		log:            log,
	}
}

// ListMaterials returns the trainer's own materials.
func (s *ContentService) ListMaterials(ctx context.Context, trainerID string) ([]model.TrainingMaterial, error) {
	return s.materials.ListByTrainer(ctx, trainerID)
}

// GetMaterial returns a material owned by the trainer.
func (s *ContentService) GetMaterial(ctx context.Context, trainerID, materialID string) (*model.TrainingMaterial, error) {
	material, err := s.materials.GetByID(ctx, materialID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if material.TrainerID != trainerID {
		return nil, ErrNotFound
	}
	return material, nil
}

// UploadMaterial validates and stores an uploaded file, then records the
// material under the trainer.
func (s *ContentService) UploadMaterial(ctx context.Context, trainerID, title string, file multipart.File, header *multipart.FileHeader) (*model.TrainingMaterial, error) {
	fileType, relPath, err := s.saveUpload(file, header)
	if err != nil {
		return nil, err
	}

	material := &model.TrainingMaterial{
		TrainerID: trainerID,
		Title:     title,
		FileName:  header.Filename,
		FilePath:  relPath,
		FileType:  fileType,
	}
	if err := s.materials.Create(ctx, material); err != nil {
		if delErr := s.files.Delete(relPath); delErr != nil {
			s.log.Warn().Err(delErr).Str("path", relPath).Msg("orphaned upload cleanup failed")
		}
		return nil, err
	}
	return material, nil
}

// UpdateMaterial changes a material's title and optionally replaces its file.
// A nil header keeps the existing file.
func (s *ContentService) UpdateMaterial(ctx context.Context, trainerID, materialID, title string, file multipart.File, header *multipart.FileHeader) (*model.TrainingMaterial, error) {
	material, err := s.GetMaterial(ctx, trainerID, materialID)
	if err != nil {
		return nil, err
	}

	material.Title = title
	if header != nil {
		fileType, relPath, err := s.saveUpload(file, header)
		if err != nil {
			return nil, err
		}
		oldPath := material.FilePath
		material.FileName = header.Filename
		material.FilePath = relPath
		material.FileType = fileType
		if err := s.files.Delete(oldPath); err != nil {
			s.log.Warn().Err(err).Str("path", oldPath).Msg("stale upload cleanup failed")
		}
	}

	if err := s.materials.Update(ctx, material); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return material, nil
}

// DeleteMaterial removes a material and its file. Progress rows referencing
// the material cascade at the storage level.
func (s *ContentService) DeleteMaterial(ctx context.Context, trainerID, materialID string) error {
	material, err := s.GetMaterial(ctx, trainerID, materialID)
	if err != nil {
		return err
	}

	if err := s.files.Delete(material.FilePath); err != nil {
		s.log.Warn().Err(err).Str("path", material.FilePath).Msg("material file removal failed")
	}

	if err := s.materials.Delete(ctx, materialID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// ListPlaylists returns the trainer's own playlists.
func (s *ContentService) ListPlaylists(ctx context.Context, trainerID string) ([]model.Playlist, error) {
	return s.playlists.ListByTrainer(ctx, trainerID)
}

// GetPlaylist returns a playlist owned by the trainer.
func (s *ContentService) GetPlaylist(ctx context.Context, trainerID, playlistID string) (*model.Playlist, error) {
	playlist, err := s.playlists.GetByID(ctx, playlistID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if playlist.TrainerID != trainerID {
		return nil, ErrNotFound
	}
	return playlist, nil
}

// CreatePlaylist records a new playlist under the trainer.
func (s *ContentService) CreatePlaylist(ctx context.Context, trainerID string, req *model.SavePlaylistRequest) (*model.Playlist, error) {
	playlist := &model.Playlist{
		TrainerID: trainerID,
		Title:     req.Title,
		Skill:     req.Skill,
		Videos:    req.Videos,
	}
	if err := s.playlists.Create(ctx, playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

// UpdatePlaylist replaces a playlist's title, skill, and video list. Progress
// rows pointing at videos removed from the list are kept in storage and
// simply stop resolving.
func (s *ContentService) UpdatePlaylist(ctx context.Context, trainerID, playlistID string, req *model.SavePlaylistRequest) (*model.Playlist, error) {
	playlist, err := s.GetPlaylist(ctx, trainerID, playlistID)
	if err != nil {
		return nil, err
	}

	playlist.Title = req.Title
	playlist.Skill = req.Skill
	playlist.Videos = req.Videos
	if err := s.playlists.Update(ctx, playlist); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return playlist, nil
}

// DeletePlaylist removes a playlist. Progress rows for its videos are left in
// storage and stop resolving.
func (s *ContentService) DeletePlaylist(ctx context.Context, trainerID, playlistID string) error {
	if _, err := s.GetPlaylist(ctx, trainerID, playlistID); err != nil {
		return err
	}
	if err := s.playlists.Delete(ctx, playlistID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *ContentService) saveUpload(file multipart.File, header *multipart.FileHeader) (model.FileType, string, error) {
	contentType := header.Header.Get("Content-Type")
	fileType, ok := materialFileTypes[contentType]
	if !ok {
		return "", "", fmt.Errorf("%w: %s", ErrUnsupportedFileType, contentType)
	}
	if header.Size > s.maxUploadBytes {
		return "", "", fmt.Errorf("%w: %d bytes (max: %d)", ErrFileTooLarge, header.Size, s.maxUploadBytes)
	}

	relPath := fmt.Sprintf("%d_%s", time.Now().UnixMilli(), filepath.Base(header.Filename))
	if _, err := s.files.Save(relPath, file); err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return fileType, relPath, nil
}

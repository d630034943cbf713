package service

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kscst/vocational-training-backend/internal/model"
	"github.com/kscst/vocational-training-backend/internal/repository"
)

// In-memory stores standing in for the pgx repositories. They mirror the
// repository error contract: ErrNotFound for misses, ErrDuplicate where the
// schema carries a unique constraint.

type fakeTraineeStore struct {
	mu       sync.Mutex
	trainees map[string]model.Trainee
}

func newFakeTraineeStore() *fakeTraineeStore {
	return &fakeTraineeStore{trainees: make(map[string]model.Trainee)}
}

func (s *fakeTraineeStore) GetByID(_ context.Context, id string) (*model.Trainee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.trainees[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &t, nil
}

func (s *fakeTraineeStore) GetByUsername(_ context.Context, username string) (*model.Trainee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.trainees {
		if t.Username == username {
			return &t, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeTraineeStore) List(_ context.Context) ([]model.Trainee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Trainee, 0, len(s.trainees))
	for _, t := range s.trainees {
		out = append(out, t)
	}
	return out, nil
}

func (s *fakeTraineeStore) ListByTrainer(_ context.Context, trainerID string) ([]model.Trainee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.Trainee{}
	for _, t := range s.trainees {
		if t.AssignedTrainerID == trainerID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *fakeTraineeStore) Create(_ context.Context, t *model.Trainee) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.trainees {
		if existing.Username == t.Username {
			return repository.ErrDuplicate
		}
	}
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	s.trainees[t.ID] = *t
	return nil
}

func (s *fakeTraineeStore) Update(_ context.Context, t *model.Trainee) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.trainees[t.ID]; !ok {
		return repository.ErrNotFound
	}
	t.UpdatedAt = time.Now()
	s.trainees[t.ID] = *t
	return nil
}

func (s *fakeTraineeStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.trainees[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.trainees, id)
	return nil
}

type fakeTrainerStore struct {
	mu       sync.Mutex
	trainers map[string]model.Trainer
}

func newFakeTrainerStore() *fakeTrainerStore {
	return &fakeTrainerStore{trainers: make(map[string]model.Trainer)}
}

func (s *fakeTrainerStore) GetByID(_ context.Context, id string) (*model.Trainer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.trainers[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &t, nil
}

func (s *fakeTrainerStore) GetByUsername(_ context.Context, username string) (*model.Trainer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.trainers {
		if t.Username == username {
			return &t, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeTrainerStore) Exists(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.trainers[id]
	return ok, nil
}

func (s *fakeTrainerStore) List(_ context.Context) ([]model.Trainer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Trainer, 0, len(s.trainers))
	for _, t := range s.trainers {
		out = append(out, t)
	}
	return out, nil
}

func (s *fakeTrainerStore) ListByStatus(_ context.Context, status model.Status) ([]model.Trainer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.Trainer{}
	for _, t := range s.trainers {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *fakeTrainerStore) Create(_ context.Context, t *model.Trainer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.trainers {
		if existing.Username == t.Username {
			return repository.ErrDuplicate
		}
	}
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	s.trainers[t.ID] = *t
	return nil
}

func (s *fakeTrainerStore) Update(_ context.Context, t *model.Trainer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.trainers[t.ID]; !ok {
		return repository.ErrNotFound
	}
	t.UpdatedAt = time.Now()
	s.trainers[t.ID] = *t
	return nil
}

func (s *fakeTrainerStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.trainers[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.trainers, id)
	return nil
}

type fakeAdminStore struct {
	admins map[string]model.Admin // keyed by username
}

func newFakeAdminStore() *fakeAdminStore {
	return &fakeAdminStore{admins: make(map[string]model.Admin)}
}

func (s *fakeAdminStore) GetByUsername(_ context.Context, username string) (*model.Admin, error) {
	a, ok := s.admins[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &a, nil
}

type fakeMaterialStore struct {
	mu        sync.Mutex
	materials map[string]model.TrainingMaterial
}

func newFakeMaterialStore() *fakeMaterialStore {
	return &fakeMaterialStore{materials: make(map[string]model.TrainingMaterial)}
}

func (s *fakeMaterialStore) GetByID(_ context.Context, id string) (*model.TrainingMaterial, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.materials[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &m, nil
}

func (s *fakeMaterialStore) ListByTrainer(_ context.Context, trainerID string) ([]model.TrainingMaterial, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.TrainingMaterial{}
	for _, m := range s.materials {
		if m.TrainerID == trainerID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *fakeMaterialStore) Create(_ context.Context, m *model.TrainingMaterial) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	m.CreatedAt = time.Now()
	m.UpdatedAt = m.CreatedAt
	s.materials[m.ID] = *m
	return nil
}

func (s *fakeMaterialStore) Update(_ context.Context, m *model.TrainingMaterial) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.materials[m.ID]; !ok {
		return repository.ErrNotFound
	}
	m.UpdatedAt = time.Now()
	s.materials[m.ID] = *m
	return nil
}

func (s *fakeMaterialStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.materials[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.materials, id)
	return nil
}

type fakePlaylistStore struct {
	mu        sync.Mutex
	playlists map[string]model.Playlist
}

func newFakePlaylistStore() *fakePlaylistStore {
	return &fakePlaylistStore{playlists: make(map[string]model.Playlist)}
}

func (s *fakePlaylistStore) GetByID(_ context.Context, id string) (*model.Playlist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.playlists[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (s *fakePlaylistStore) ListByTrainer(_ context.Context, trainerID string) ([]model.Playlist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.Playlist{}
	for _, p := range s.playlists {
		if p.TrainerID == trainerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *fakePlaylistStore) Create(_ context.Context, p *model.Playlist) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	s.playlists[p.ID] = *p
	return nil
}

func (s *fakePlaylistStore) Update(_ context.Context, p *model.Playlist) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.playlists[p.ID]; !ok {
		return repository.ErrNotFound
	}
	p.UpdatedAt = time.Now()
	s.playlists[p.ID] = *p
	return nil
}

func (s *fakePlaylistStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.playlists[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.playlists, id)
	return nil
}

type fakeProgressStore struct {
	mu      sync.Mutex
	records []model.Progress
}

func newFakeProgressStore() *fakeProgressStore {
	return &fakeProgressStore{}
}

func targetKey(traineeID string, target model.ProgressTarget) string {
	if target.Kind == model.TargetMaterial {
		return fmt.Sprintf("%s|m|%s", traineeID, target.MaterialID)
	}
	return fmt.Sprintf("%s|v|%s|%s", traineeID, target.PlaylistID, target.VideoURL)
}

func (s *fakeProgressStore) Create(_ context.Context, p *model.Progress) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := targetKey(p.TraineeID, p.Target)
	for _, existing := range s.records {
		if targetKey(existing.TraineeID, existing.Target) == key {
			return repository.ErrDuplicate
		}
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.CompletedAt.IsZero() {
		p.CompletedAt = time.Now()
	}
	s.records = append(s.records, *p)
	return nil
}

func (s *fakeProgressStore) GetByTarget(_ context.Context, traineeID string, target model.ProgressTarget) (*model.Progress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := targetKey(traineeID, target)
	for _, p := range s.records {
		if targetKey(p.TraineeID, p.Target) == key {
			out := p
			return &out, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeProgressStore) ListByTrainee(_ context.Context, traineeID string) ([]model.Progress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.Progress{}
	for _, p := range s.records {
		if p.TraineeID == traineeID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeCertificateStore struct {
	mu    sync.Mutex
	certs map[string]model.Certificate // keyed by trainee ID
}

func newFakeCertificateStore() *fakeCertificateStore {
	return &fakeCertificateStore{certs: make(map[string]model.Certificate)}
}

func (s *fakeCertificateStore) GetByTrainee(_ context.Context, traineeID string) (*model.Certificate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.certs[traineeID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &c, nil
}

func (s *fakeCertificateStore) Create(_ context.Context, c *model.Certificate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.certs[c.TraineeID]; ok {
		return repository.ErrDuplicate
	}
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	s.certs[c.TraineeID] = *c
	return nil
}

// fakeFileStore records writes and deletions without touching disk.
type fakeFileStore struct {
	mu    sync.Mutex
	files map[string]bool
}

func newFakeFileStore() *fakeFileStore {
	return &fakeFileStore{files: make(map[string]bool)}
}

func (s *fakeFileStore) Save(relPath string, src io.Reader) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := io.Copy(io.Discard, src); err != nil {
		return "", err
	}
	s.files[relPath] = true
	return "/fake/" + relPath, nil
}

func (s *fakeFileStore) Delete(relPath string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.files, relPath)
	return nil
}

func (s *fakeFileStore) Exists(relPath string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.files[relPath]
}

func (s *fakeFileStore) AbsPath(relPath string) string {
	return "/fake/" + relPath
}

// fakeRenderer records render requests instead of producing PDFs.
type fakeRenderer struct {
	rendered []string
	fail     bool
}

func (r *fakeRenderer) Render(destPath string, _ CertificateData) error {
	if r.fail {
		return fmt.Errorf("render failed")
	}
	r.rendered = append(r.rendered, destPath)
	return nil
}

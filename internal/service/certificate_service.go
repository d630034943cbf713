package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"time"

	"github.com/kscst/vocational-training-backend/internal/model"
	"github.com/kscst/vocational-training-backend/internal/repository"
	"github.com/rs/zerolog"
)

// certificateDir is the subdirectory of the upload root holding rendered
// certificate documents.
const certificateDir = "certificates"

// CertificateService issues and serves completion certificates. A trainee
// gets at most one certificate, enforced both by a pre-check and by the
// unique constraint on the certificates table.
type CertificateService struct {
	trainees     TraineeStore
	certificates CertificateStore
	progress     *ProgressService
	renderer     CertificateRenderer
	files        FileStore
	log          zerolog.Logger
}

// NewCertificateService creates a new CertificateService.
func NewCertificateService(trainees TraineeStore, certificates CertificateStore, progress *ProgressService, renderer CertificateRenderer, files FileStore, log zerolog.Logger) *CertificateService {
	return &CertificateService{
		trainees:     trainees,
		certificates: certificates,
		progress:     progress,
		renderer:     renderer,
		files:        files,
		log:          log,
	}
}

// Issue renders and records a certificate for a trainee who has completed
// every item in their assigned trainer's catalog. The completion check is
// recomputed from the ledger at call time and must reach 100 percent within
// floating-point tolerance.
func (s *CertificateService) Issue(ctx context.Context, traineeID string) (*model.Certificate, error) {
	trainee, err := s.trainees.GetByID(ctx, traineeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if trainee.Status != model.StatusApproved || trainee.AssignedTrainerID == "" {
		return nil, ErrInvalidState
	}

	if _, err := s.certificates.GetByTrainee(ctx, traineeID); err == nil {
		return nil, ErrAlreadyIssued
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	summary, err := s.progress.Summary(ctx, traineeID)
	if err != nil {
		return nil, err
	}
	if summary.TotalItems == 0 || math.Abs(summary.CompletionPercentage-100.0) > 0.01 {
		return nil, ErrIncomplete
	}

	issuedAt := time.Now()
	fileName := fmt.Sprintf("certificate_%s_%d.pdf", traineeID, issuedAt.UnixMilli())
	destPath := s.files.AbsPath(filepath.Join(certificateDir, fileName))
	data := CertificateData{TraineeName: trainee.Name, Skill: trainee.Skill, IssuedAt: issuedAt}
	if err := s.renderer.Render(destPath, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	cert := &model.Certificate{TraineeID: traineeID, FileName: fileName, IssuedAt: issuedAt}
	if err := s.certificates.Create(ctx, cert); err != nil {
		if delErr := s.files.Delete(filepath.Join(certificateDir, fileName)); delErr != nil {
			s.log.Warn().Err(delErr).Str("file", fileName).Msg("orphaned certificate cleanup failed")
		}
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyIssued
		}
		return nil, err
	}
	return cert, nil
}

// GetForTrainee returns the trainee's certificate record, if issued.
func (s *CertificateService) GetForTrainee(ctx context.Context, traineeID string) (*model.Certificate, error) {
	cert, err := s.certificates.GetByTrainee(ctx, traineeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return cert, nil
}

// HasCertificate reports whether a certificate exists for the trainee.
// Lookup failures other than absence are treated as absence since this
// feeds a display flag only.
func (s *CertificateService) HasCertificate(ctx context.Context, traineeID string) bool {
	_, err := s.certificates.GetByTrainee(ctx, traineeID)
	return err == nil
}

// FilePath resolves a certificate file name to its on-disk path, or
// ErrNotFound when the file is missing.
func (s *CertificateService) FilePath(fileName string) (string, error) {
	relPath := filepath.Join(certificateDir, filepath.Base(fileName))
	if !s.files.Exists(relPath) {
		return "", ErrNotFound
	}
	return s.files.AbsPath(relPath), nil
}

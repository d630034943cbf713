package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kscst/vocational-training-backend/internal/model"
)

// CertificateRepository handles certificate records. A unique index on
// trainee_id enforces the at-most-once invariant at the storage level.
type CertificateRepository struct {
	pool *pgxpool.Pool
}

// NewCertificateRepository creates a new CertificateRepository.
func NewCertificateRepository(pool *pgxpool.Pool) *CertificateRepository {
	return &CertificateRepository{pool: pool}
}

// GetByTrainee retrieves the certificate issued to a trainee, if any.
func (r *CertificateRepository) GetByTrainee(ctx context.Context, traineeID string) (*model.Certificate, error) {
	c := &model.Certificate{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, trainee_id, file_name, issued_at
		 FROM certificates WHERE trainee_id = $1`, traineeID,
	).Scan(&c.ID, &c.TraineeID, &c.FileName, &c.IssuedAt)
	if err != nil {
		return nil, translateScanErr(err)
	}
	return c, nil
}

// Create inserts a certificate record. The caller's issuance time is stored
// as-is so it stays in step with the timestamp embedded in the file name. A
// concurrent duplicate issuance loses the race and surfaces as ErrDuplicate.
func (r *CertificateRepository) Create(ctx context.Context, c *model.Certificate) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.IssuedAt.IsZero() {
		c.IssuedAt = time.Now()
	}
	_, err := r.pool.Exec(ctx,
		`INSERT INTO certificates (id, trainee_id, file_name, issued_at)
		 VALUES ($1, $2, $3, $4)`,
		c.ID, c.TraineeID, c.FileName, c.IssuedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

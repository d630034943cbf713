package model

import "time"

// Certificate records a completion certificate issued to a trainee. At most
// one certificate exists per trainee, enforced by a unique index.
type Certificate struct {
	ID        string    `json:"id"`
	TraineeID string    `json:"trainee_id"`
	FileName  string    `json:"file_name"`
	IssuedAt  time.Time `json:"issued_at"`
}

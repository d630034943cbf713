package model

import "time"

// Trainee represents a trainee account. AssignedTrainerID is empty until an
// admin approves the trainee and binds them to a trainer.
type Trainee struct {
	ID                string    `json:"id"`
	Username          string    `json:"username"`
	PasswordHash      string    `json:"-"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	Skill             string    `json:"skill"`
	Location          string    `json:"location"`
	Status            Status    `json:"status"`
	AssignedTrainerID string    `json:"assigned_trainer_id,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// RegisterTraineeRequest is the payload for trainee self-registration.
type RegisterTraineeRequest struct {
	Username string `json:"username" binding:"required,min=2,max=100"`
	Password string `json:"password" binding:"required,min=6,max=128"`
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Phone    string `json:"phone" binding:"required,min=6,max=20"`
	Skill    string `json:"skill" binding:"required,min=2,max=100"`
	Location string `json:"location" binding:"required,min=2,max=100"`
}

// UpdateTraineeProfileRequest is the payload for trainee self-service edits.
// Credentials and status are not editable here.
type UpdateTraineeProfileRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Phone    string `json:"phone" binding:"required,min=6,max=20"`
	Skill    string `json:"skill" binding:"required,min=2,max=100"`
	Location string `json:"location" binding:"required,min=2,max=100"`
}

// ApproveTraineeRequest carries the trainer a trainee is bound to on approval.
type ApproveTraineeRequest struct {
	TrainerID string `json:"trainer_id" binding:"required,uuid"`
}

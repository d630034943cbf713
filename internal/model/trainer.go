package model

import "time"

// Trainer represents a trainer account. Trainers own training materials and
// playlists; trainees are bound to exactly one trainer on approval.
type Trainer struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Expertise    string    `json:"expertise"`
	Status       Status    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RegisterTrainerRequest is the payload for trainer self-registration.
type RegisterTrainerRequest struct {
	Username  string `json:"username" binding:"required,min=2,max=100"`
	Password  string `json:"password" binding:"required,min=6,max=128"`
	Name      string `json:"name" binding:"required,min=2,max=100"`
	Email     string `json:"email" binding:"required,email,max=255"`
	Phone     string `json:"phone" binding:"required,min=6,max=20"`
	Expertise string `json:"expertise" binding:"required,min=2,max=100"`
}

// UpdateTrainerProfileRequest is the payload for trainer self-service edits.
type UpdateTrainerProfileRequest struct {
	Name      string `json:"name" binding:"required,min=2,max=100"`
	Email     string `json:"email" binding:"required,email,max=255"`
	Phone     string `json:"phone" binding:"required,min=6,max=20"`
	Expertise string `json:"expertise" binding:"required,min=2,max=100"`
}

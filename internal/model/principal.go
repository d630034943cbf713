package model

// Role identifies the kind of authenticated principal.
type Role string

const (
	RoleTrainee Role = "TRAINEE"
	RoleTrainer Role = "TRAINER"
	RoleAdmin   Role = "ADMIN"
)

// Status is the approval state of a trainee or trainer account.
// Admins carry no status and are always usable.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// LoginRequest is the payload for authentication against any principal kind.
type LoginRequest struct {
	Username string `json:"username" binding:"required,min=2,max=100"`
	Password string `json:"password" binding:"required,min=4,max=128"`
}

// LoginResponse is returned after a successful login. Token is a JWT that may
// be used as a Bearer alternative to per-request Basic credentials.
type LoginResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
	Token    string `json:"token"`
}

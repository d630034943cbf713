package model

import "time"

// Display kinds for resolved progress items.
const (
	ProgressItemMaterial = "Material"
	ProgressItemVideo    = "Video"
)

// ProgressItem is a ledger record resolved against its target for display:
// a material joined on id, or a playlist video joined on exact url match.
type ProgressItem struct {
	Type          string    `json:"type"`
	Title         string    `json:"title"`
	FileType      FileType  `json:"file_type,omitempty"`
	PlaylistTitle string    `json:"playlist_title,omitempty"`
	CompletedAt   time.Time `json:"completed_at"`
}

// TraineeProgressSummary is the per-trainee output of the completion engine.
// CompletionPercentage is a raw float division result; callers must tolerate
// floating-point noise.
type TraineeProgressSummary struct {
	TraineeID            string         `json:"trainee_id"`
	Username             string         `json:"username"`
	Name                 string         `json:"name"`
	Skill                string         `json:"skill"`
	ProgressItems        []ProgressItem `json:"progress_items"`
	CompletedItems       int            `json:"completed_items"`
	TotalItems           int            `json:"total_items"`
	CompletionPercentage float64        `json:"completion_percentage"`
	HasCertificate       bool           `json:"has_certificate"`
}

package model

import "time"

// FileType tags the kind of an uploaded training material, derived from the
// upload content type (application/pdf or video/mp4).
type FileType string

const (
	FileTypePDF   FileType = "PDF"
	FileTypeVideo FileType = "Video"
)

// TrainingMaterial is a single uploaded file owned by exactly one trainer.
// It is visible to trainees whose assigned trainer is the owner.
type TrainingMaterial struct {
	ID        string    `json:"id"`
	TrainerID string    `json:"trainer_id"`
	Title     string    `json:"title"`
	FileName  string    `json:"file_name"`
	FilePath  string    `json:"file_path"`
	FileType  FileType  `json:"file_type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package model

import (
	"encoding/json"
	"time"
)

// TargetKind discriminates the two kinds of progress target.
type TargetKind string

const (
	TargetMaterial      TargetKind = "MATERIAL"
	TargetPlaylistVideo TargetKind = "PLAYLIST_VIDEO"
)

// ProgressTarget is the discriminated target of a progress record: either a
// training material or a single video inside a playlist, never both.
type ProgressTarget struct {
	Kind       TargetKind
	MaterialID string
	PlaylistID string
	VideoURL   string
}

// MaterialTarget builds a target referencing a training material.
func MaterialTarget(materialID string) ProgressTarget {
	return ProgressTarget{Kind: TargetMaterial, MaterialID: materialID}
}

// PlaylistVideoTarget builds a target referencing one video of a playlist.
func PlaylistVideoTarget(playlistID, videoURL string) ProgressTarget {
	return ProgressTarget{Kind: TargetPlaylistVideo, PlaylistID: playlistID, VideoURL: videoURL}
}

// Progress is an append-only record of a trainee completing one target.
// Records are created at most once per (trainee, target) pair.
type Progress struct {
	ID          string
	TraineeID   string
	Target      ProgressTarget
	CompletedAt time.Time
}

// progressJSON is the wire shape of a progress record. The union is flattened
// into nullable fields for the frontend; exactly one arm is ever populated.
type progressJSON struct {
	ID          string    `json:"id"`
	TraineeID   string    `json:"trainee_id"`
	MaterialID  string    `json:"material_id,omitempty"`
	PlaylistID  string    `json:"playlist_id,omitempty"`
	VideoURL    string    `json:"video_url,omitempty"`
	CompletedAt time.Time `json:"completed_at"`
}

// MarshalJSON flattens the target union into the wire shape.
func (p Progress) MarshalJSON() ([]byte, error) {
	return json.Marshal(progressJSON{
		ID:          p.ID,
		TraineeID:   p.TraineeID,
		MaterialID:  p.Target.MaterialID,
		PlaylistID:  p.Target.PlaylistID,
		VideoURL:    p.Target.VideoURL,
		CompletedAt: p.CompletedAt,
	})
}

// MarkMaterialProgressRequest is the payload for completing a material.
type MarkMaterialProgressRequest struct {
	MaterialID string `json:"material_id" binding:"required,uuid"`
}

// MarkVideoProgressRequest is the payload for completing a playlist video.
type MarkVideoProgressRequest struct {
	PlaylistID string `json:"playlist_id" binding:"required,uuid"`
	VideoURL   string `json:"video_url" binding:"required,url,max=2048"`
}

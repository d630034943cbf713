package model

import "time"

// Video is an entry in a playlist. The url is the video's identity within the
// playlist and the matching key for progress records.
type Video struct {
	Name string `json:"name" binding:"required,min=1,max=200"`
	URL  string `json:"url" binding:"required,url,max=2048"`
}

// Playlist is an ordered, named sequence of video references owned by one
// trainer.
type Playlist struct {
	ID        string    `json:"id"`
	TrainerID string    `json:"trainer_id"`
	Title     string    `json:"title"`
	Skill     string    `json:"skill"`
	Videos    []Video   `json:"videos"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// VideoCount returns the number of videos in the playlist.
func (p *Playlist) VideoCount() int {
	return len(p.Videos)
}

// FindVideo returns the video with the given url, or false when absent.
func (p *Playlist) FindVideo(url string) (Video, bool) {
	for _, v := range p.Videos {
		if v.URL == url {
			return v, true
		}
	}
	return Video{}, false
}

// SavePlaylistRequest is the payload for creating or updating a playlist.
type SavePlaylistRequest struct {
	Title  string  `json:"title" binding:"required,min=1,max=200"`
	Skill  string  `json:"skill" binding:"required,min=2,max=100"`
	Videos []Video `json:"videos" binding:"required,dive"`
}

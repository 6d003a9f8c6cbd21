package models

import "time"

// PosterJob tracks one async generation request through the queue.
type PosterJob struct {
	ID        string        `json:"id"`
	Request   PosterRequest `json:"request"`
	Status    string        `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	Result    *PosterResult `json:"result,omitempty"`
	Error     string        `json:"error,omitempty"`
}

type PosterResult struct {
	Filename    string    `json:"filename"`
	City        string    `json:"city"`
	Country     string    `json:"country"`
	Theme       string    `json:"theme"`
	FileSize    int64     `json:"file_size"`
	StorageURL  string    `json:"storage_url,omitempty"`
	GeneratedAt time.Time `json:"generated_at"`
}

const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

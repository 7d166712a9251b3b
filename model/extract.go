package model

import "time"

// ExtractRequest asks for a full extraction run: video details plus all
// comments, optionally filtered by publish date. Dates are calendar
// days in YYYY-MM-DD form; an empty date leaves that bound open.
type ExtractRequest struct {
	VideoID   string `json:"video_id"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// ExtractResult reports the outcome of an extraction run. Truncated
// names the soft condition that cut comment pagination short, if any;
// a run with partial comments is still a success.
type ExtractResult struct {
	RequestID    string    `json:"request_id"`
	VideoID      string    `json:"video_id"`
	Success      bool      `json:"success"`
	CommentCount int       `json:"comment_count"`
	Truncated    string    `json:"truncated,omitempty"`
	Warnings     int       `json:"warnings"`
	Files        []string  `json:"files,omitempty"`
	Error        string    `json:"error,omitempty"`
	ProcessedAt  time.Time `json:"processed_at"`
}

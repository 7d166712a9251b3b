package model

type YoutubeVideoID string

// UnknownAuthor is used when the provider does not return a display
// name for a comment.
const UnknownAuthor = "Unknown Author"

// CommentRecord is one normalized top-level comment. Every field is
// always set; defaults are applied during normalization so consumers
// never have to check for absent values.
type CommentRecord struct {
	CommentID   string `json:"comment_id"`
	Author      string `json:"author"`
	PublishedAt string `json:"published_at"`
	UpdatedAt   string `json:"updated_at"`
	CommentText string `json:"comment_text"`
	LikeCount   int64  `json:"like_count"`
}

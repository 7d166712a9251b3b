package model

// NotAvailable is the sentinel for statistics the uploader has hidden.
const NotAvailable = "N/A"

// VideoSummary holds the details of a single video. Views and Likes are
// kept as the provider's decimal strings, or NotAvailable.
type VideoSummary struct {
	VideoID YoutubeVideoID `json:"video_id"`
	Title   string         `json:"title"`
	Views   string         `json:"views"`
	Likes   string         `json:"likes"`
}

// SearchResult is one hit of a video search.
type SearchResult struct {
	VideoID   YoutubeVideoID `json:"video_id"`
	Title     string         `json:"title"`
	Channel   string         `json:"channel"`
	Thumbnail string         `json:"thumbnail"`
}

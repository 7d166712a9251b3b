package fetcher

import (
	"context"

	"ytscope/model"
)

// CommentPage is one page of normalized top-level comments together
// with the cursor for the next page. An empty NextPageToken means the
// source is exhausted.
type CommentPage struct {
	Records       []model.CommentRecord
	NextPageToken string
}

type CommentSource interface {
	CommentPage(ctx context.Context, videoID model.YoutubeVideoID, pageToken string) (CommentPage, error)
}

type DetailsFetcher interface {
	VideoSummary(ctx context.Context, videoID model.YoutubeVideoID) (model.VideoSummary, error)
}

type Searcher interface {
	Search(ctx context.Context, query string, maxResults int64) ([]model.SearchResult, error)
}

package fetcher

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/youtube/v3"

	"ytscope/model"
)

// commentPageSize is the provider's documented per-page ceiling.
const commentPageSize = 100

const reasonCommentsDisabled = "commentsDisabled"

// ErrVideoNotFound is returned when the video itself cannot be
// resolved. It is the only hard failure in the fetch pipeline.
var ErrVideoNotFound = errors.New("video not found or access restricted")

type Youtube struct {
	Client *youtube.Service
}

func NewYoutube(client *youtube.Service) *Youtube {
	return &Youtube{Client: client}
}

func (y *Youtube) VideoSummary(ctx context.Context, videoID model.YoutubeVideoID) (model.VideoSummary, error) {
	call := y.Client.Videos.
		List([]string{"snippet", "statistics"}).
		Id(string(videoID)).
		Context(ctx)

	response, err := call.Do()
	if err != nil {
		return model.VideoSummary{}, fmt.Errorf("failed to fetch video details: %w", err)
	}
	if len(response.Items) == 0 {
		return model.VideoSummary{}, fmt.Errorf("%w: %s", ErrVideoNotFound, videoID)
	}

	item := response.Items[0]
	summary := model.VideoSummary{
		VideoID: videoID,
		Views:   model.NotAvailable,
		Likes:   model.NotAvailable,
	}
	if item.Snippet != nil {
		summary.Title = item.Snippet.Title
	}
	if item.Statistics != nil {
		summary.Views = strconv.FormatUint(item.Statistics.ViewCount, 10)
		summary.Likes = strconv.FormatUint(item.Statistics.LikeCount, 10)
	}

	return summary, nil
}

func (y *Youtube) CommentPage(ctx context.Context, videoID model.YoutubeVideoID, pageToken string) (CommentPage, error) {
	call := y.Client.CommentThreads.
		List([]string{"snippet"}).
		VideoId(string(videoID)).
		MaxResults(commentPageSize).
		TextFormat("plainText").
		Context(ctx)
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}

	response, err := call.Do()
	if err != nil {
		return CommentPage{}, err
	}

	page := CommentPage{
		Records:       make([]model.CommentRecord, 0, len(response.Items)),
		NextPageToken: response.NextPageToken,
	}
	for _, item := range response.Items {
		page.Records = append(page.Records, RecordFromThread(item))
	}

	return page, nil
}

func (y *Youtube) Search(ctx context.Context, query string, maxResults int64) ([]model.SearchResult, error) {
	call := y.Client.Search.
		List([]string{"snippet"}).
		Q(query).
		Type("video").
		MaxResults(maxResults).
		Context(ctx)

	response, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("failed to search videos: %w", err)
	}

	results := make([]model.SearchResult, 0, len(response.Items))
	for _, item := range response.Items {
		result := model.SearchResult{}
		if item.Id != nil {
			result.VideoID = model.YoutubeVideoID(item.Id.VideoId)
		}
		if item.Snippet != nil {
			result.Title = item.Snippet.Title
			result.Channel = item.Snippet.ChannelTitle
			if item.Snippet.Thumbnails != nil && item.Snippet.Thumbnails.Default != nil {
				result.Thumbnail = item.Snippet.Thumbnails.Default.Url
			}
		}
		results = append(results, result)
	}

	return results, nil
}

// IsCommentsDisabled reports whether err is the provider's named
// "comments are disabled for this video" condition.
func IsCommentsDisabled(err error) bool {
	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return false
	}
	for _, item := range gerr.Errors {
		if item.Reason == reasonCommentsDisabled {
			return true
		}
	}

	return false
}

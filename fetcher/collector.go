package fetcher

import (
	"context"

	"golang.org/x/exp/slog"
	"golang.org/x/time/rate"

	"ytscope/metrics"
	"ytscope/model"
)

type TruncationReason string

const (
	TruncationCommentsDisabled TruncationReason = "comments_disabled"
	TruncationProviderError    TruncationReason = "provider_error"
)

// Truncation describes why comment pagination stopped early. It is
// reported next to the records collected so far, never instead of them.
type Truncation struct {
	Reason  TruncationReason
	Message string
}

// Collector drives full pagination of a comment source. A nil limiter
// means pages are fetched back to back.
type Collector struct {
	source  CommentSource
	limiter *rate.Limiter
	logger  *slog.Logger
}

func NewCollector(source CommentSource, limiter *rate.Limiter, logger *slog.Logger) *Collector {
	return &Collector{
		source:  source,
		limiter: limiter,
		logger:  logger,
	}
}

// Pages returns a fresh iterator over the comment pages of a video.
// Each call starts pagination from the beginning.
func (c *Collector) Pages(videoID model.YoutubeVideoID) *PageIterator {
	return &PageIterator{
		collector: c,
		videoID:   videoID,
	}
}

// Collect drains all pages into a single slice. Page order and
// within-page order are both preserved; nothing is reordered or
// deduplicated. The returned Truncation is nil when the source was
// fully exhausted.
func (c *Collector) Collect(ctx context.Context, videoID model.YoutubeVideoID) ([]model.CommentRecord, *Truncation) {
	records := []model.CommentRecord{}
	pages := c.Pages(videoID)
	pageCount := 0
	for {
		page, ok := pages.Next(ctx)
		if !ok {
			break
		}
		pageCount++
		records = append(records, page...)
	}

	c.logger.Info("collected comments",
		slog.String("videoid", string(videoID)),
		slog.Int("pages", pageCount),
		slog.Int("count", len(records)))
	metrics.CommentsCollected.Add(float64(len(records)))

	return records, pages.Truncated()
}

// PageIterator pulls one comment page per Next call, so callers can
// consume a large video incrementally. Each Next is a natural
// cancellation checkpoint through its context.
type PageIterator struct {
	collector *Collector
	videoID   model.YoutubeVideoID
	pageToken string
	done      bool
	truncated *Truncation
}

// Next fetches the next page. It returns false when the source is
// exhausted or pagination was cut short; Truncated tells the two apart.
func (it *PageIterator) Next(ctx context.Context) ([]model.CommentRecord, bool) {
	if it.done {
		return nil, false
	}

	c := it.collector
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			it.done = true
			it.truncated = &Truncation{Reason: TruncationProviderError, Message: err.Error()}
			return nil, false
		}
	}

	page, err := c.source.CommentPage(ctx, it.videoID, it.pageToken)
	if err != nil {
		it.done = true
		metrics.CommentPagesFetched.WithLabelValues("error").Inc()
		if IsCommentsDisabled(err) {
			it.truncated = &Truncation{
				Reason:  TruncationCommentsDisabled,
				Message: "comments are disabled for this video",
			}
			c.logger.Info("comments are disabled", slog.String("videoid", string(it.videoID)))
		} else {
			it.truncated = &Truncation{
				Reason:  TruncationProviderError,
				Message: err.Error(),
			}
			c.logger.Error("failed to fetch comment page", err, slog.String("videoid", string(it.videoID)))
		}
		return nil, false
	}

	metrics.CommentPagesFetched.WithLabelValues("ok").Inc()
	it.pageToken = page.NextPageToken
	if it.pageToken == "" {
		it.done = true
	}

	return page.Records, true
}

// Truncated returns the soft condition that ended pagination early, or
// nil after a complete run.
func (it *PageIterator) Truncated() *Truncation {
	return it.truncated
}

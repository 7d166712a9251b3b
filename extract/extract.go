package extract

import (
	"context"
	"time"

	"golang.org/x/exp/slog"

	"ytscope/export"
	"ytscope/fetcher"
	"ytscope/filter"
	"ytscope/metrics"
	"ytscope/model"
)

// Pipeline runs a full extraction: video details, complete comment
// pagination, optional date filtering, flat-file output.
type Pipeline struct {
	details   fetcher.DetailsFetcher
	collector *fetcher.Collector
	exporter  *export.Exporter
	logger    *slog.Logger
}

func NewPipeline(details fetcher.DetailsFetcher, collector *fetcher.Collector, exporter *export.Exporter, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		details:   details,
		collector: collector,
		exporter:  exporter,
		logger:    logger,
	}
}

// Run executes one extraction request. A video that cannot be resolved
// is the only hard failure and produces no files. Comment trouble only
// truncates: whatever was collected before the condition is still
// filtered and written.
func (p *Pipeline) Run(ctx context.Context, req model.ExtractRequest) model.ExtractResult {
	started := time.Now()
	result := model.ExtractResult{
		RequestID:   req.RequestID,
		VideoID:     req.VideoID,
		ProcessedAt: started,
	}

	start, err := filter.ParseDate(req.StartDate)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	end, err := filter.ParseDate(req.EndDate)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	videoID := model.YoutubeVideoID(req.VideoID)
	summary, err := p.details.VideoSummary(ctx, videoID)
	if err != nil {
		p.logger.Error("failed to fetch video details", err, slog.String("videoid", req.VideoID))
		result.Error = err.Error()
		return result
	}

	records, truncated := p.collector.Collect(ctx, videoID)
	if truncated != nil {
		p.logger.Warn("comment pagination truncated",
			slog.String("videoid", req.VideoID),
			slog.String("reason", string(truncated.Reason)),
			slog.String("message", truncated.Message))
		result.Truncated = string(truncated.Reason)
	}

	filtered, warnings := filter.ByDate(records, start, end)
	for _, warning := range warnings {
		p.logger.Warn("dropped comment with bad timestamp",
			slog.String("commentid", warning.CommentID),
			slog.String("err", warning.Err.Error()))
	}
	result.Warnings = len(warnings)

	statsPath, err := p.exporter.WriteStats(summary)
	if err != nil {
		p.logger.Error("failed to write stats", err)
		result.Error = err.Error()
		return result
	}
	commentsPath, err := p.exporter.WriteComments(filtered)
	if err != nil {
		p.logger.Error("failed to write comments", err)
		result.Error = err.Error()
		return result
	}

	result.Success = true
	result.CommentCount = len(filtered)
	result.Files = []string{statsPath, commentsPath}
	metrics.ExtractDuration.Observe(time.Since(started).Seconds())
	p.logger.Info("extraction finished",
		slog.String("videoid", req.VideoID),
		slog.Int("comments", result.CommentCount),
		slog.Int("warnings", result.Warnings))

	return result
}

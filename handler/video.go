package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/exp/slog"

	"ytscope/cache"
	"ytscope/fetcher"
	"ytscope/filter"
	"ytscope/model"
)

// collected is a finished pagination run, cached per video so UI
// callers can re-filter without hitting the provider again.
type collected struct {
	records   []model.CommentRecord
	truncated *fetcher.Truncation
}

type VideoAPI struct {
	details     fetcher.DetailsFetcher
	collector   *fetcher.Collector
	summaries   *cache.Store[model.VideoSummary]
	collections *cache.Store[collected]
	logger      *slog.Logger
}

func NewVideoAPI(details fetcher.DetailsFetcher, collector *fetcher.Collector, ttl time.Duration, logger *slog.Logger) *VideoAPI {
	return &VideoAPI{
		details:     details,
		collector:   collector,
		summaries:   cache.New[model.VideoSummary](ttl),
		collections: cache.New[collected](ttl),
		logger:      logger,
	}
}

func (api *VideoAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	videoID, tail := ShiftPath(r.URL.Path)
	sub, _ := ShiftPath(tail)

	switch {
	case r.Method == http.MethodGet && videoID != "" && sub == "":
		api.Summary(w, r, model.YoutubeVideoID(videoID))
	case r.Method == http.MethodGet && videoID != "" && sub == "comments":
		api.Comments(w, r, model.YoutubeVideoID(videoID))
	default:
		Error(w, http.StatusNotFound, "not found", fmt.Errorf("method %s with path %q was not registered in the video api", r.Method, r.URL.Path))
	}
}

func (api *VideoAPI) Summary(w http.ResponseWriter, r *http.Request, videoID model.YoutubeVideoID) {
	key := cache.Key("summary", string(videoID))
	summary, ok := api.summaries.Get(key)
	if !ok {
		var err error
		summary, err = api.details.VideoSummary(r.Context(), videoID)
		switch {
		case errors.Is(err, fetcher.ErrVideoNotFound):
			Error(w, http.StatusNotFound, "video not found", err)
			return
		case err != nil:
			api.returnErr(w, http.StatusInternalServerError, "could not fetch video details", err)
			return
		}
		api.summaries.Set(key, summary)
	}

	writeJSON(w, api.logger, summary)
}

type commentsResponse struct {
	VideoID   string                `json:"video_id"`
	Count     int                   `json:"count"`
	Comments  []model.CommentRecord `json:"comments"`
	Truncated *truncationResponse   `json:"truncated,omitempty"`
	Warnings  []string              `json:"warnings,omitempty"`
}

type truncationResponse struct {
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

func (api *VideoAPI) Comments(w http.ResponseWriter, r *http.Request, videoID model.YoutubeVideoID) {
	query := r.URL.Query()
	start, err := filter.ParseDate(query.Get("start"))
	if err != nil {
		Error(w, http.StatusBadRequest, "invalid start date", err)
		return
	}
	end, err := filter.ParseDate(query.Get("end"))
	if err != nil {
		Error(w, http.StatusBadRequest, "invalid end date", err)
		return
	}

	// the pagination run is cached per video; the date filter is cheap
	// and applied per request
	key := cache.Key("comments", string(videoID))
	run, ok := api.collections.Get(key)
	if !ok {
		records, truncated := api.collector.Collect(r.Context(), videoID)
		run = collected{records: records, truncated: truncated}
		api.collections.Set(key, run)
	}

	filtered, warnings := filter.ByDate(run.records, start, end)
	response := commentsResponse{
		VideoID:  string(videoID),
		Count:    len(filtered),
		Comments: filtered,
	}
	if run.truncated != nil {
		response.Truncated = &truncationResponse{
			Reason:  string(run.truncated.Reason),
			Message: run.truncated.Message,
		}
	}
	for _, warning := range warnings {
		response.Warnings = append(response.Warnings, warning.String())
	}

	writeJSON(w, api.logger, response)
}

func (api *VideoAPI) returnErr(w http.ResponseWriter, status int, message string, err error, details ...any) {
	api.logger.Error(message, err, slog.String("details", fmt.Sprintf("%+v", details)))
	Error(w, status, message, err, details...)
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, body any) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		logger.Error("could not marshal response", err)
		Error(w, http.StatusInternalServerError, "could not marshal response", err)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write(jsonBody)
}

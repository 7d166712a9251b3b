package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/exp/slog"

	"ytscope/cache"
	"ytscope/fetcher"
	"ytscope/model"
)

const defaultSearchResults = 10

type SearchAPI struct {
	searcher fetcher.Searcher
	results  *cache.Store[[]model.SearchResult]
	logger   *slog.Logger
}

func NewSearchAPI(searcher fetcher.Searcher, ttl time.Duration, logger *slog.Logger) *SearchAPI {
	return &SearchAPI{
		searcher: searcher,
		results:  cache.New[[]model.SearchResult](ttl),
		logger:   logger,
	}
}

func (api *SearchAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		Error(w, http.StatusNotFound, "not found", fmt.Errorf("method %s was not registered in the search api", r.Method))
		return
	}

	query := r.URL.Query().Get("q")
	if query == "" {
		Error(w, http.StatusBadRequest, "missing query", fmt.Errorf("parameter q is required"))
		return
	}
	maxResults := int64(defaultSearchResults)
	if raw := r.URL.Query().Get("max"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 1 {
			Error(w, http.StatusBadRequest, "invalid max", fmt.Errorf("parameter max must be a positive integer"))
			return
		}
		maxResults = parsed
	}

	key := cache.Key("search", query, strconv.FormatInt(maxResults, 10))
	results, ok := api.results.Get(key)
	if !ok {
		var err error
		results, err = api.searcher.Search(r.Context(), query, maxResults)
		if err != nil {
			api.logger.Error("could not search videos", err, slog.String("query", query))
			Error(w, http.StatusInternalServerError, "could not search videos", err)
			return
		}
		api.results.Set(key, results)
	}

	writeJSON(w, api.logger, struct {
		Query   string               `json:"query"`
		Results []model.SearchResult `json:"results"`
	}{
		Query:   query,
		Results: results,
	})
}

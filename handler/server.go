package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"path"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/exp/slog"

	"ytscope/config"
	"ytscope/fetcher"
	"ytscope/metrics"
)

type Server struct {
	apis    map[string]http.Handler
	metrics http.Handler
	logger  *slog.Logger
}

func NewServer(details fetcher.DetailsFetcher, collector *fetcher.Collector, searcher fetcher.Searcher, cfg *config.Config, logger *slog.Logger) *Server {
	return &Server{
		apis: map[string]http.Handler{
			"video":  NewVideoAPI(details, collector, cfg.CacheTTL, logger),
			"search": NewSearchAPI(searcher, cfg.SearchCacheTTL, logger),
		},
		metrics: promhttp.Handler(),
		logger:  logger,
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	originalPath := r.URL.Path
	requestID := uuid.New().String()

	head, tail := ShiftPath(r.URL.Path)
	if head == "metrics" {
		s.metrics.ServeHTTP(w, r)
		return
	}

	rec := httptest.NewRecorder() // records the response to be able to mix writing headers and content
	w.Header().Add("Content-Type", "application/json")

	switch {
	case len(head) == 0:
		Index(rec)
	default:
		api, ok := s.apis[head]
		if !ok {
			Error(rec, http.StatusNotFound, "not found", fmt.Errorf("%s is not a valid path", originalPath))
		} else {
			r.URL.Path = tail
			api.ServeHTTP(rec, r)
		}
	}

	returnResponse(w, rec)
	metrics.HttpRequestsTotal.WithLabelValues(head, strconv.Itoa(rec.Code)).Inc()
	s.logger.Info("request served",
		slog.String("requestid", requestID),
		slog.String("path", originalPath),
		slog.Int("status", rec.Code))
}

func returnResponse(w http.ResponseWriter, rec *httptest.ResponseRecorder) {
	w.WriteHeader(rec.Code)
	for k, v := range rec.Header() {
		w.Header()[k] = v
	}
	w.Write(rec.Body.Bytes())
}

// ShiftPath splits off the first component of p, which will be cleaned
// of relative components before processing. head will never contain a
// slash and tail will always be a rooted path without trailing slash.
func ShiftPath(p string) (string, string) {
	p = path.Clean("/" + p)

	i := strings.Index(p[1:], "/") + 1
	if i <= 0 {
		return p[1:], "/"
	}

	return p[1:i], p[i:]
}

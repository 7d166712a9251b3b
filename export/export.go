package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/exp/slog"

	"ytscope/model"
)

const (
	StatsFileName    = "video_stats.txt"
	CommentsFileName = "comments.json"
)

// Exporter writes extraction results as flat files into a single
// output directory. Files are replaced on every run.
type Exporter struct {
	dir    string
	logger *slog.Logger
}

func NewExporter(dir string, logger *slog.Logger) (*Exporter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %q: %w", dir, err)
	}

	return &Exporter{
		dir:    dir,
		logger: logger,
	}, nil
}

// WriteStats writes the line-oriented video summary.
func (e *Exporter) WriteStats(summary model.VideoSummary) (string, error) {
	path := filepath.Join(e.dir, StatsFileName)
	body := fmt.Sprintf("Video Title: %s\nVideo ID: %s\nViews: %s\nLikes: %s\n",
		summary.Title, summary.VideoID, summary.Views, summary.Likes)
	if err := writeFileReplace(path, []byte(body)); err != nil {
		return "", fmt.Errorf("failed to write stats file: %w", err)
	}
	e.logger.Info("wrote video stats", slog.String("path", path))

	return path, nil
}

// WriteComments writes the records as a JSON array, four-space
// indented, with non-ASCII text kept literal. A nil or empty slice
// still produces a file holding an empty array, so a video with
// disabled comments leaves a well-formed output behind.
func (e *Exporter) WriteComments(records []model.CommentRecord) (string, error) {
	if records == nil {
		records = []model.CommentRecord{}
	}
	path := filepath.Join(e.dir, CommentsFileName)

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(records); err != nil {
		return "", fmt.Errorf("failed to serialize comments: %w", err)
	}
	if err := writeFileReplace(path, buf.Bytes()); err != nil {
		return "", fmt.Errorf("failed to write comments file: %w", err)
	}
	e.logger.Info("wrote comments", slog.String("path", path), slog.Int("count", len(records)))

	return path, nil
}

// writeFileReplace writes through a temp file and a rename, so a reader
// never sees a half-written file.
func writeFileReplace(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), path)
}

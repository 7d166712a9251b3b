package export

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/exp/slog"

	"ytscope/model"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard))
}

func TestWriteStats(t *testing.T) {
	dir := t.TempDir()
	exporter, err := NewExporter(dir, testLogger())
	if err != nil {
		t.Fatal(err)
	}

	path, err := exporter.WriteStats(model.VideoSummary{
		VideoID: "vid-1",
		Title:   "Some Trailer",
		Views:   "123456",
		Likes:   model.NotAvailable,
	})
	if err != nil {
		t.Fatal(err)
	}
	if path != filepath.Join(dir, StatsFileName) {
		t.Errorf("got path %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "Video Title: Some Trailer\nVideo ID: vid-1\nViews: 123456\nLikes: N/A\n"
	if string(data) != want {
		t.Errorf("got:\n%s\nwant:\n%s", data, want)
	}
}

func TestWriteComments(t *testing.T) {
	dir := t.TempDir()
	exporter, err := NewExporter(dir, testLogger())
	if err != nil {
		t.Fatal(err)
	}

	records := []model.CommentRecord{
		{
			CommentID:   "c1",
			Author:      "café visitor",
			PublishedAt: "2024-03-15T12:00:00Z",
			CommentText: "良い動画 <3",
			LikeCount:   2,
		},
	}

	path, err := exporter.WriteComments(records)
	if err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	body := string(data)

	// non-ASCII stays literal and html escaping is off
	if !strings.Contains(body, "café visitor") {
		t.Errorf("author was escaped: %s", body)
	}
	if !strings.Contains(body, "良い動画 <3") {
		t.Errorf("text was escaped: %s", body)
	}
	if !strings.Contains(body, "    \"comment_id\"") {
		t.Errorf("expected four-space indentation: %s", body)
	}

	var got []model.CommentRecord
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("output is not valid json: %v", err)
	}
	if len(got) != 1 || got[0] != records[0] {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestWriteCommentsEmpty(t *testing.T) {
	dir := t.TempDir()
	exporter, err := NewExporter(dir, testLogger())
	if err != nil {
		t.Fatal(err)
	}

	for _, records := range [][]model.CommentRecord{nil, {}} {
		path, err := exporter.WriteComments(records)
		if err != nil {
			t.Fatal(err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if strings.TrimSpace(string(data)) != "[]" {
			t.Errorf("got %q, want an empty array", data)
		}
	}
}

func TestWriteReplacesPreviousRun(t *testing.T) {
	dir := t.TempDir()
	exporter, err := NewExporter(dir, testLogger())
	if err != nil {
		t.Fatal(err)
	}

	if _, err := exporter.WriteComments([]model.CommentRecord{{CommentID: "old"}}); err != nil {
		t.Fatal(err)
	}
	path, err := exporter.WriteComments([]model.CommentRecord{{CommentID: "new"}})
	if err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "old") {
		t.Errorf("previous run still present: %s", data)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected a single output file, got %d entries", len(entries))
	}
}

package fetcher

import (
	"testing"

	"google.golang.org/api/youtube/v3"

	"ytscope/model"
)

func TestRecordFromThread(t *testing.T) {
	for _, tt := range []struct {
		name   string
		thread *youtube.CommentThread
		want   model.CommentRecord
	}{
		{
			name: "complete item",
			thread: &youtube.CommentThread{
				Snippet: &youtube.CommentThreadSnippet{
					TopLevelComment: &youtube.Comment{
						Id: "c1",
						Snippet: &youtube.CommentSnippet{
							AuthorDisplayName: "alice",
							PublishedAt:       "2024-03-15T12:00:00Z",
							UpdatedAt:         "2024-03-16T08:00:00Z",
							TextDisplay:       "great video",
							LikeCount:         7,
						},
					},
				},
			},
			want: model.CommentRecord{
				CommentID:   "c1",
				Author:      "alice",
				PublishedAt: "2024-03-15T12:00:00Z",
				UpdatedAt:   "2024-03-16T08:00:00Z",
				CommentText: "great video",
				LikeCount:   7,
			},
		},
		{
			name: "missing author and like count get defaults",
			thread: &youtube.CommentThread{
				Snippet: &youtube.CommentThreadSnippet{
					TopLevelComment: &youtube.Comment{
						Id: "c2",
						Snippet: &youtube.CommentSnippet{
							PublishedAt: "2024-03-15T12:00:00Z",
						},
					},
				},
			},
			want: model.CommentRecord{
				CommentID:   "c2",
				Author:      model.UnknownAuthor,
				PublishedAt: "2024-03-15T12:00:00Z",
			},
		},
		{
			name: "negative like count is clamped to zero",
			thread: &youtube.CommentThread{
				Snippet: &youtube.CommentThreadSnippet{
					TopLevelComment: &youtube.Comment{
						Id: "c3",
						Snippet: &youtube.CommentSnippet{
							LikeCount: -1,
						},
					},
				},
			},
			want: model.CommentRecord{
				CommentID: "c3",
				Author:    model.UnknownAuthor,
			},
		},
		{
			name:   "nil snippet",
			thread: &youtube.CommentThread{},
			want:   model.CommentRecord{Author: model.UnknownAuthor},
		},
		{
			name: "nil comment snippet",
			thread: &youtube.CommentThread{
				Snippet: &youtube.CommentThreadSnippet{
					TopLevelComment: &youtube.Comment{Id: "c4"},
				},
			},
			want: model.CommentRecord{CommentID: "c4", Author: model.UnknownAuthor},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			if got := RecordFromThread(tt.thread); got != tt.want {
				t.Errorf("RecordFromThread() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

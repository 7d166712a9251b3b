package fetcher

import (
	"google.golang.org/api/youtube/v3"

	"ytscope/model"
)

// RecordFromThread flattens a comment thread item into a CommentRecord.
// Absent fields get their defaults: "Unknown Author" for the author, an
// empty string for the text, zero for the like count.
func RecordFromThread(thread *youtube.CommentThread) model.CommentRecord {
	record := model.CommentRecord{
		Author: model.UnknownAuthor,
	}
	if thread == nil || thread.Snippet == nil || thread.Snippet.TopLevelComment == nil {
		return record
	}

	top := thread.Snippet.TopLevelComment
	record.CommentID = top.Id
	if snippet := top.Snippet; snippet != nil {
		if snippet.AuthorDisplayName != "" {
			record.Author = snippet.AuthorDisplayName
		}
		record.PublishedAt = snippet.PublishedAt
		record.UpdatedAt = snippet.UpdatedAt
		record.CommentText = snippet.TextDisplay
		if snippet.LikeCount > 0 {
			record.LikeCount = snippet.LikeCount
		}
	}

	return record
}

// Package audit keeps an append-only trail of admin writes.
package audit

import (
	"context"
	"time"

	"news-crud/internal/domain"
)

// Operations recorded in the trail.
const (
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
	OpClone  = "clone"
)

// EntityArticle is the entity name stored for article entries.
const EntityArticle = "article"

// Change holds the old and new value of one field.
type Change struct {
	From interface{} `bson:"from" json:"from"`
	To   interface{} `bson:"to" json:"to"`
}

// Entry is one audit document.
type Entry struct {
	Operation string            `bson:"operation" json:"operation"`
	Entity    string            `bson:"entity" json:"entity"`
	EntityID  int64             `bson:"entity_id" json:"entity_id"`
	RequestID string            `bson:"request_id,omitempty" json:"request_id,omitempty"`
	Actor     string            `bson:"actor,omitempty" json:"actor,omitempty"`
	At        time.Time         `bson:"at" json:"at"`
	Changes   map[string]Change `bson:"changes,omitempty" json:"changes,omitempty"`
}

// Recorder stores audit entries.
type Recorder interface {
	Record(ctx context.Context, entry Entry) error
	History(ctx context.Context, entity string, entityID int64, limit int) ([]Entry, error)
	Close(ctx context.Context) error
}

// NopRecorder drops every entry. It is used when no audit store is configured.
type NopRecorder struct{}

// Record does nothing.
func (NopRecorder) Record(context.Context, Entry) error { return nil }

// History always returns an empty trail.
func (NopRecorder) History(context.Context, string, int64, int) ([]Entry, error) {
	return []Entry{}, nil
}

// Close does nothing.
func (NopRecorder) Close(context.Context) error { return nil }

// Diff lists the editable fields that differ between before and after.
// A nil before yields every field of after, as for a creation.
func Diff(before, after *domain.Article) map[string]Change {
	if after == nil {
		return nil
	}
	var zero domain.Article
	if before == nil {
		before = &zero
	}

	changes := make(map[string]Change)
	add := func(field string, from, to interface{}, equal bool) {
		if !equal {
			changes[field] = Change{From: from, To: to}
		}
	}

	add("title", before.Title, after.Title, before.Title == after.Title)
	add("slug", before.Slug, after.Slug, before.Slug == after.Slug)
	add("lead", before.Lead, after.Lead, before.Lead == after.Lead)
	add("content", len(before.Content), len(after.Content), before.Content == after.Content)
	add("status", string(before.Status), string(after.Status), before.Status == after.Status)
	add("author_id", before.AuthorID, after.AuthorID, before.AuthorID == after.AuthorID)
	add("category_id", before.CategoryID, after.CategoryID, before.CategoryID == after.CategoryID)
	add("featured", before.Featured, after.Featured, before.Featured == after.Featured)
	add("published_at", before.PublishedAt, after.PublishedAt, before.PublishedAt.Equal(after.PublishedAt))
	add("expired_at", before.ExpiredAt, after.ExpiredAt, equalTimePtr(before.ExpiredAt, after.ExpiredAt))
	add("image", before.Image, after.Image, equalStringPtr(before.Image, after.Image))
	add("thumbnail", before.Thumbnail, after.Thumbnail, equalStringPtr(before.Thumbnail, after.Thumbnail))
	add("extras", before.Extras, after.Extras, before.Extras == after.Extras)
	add("tags", before.TagIDs, after.TagIDs, equalIDs(before.TagIDs, after.TagIDs))
	add("sections", before.SectionIDs, after.SectionIDs, equalIDs(before.SectionIDs, after.SectionIDs))

	return changes
}

func equalTimePtr(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func equalStringPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// equalIDs ignores order.
func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[int64]int, len(a))
	for _, id := range a {
		seen[id]++
	}
	for _, id := range b {
		if seen[id] == 0 {
			return false
		}
		seen[id]--
	}
	return true
}

package audit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"news-crud/internal/domain"
)

func TestDiff(t *testing.T) {
	published := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	before := &domain.Article{
		Title:       "Old",
		Slug:        "old",
		Status:      domain.StatusDraft,
		CategoryID:  1,
		PublishedAt: published,
		TagIDs:      []int64{1, 2},
	}

	t.Run("creation lists populated fields", func(t *testing.T) {
		changes := Diff(nil, before)
		assert.Contains(t, changes, "title")
		assert.Contains(t, changes, "slug")
		assert.Contains(t, changes, "tags")
		assert.NotContains(t, changes, "featured")
		assert.NotContains(t, changes, "sections")
	})

	t.Run("update lists only changed fields", func(t *testing.T) {
		after := *before
		after.Title = "New"
		after.Status = domain.StatusPublished
		after.TagIDs = []int64{2, 1}
		after.PublishedAt = published.In(time.FixedZone("X", 3600))

		changes := Diff(before, &after)
		assert.Len(t, changes, 2)
		assert.Equal(t, Change{From: "Old", To: "New"}, changes["title"])
		assert.Equal(t, Change{From: "DRAFT", To: "PUBLISHED"}, changes["status"])
	})

	t.Run("pointer fields", func(t *testing.T) {
		img := "a.png"
		expires := published.Add(time.Hour)
		after := *before
		after.Image = &img
		after.ExpiredAt = &expires

		changes := Diff(before, &after)
		assert.Contains(t, changes, "image")
		assert.Contains(t, changes, "expired_at")
	})

	t.Run("nil after", func(t *testing.T) {
		assert.Nil(t, Diff(before, nil))
	})
}

type fakeCollection struct {
	inserted  []interface{}
	insertErr error
	docs      []interface{}
	filter    interface{}
	findOpts  []*options.FindOptions
}

func (f *fakeCollection) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongodriver.InsertOneResult, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	f.inserted = append(f.inserted, document)
	return &mongodriver.InsertOneResult{}, nil
}

func (f *fakeCollection) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongodriver.Cursor, error) {
	f.filter = filter
	f.findOpts = opts
	return mongodriver.NewCursorFromDocuments(f.docs, nil, nil)
}

func TestMongoRecorder_Record(t *testing.T) {
	coll := &fakeCollection{}
	r := &MongoRecorder{entries: coll}

	entry := Entry{Operation: OpCreate, Entity: EntityArticle, EntityID: 5, At: time.Now()}
	require.NoError(t, r.Record(context.Background(), entry))
	require.Len(t, coll.inserted, 1)
	assert.Equal(t, entry, coll.inserted[0])

	coll.insertErr = errors.New("write concern")
	err := r.Record(context.Background(), entry)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "audit.Record")
}

func TestMongoRecorder_History(t *testing.T) {
	at := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	coll := &fakeCollection{docs: []interface{}{
		Entry{Operation: OpUpdate, Entity: EntityArticle, EntityID: 5, Actor: "editor", At: at.Add(time.Minute)},
		Entry{Operation: OpCreate, Entity: EntityArticle, EntityID: 5, Actor: "editor", At: at},
	}}
	r := &MongoRecorder{entries: coll}

	entries, err := r.History(context.Background(), EntityArticle, 5, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, OpUpdate, entries[0].Operation)
	assert.Equal(t, "editor", entries[1].Actor)
	assert.True(t, entries[1].At.Equal(at))

	assert.Equal(t, bson.M{"entity": EntityArticle, "entity_id": int64(5)}, coll.filter)
	require.Len(t, coll.findOpts, 1)
	require.NotNil(t, coll.findOpts[0].Limit)
	assert.Equal(t, int64(defaultHistoryLimit), *coll.findOpts[0].Limit)
}

func TestNopRecorder(t *testing.T) {
	var r Recorder = NopRecorder{}
	assert.NoError(t, r.Record(context.Background(), Entry{}))
	entries, err := r.History(context.Background(), EntityArticle, 1, 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.NoError(t, r.Close(context.Background()))
}

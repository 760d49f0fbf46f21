package audit

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const defaultHistoryLimit = 50

// collection is the subset of *mongo.Collection used by MongoRecorder.
type collection interface {
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongodriver.InsertOneResult, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongodriver.Cursor, error)
}

// MongoRecorder appends entries to a MongoDB collection.
type MongoRecorder struct {
	client  *mongodriver.Client
	entries collection
}

// NewMongoRecorder connects, pings and prepares the audit collection indexes.
func NewMongoRecorder(ctx context.Context, uri, dbName, collectionName string) (*MongoRecorder, error) {
	const op = "audit.NewMongoRecorder"

	cli, err := mongodriver.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("%s: connect: %w", op, err)
	}

	if err := cli.Ping(ctx, readpref.Primary()); err != nil {
		_ = cli.Disconnect(context.Background())
		return nil, fmt.Errorf("%s: ping: %w", op, err)
	}

	coll := cli.Database(dbName).Collection(collectionName)
	_, err = coll.Indexes().CreateOne(ctx, mongodriver.IndexModel{
		Keys:    bson.D{{Key: "entity", Value: 1}, {Key: "entity_id", Value: 1}, {Key: "at", Value: -1}},
		Options: options.Index().SetName("entity_id_at_desc"),
	})
	if err != nil {
		_ = cli.Disconnect(context.Background())
		return nil, fmt.Errorf("%s: ensure indexes: %w", op, err)
	}

	return &MongoRecorder{client: cli, entries: coll}, nil
}

// Record inserts one entry.
func (r *MongoRecorder) Record(ctx context.Context, entry Entry) error {
	if _, err := r.entries.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("audit.Record: %w", err)
	}
	return nil
}

// History returns the latest entries of one entity, newest first.
func (r *MongoRecorder) History(ctx context.Context, entity string, entityID int64, limit int) ([]Entry, error) {
	const op = "audit.History"

	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	cur, err := r.entries.Find(ctx,
		bson.M{"entity": entity, "entity_id": entityID},
		options.Find().SetSort(bson.D{{Key: "at", Value: -1}}).SetLimit(int64(limit)),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: find: %w", op, err)
	}
	defer cur.Close(ctx)

	entries := make([]Entry, 0)
	if err := cur.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", op, err)
	}
	return entries, nil
}

// Close disconnects the client.
func (r *MongoRecorder) Close(ctx context.Context) error {
	if r.client == nil {
		return nil
	}
	return r.client.Disconnect(ctx)
}

// Ping checks that the primary is reachable.
func (r *MongoRecorder) Ping(ctx context.Context) error {
	if r.client == nil {
		return nil
	}
	return r.client.Ping(ctx, readpref.Primary())
}

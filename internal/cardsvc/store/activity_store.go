package store

import (
	"context"
	"fmt"
	"time"

	"github.com/collectyourcards/card-services/internal/comm"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const ActivityCollection = "collection_activity"

// ActivityStore keeps the recent collection-activity feed in Mongo.
// Documents expire via a TTL index on expires_at.
type ActivityStore struct {
	col *mongo.Collection
	ttl time.Duration
}

type activityDoc struct {
	Activity  comm.CollectionActivity `bson:"activity"`
	CreatedAt time.Time               `bson:"created_at"`
	ExpiresAt time.Time               `bson:"expires_at"`
}

func NewActivityStore(db *mongo.Database, ttl time.Duration) *ActivityStore {
	return &ActivityStore{col: db.Collection(ActivityCollection), ttl: ttl}
}

// Insert records one activity event.
func (s *ActivityStore) Insert(ctx context.Context, a comm.CollectionActivity) error {
	now := time.Now().UTC()
	doc := activityDoc{
		Activity:  a,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	if _, err := s.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to insert activity: %w", err)
	}
	return nil
}

// Recent returns the newest events, newest first.
func (s *ActivityStore) Recent(ctx context.Context, limit int) ([]comm.CollectionActivity, error) {
	opts := options.Find().
		SetSort(bson.M{"created_at": -1}).
		SetLimit(int64(limit))

	cur, err := s.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query activity: %w", err)
	}
	defer cur.Close(ctx)

	var out []comm.CollectionActivity
	for cur.Next(ctx) {
		var doc activityDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode activity: %w", err)
		}
		out = append(out, doc.Activity)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("failed to read activity: %w", err)
	}
	return out, nil
}

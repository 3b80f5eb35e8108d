package persistence

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// textSearch runs a $text query ordered by relevance score, the ordering
// the original search endpoint exposes.
func textSearch(ctx context.Context, coll *mongo.Collection, term string, limit int) (*mongo.Cursor, error) {
	if term == "" {
		return nil, fmt.Errorf("search term must not be empty")
	}

	filter := bson.M{"$text": bson.M{"$search": term}}
	opts := options.Find().
		SetProjection(bson.M{"score": bson.M{"$meta": "textScore"}}).
		SetSort(bson.M{"score": bson.M{"$meta": "textScore"}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	return coll.Find(ctx, filter, opts)
}

func sortDirection(order string) int {
	if order == "desc" {
		return -1
	}
	return 1
}

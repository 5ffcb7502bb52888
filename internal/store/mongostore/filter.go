package mongostore

import (
	"context"
	"fmt"

	"github.com/jekabolt/stockroom/internal/entity"
	gerr "github.com/jekabolt/stockroom/internal/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// activeFilter matches documents that are not soft deleted and, for every bound
// that is set, were created inside [start, end).
func activeFilter(rng entity.DateRange) bson.D {
	filter := bson.D{{Key: "deletedAt", Value: nil}}

	created := bson.D{}
	if rng.Start != nil {
		created = append(created, bson.E{Key: "$gte", Value: *rng.Start})
	}
	if rng.End != nil {
		created = append(created, bson.E{Key: "$lt", Value: *rng.End})
	}
	if len(created) > 0 {
		filter = append(filter, bson.E{Key: "createdAt", Value: created})
	}
	return filter
}

// byCreation sorts oldest first, _id keeps insertion order among equal seconds.
func byCreation() *options.FindOptionsBuilder {
	return options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})
}

func findAll[T any](ctx context.Context, coll *mongo.Collection, filter bson.D) ([]T, error) {
	cursor, err := coll.Find(ctx, filter, byCreation())
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", coll.Name(), err)
	}
	docs := []T{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", coll.Name(), err)
	}
	return docs, nil
}

// setActive applies update to the active document with the given id.
func setActive(ctx context.Context, coll *mongo.Collection, id string, set bson.D) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := coll.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: oid}, {Key: "deletedAt", Value: nil}},
		bson.D{{Key: "$set", Value: set}},
	)
	if err != nil {
		return fmt.Errorf("update %s %s: %w", coll.Name(), id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("%s %s: %w", coll.Name(), id, gerr.ErrNotFound)
	}
	return nil
}

func softDelete(ctx context.Context, coll *mongo.Collection, id string, ts int64) error {
	return setActive(ctx, coll, id, bson.D{
		{Key: "deletedAt", Value: ts},
		{Key: "updatedAt", Value: ts},
	})
}

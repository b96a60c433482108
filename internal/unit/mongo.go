package unit

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/victormanase/apartment-rental-app/internal/core"
)

const unitsCollection = "units"

type mongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(db *core.Mongo) Repository {
	return &mongoRepository{coll: db.Collection(unitsCollection)}
}

func (r *mongoRepository) Create(ctx context.Context, u *Unit) error {
	if u.ConditionImages == nil {
		u.ConditionImages = StringList{}
	}

	if _, err := r.coll.InsertOne(ctx, u); err != nil {
		return fmt.Errorf("create unit: %w", err)
	}

	return nil
}

func (r *mongoRepository) List(ctx context.Context) ([]Unit, error) {
	opts := options.Find().SetSort(
		bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}},
	)

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}
	defer cursor.Close(ctx)

	units := []Unit{}
	if err := cursor.All(ctx, &units); err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}

	return units, nil
}

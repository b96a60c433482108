package rent

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/victormanase/apartment-rental-app/internal/core"
)

const rentsCollection = "rents"

type mongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(db *core.Mongo) Repository {
	return &mongoRepository{coll: db.Collection(rentsCollection)}
}

func (r *mongoRepository) Create(ctx context.Context, rn *Rent) error {
	if _, err := r.coll.InsertOne(ctx, rn); err != nil {
		return fmt.Errorf("create rent: %w", err)
	}

	return nil
}

func (r *mongoRepository) ListOverdue(
	ctx context.Context,
	asOf time.Time,
) ([]Rent, error) {
	filter := bson.M{"rentEndDate": bson.M{"$lt": asOf}}
	opts := options.Find().SetSort(
		bson.D{{Key: "rentEndDate", Value: 1}, {Key: "_id", Value: 1}},
	)

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list overdue rents: %w", err)
	}
	defer cursor.Close(ctx)

	rents := []Rent{}
	if err := cursor.All(ctx, &rents); err != nil {
		return nil, fmt.Errorf("list overdue rents: %w", err)
	}

	return rents, nil
}

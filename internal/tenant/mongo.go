package tenant

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/victormanase/apartment-rental-app/internal/core"
)

const tenantsCollection = "tenants"

type mongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(db *core.Mongo) Repository {
	return &mongoRepository{coll: db.Collection(tenantsCollection)}
}

func (r *mongoRepository) Create(ctx context.Context, t *Tenant) error {
	if _, err := r.coll.InsertOne(ctx, t); err != nil {
		return fmt.Errorf("create tenant: %w", err)
	}

	return nil
}

func (r *mongoRepository) List(ctx context.Context) ([]Tenant, error) {
	opts := options.Find().SetSort(
		bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}},
	)

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list tenants: %w", err)
	}
	defer cursor.Close(ctx)

	tenants := []Tenant{}
	if err := cursor.All(ctx, &tenants); err != nil {
		return nil, fmt.Errorf("list tenants: %w", err)
	}

	return tenants, nil
}

package user

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/victormanase/apartment-rental-app/internal/core"
)

const usersCollection = "users"

type mongoRepository struct {
	coll *mongo.Collection
}

// NewMongoRepository also ensures the unique username index, which is what
// makes concurrent duplicate registrations lose atomically.
func NewMongoRepository(
	ctx context.Context,
	db *core.Mongo,
) (Repository, error) {
	coll := db.Collection(usersCollection)

	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, fmt.Errorf("ensure username index: %w", err)
	}

	return &mongoRepository{coll: coll}, nil
}

func (r *mongoRepository) Create(ctx context.Context, u *User) error {
	if _, err := r.coll.InsertOne(ctx, u); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("create user: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (r *mongoRepository) GetByUsername(
	ctx context.Context,
	username string,
) (*User, error) {
	var u User
	err := r.coll.FindOne(ctx, bson.M{"username": username}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &u, nil
}

func (r *mongoRepository) UpdatePassword(
	ctx context.Context,
	username, passwordHash string,
) error {
	result, err := r.coll.UpdateOne(
		ctx,
		bson.M{"username": username},
		bson.M{"$set": bson.M{"password": passwordHash}},
	)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("update password: %w", core.ErrNotFound)
	}

	return nil
}

func (r *mongoRepository) Delete(ctx context.Context, username string) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"username": username}); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	return nil
}

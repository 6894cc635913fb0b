package models

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	UsersCollection = "users"
	PostsCollection = "posts"
)

var Validate = validator.New()

// ErrNotFound is returned by the repositories when a point lookup matches
// no document.
var ErrNotFound = errors.New("document not found")

type MongodbRepo struct {
	db *mongo.Database
}

func MongodbNewRepo(client *mongo.Client, dbName string) *MongodbRepo {
	return &MongodbRepo{
		db: client.Database(dbName),
	}
}

func (mdb *MongodbRepo) collection(name string) *mongo.Collection {
	return mdb.db.Collection(name)
}

// EnsureIndexes creates the unique email index the registration flow
// relies on to reject duplicate accounts.
func (mdb *MongodbRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := mdb.collection(UsersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

package models

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepo interface {
	InsertUser(ctx context.Context, user *User) (*User, error)
	GetUserByID(ctx context.Context, id string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	UpdateUserFields(ctx context.Context, id string, fields map[string]interface{}) error
	DeleteUser(ctx context.Context, id string) error
	AddFollower(ctx context.Context, userId, followerId string) error
	RemoveFollower(ctx context.Context, userId, followerId string) error
	AddFollowing(ctx context.Context, userId, followingId string) error
	RemoveFollowing(ctx context.Context, userId, followingId string) error
}

func (mdb *MongodbRepo) InsertUser(ctx context.Context, user *User) (*User, error) {
	col := mdb.collection(UsersCollection)

	res, err := col.InsertOne(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("error inserting user: %v", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return user, nil
}

func (mdb *MongodbRepo) GetUserByID(ctx context.Context, id string) (*User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid user id %q: %v", id, err)
	}

	var user User
	err = mdb.collection(UsersCollection).FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("error finding user by id: %v", err)
	}
	return &user, nil
}

func (mdb *MongodbRepo) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	err := mdb.collection(UsersCollection).FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, fmt.Errorf("user %s: %w", email, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("error finding user by email: %v", err)
	}
	return &user, nil
}

func (mdb *MongodbRepo) UpdateUserFields(ctx context.Context, id string, fields map[string]interface{}) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid user id %q: %v", id, err)
	}

	set := bson.M{"updatedAt": time.Now()}
	for key, value := range fields {
		set[key] = value
	}

	res, err := mdb.collection(UsersCollection).UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("error updating user: %v", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	return nil
}

func (mdb *MongodbRepo) DeleteUser(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid user id %q: %v", id, err)
	}

	res, err := mdb.collection(UsersCollection).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("error deleting user: %v", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	return nil
}

// The four edge mutations below are each a single atomic update on one
// document. $addToSet and $pull are add-if-absent / remove-if-present, so
// concurrent callers cannot duplicate or corrupt the arrays.

func (mdb *MongodbRepo) AddFollower(ctx context.Context, userId, followerId string) error {
	return mdb.updateUserArray(ctx, userId, bson.M{"$addToSet": bson.M{"followers": followerId}})
}

func (mdb *MongodbRepo) RemoveFollower(ctx context.Context, userId, followerId string) error {
	return mdb.updateUserArray(ctx, userId, bson.M{"$pull": bson.M{"followers": followerId}})
}

func (mdb *MongodbRepo) AddFollowing(ctx context.Context, userId, followingId string) error {
	return mdb.updateUserArray(ctx, userId, bson.M{"$addToSet": bson.M{"followings": followingId}})
}

func (mdb *MongodbRepo) RemoveFollowing(ctx context.Context, userId, followingId string) error {
	return mdb.updateUserArray(ctx, userId, bson.M{"$pull": bson.M{"followings": followingId}})
}

func (mdb *MongodbRepo) updateUserArray(ctx context.Context, userId string, update bson.M) error {
	oid, err := primitive.ObjectIDFromHex(userId)
	if err != nil {
		return fmt.Errorf("invalid user id %q: %v", userId, err)
	}

	res, err := mdb.collection(UsersCollection).UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("error updating user edges: %v", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("user %s: %w", userId, ErrNotFound)
	}
	return nil
}

package models

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PostRepo interface {
	InsertPost(ctx context.Context, post *Post) (*Post, error)
	GetPostByID(ctx context.Context, id string) (*Post, error)
	UpdatePostFields(ctx context.Context, id string, fields map[string]interface{}) error
	DeletePost(ctx context.Context, id string) error
	AddLike(ctx context.Context, postId, userId string) error
	RemoveLike(ctx context.Context, postId, userId string) error
	GetPostsByUser(ctx context.Context, userId string) ([]*Post, error)
}

func (mdb *MongodbRepo) InsertPost(ctx context.Context, post *Post) (*Post, error) {
	res, err := mdb.collection(PostsCollection).InsertOne(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("error inserting post: %v", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		post.ID = oid
	}
	return post, nil
}

func (mdb *MongodbRepo) GetPostByID(ctx context.Context, id string) (*Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid post id %q: %v", id, err)
	}

	var post Post
	err = mdb.collection(PostsCollection).FindOne(ctx, bson.M{"_id": oid}).Decode(&post)
	if err == mongo.ErrNoDocuments {
		return nil, fmt.Errorf("post %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("error finding post by id: %v", err)
	}
	return &post, nil
}

func (mdb *MongodbRepo) UpdatePostFields(ctx context.Context, id string, fields map[string]interface{}) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid post id %q: %v", id, err)
	}

	set := bson.M{"updatedAt": time.Now()}
	for key, value := range fields {
		set[key] = value
	}

	res, err := mdb.collection(PostsCollection).UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("error updating post: %v", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("post %s: %w", id, ErrNotFound)
	}
	return nil
}

func (mdb *MongodbRepo) DeletePost(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid post id %q: %v", id, err)
	}

	res, err := mdb.collection(PostsCollection).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("error deleting post: %v", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("post %s: %w", id, ErrNotFound)
	}
	return nil
}

// AddLike and RemoveLike are each one atomic update, so a concurrent like
// and unlike on the same post cannot corrupt the array.

func (mdb *MongodbRepo) AddLike(ctx context.Context, postId, userId string) error {
	return mdb.updatePostArray(ctx, postId, bson.M{"$addToSet": bson.M{"likes": userId}})
}

func (mdb *MongodbRepo) RemoveLike(ctx context.Context, postId, userId string) error {
	return mdb.updatePostArray(ctx, postId, bson.M{"$pull": bson.M{"likes": userId}})
}

func (mdb *MongodbRepo) updatePostArray(ctx context.Context, postId string, update bson.M) error {
	oid, err := primitive.ObjectIDFromHex(postId)
	if err != nil {
		return fmt.Errorf("invalid post id %q: %v", postId, err)
	}

	res, err := mdb.collection(PostsCollection).UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("error updating post likes: %v", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("post %s: %w", postId, ErrNotFound)
	}
	return nil
}

// GetPostsByUser returns all posts authored by userId in insertion order.
func (mdb *MongodbRepo) GetPostsByUser(ctx context.Context, userId string) ([]*Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := mdb.collection(PostsCollection).Find(ctx, bson.M{"userId": userId}, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding posts: %v", err)
	}
	defer cursor.Close(ctx)

	var posts []*Post
	for cursor.Next(ctx) {
		var post Post
		if err := cursor.Decode(&post); err != nil {
			return nil, fmt.Errorf("error decoding post: %v", err)
		}
		posts = append(posts, &post)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return posts, nil
}

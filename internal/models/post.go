package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Post struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID    string             `bson:"userId" json:"userId" validate:"required"`
	Desc      string             `bson:"desc,omitempty" json:"desc,omitempty"`
	Img       string             `bson:"img,omitempty" json:"img,omitempty"`
	Likes     []string           `bson:"likes" json:"likes"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// HasLike reports whether userId is present in the post's likes array.
func (p *Post) HasLike(userId string) bool {
	for _, id := range p.Likes {
		if id == userId {
			return true
		}
	}
	return false
}

// allowedPostFields is the set of attributes a post update may touch. The
// owner reference and the likes array are excluded.
var allowedPostFields = map[string]bool{
	"desc": true,
	"img":  true,
}

// FilterPostUpdates keeps only the mutable post attributes from an open
// update payload.
func FilterPostUpdates(fields map[string]interface{}) map[string]interface{} {
	filtered := make(map[string]interface{})
	for key, value := range fields {
		if allowedPostFields[key] {
			filtered[key] = value
		}
	}
	return filtered
}

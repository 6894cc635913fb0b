package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Username       string             `bson:"username" json:"username" validate:"required"`
	Email          string             `bson:"email" json:"email" validate:"required,email"`
	Password       string             `bson:"password" json:"password" validate:"required"`
	ProfilePicture string             `bson:"profilePicture,omitempty" json:"profilePicture,omitempty"`
	CoverPicture   string             `bson:"coverPicture,omitempty" json:"coverPicture,omitempty"`
	Desc           string             `bson:"desc,omitempty" json:"desc,omitempty"`
	City           string             `bson:"city,omitempty" json:"city,omitempty"`
	From           string             `bson:"from,omitempty" json:"from,omitempty"`
	Followers      []string           `bson:"followers" json:"followers"`
	Followings     []string           `bson:"followings" json:"followings"`
	IsAdmin        bool               `bson:"isAdmin" json:"isAdmin"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// PublicUser is the profile view: everything except the hashed password
// and the updatedAt timestamp.
type PublicUser struct {
	ID             primitive.ObjectID `json:"_id"`
	Username       string             `json:"username"`
	Email          string             `json:"email"`
	ProfilePicture string             `json:"profilePicture,omitempty"`
	CoverPicture   string             `json:"coverPicture,omitempty"`
	Desc           string             `json:"desc,omitempty"`
	City           string             `json:"city,omitempty"`
	From           string             `json:"from,omitempty"`
	Followers      []string           `json:"followers"`
	Followings     []string           `json:"followings"`
	IsAdmin        bool               `json:"isAdmin"`
	CreatedAt      time.Time          `json:"createdAt"`
}

func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		ProfilePicture: u.ProfilePicture,
		CoverPicture:   u.CoverPicture,
		Desc:           u.Desc,
		City:           u.City,
		From:           u.From,
		Followers:      u.Followers,
		Followings:     u.Followings,
		IsAdmin:        u.IsAdmin,
		CreatedAt:      u.CreatedAt,
	}
}

// HasFollower reports whether followerId is present in the user's
// followers array.
func (u *User) HasFollower(followerId string) bool {
	for _, id := range u.Followers {
		if id == followerId {
			return true
		}
	}
	return false
}

// allowedUserFields is the set of attributes a profile update may touch.
// Identity, the social graph arrays, the admin flag and the timestamps are
// deliberately absent: a caller-supplied payload must not overwrite them.
var allowedUserFields = map[string]bool{
	"username":       true,
	"email":          true,
	"password":       true,
	"profilePicture": true,
	"coverPicture":   true,
	"desc":           true,
	"city":           true,
	"from":           true,
}

// FilterUserUpdates keeps only the mutable profile attributes from an open
// update payload.
func FilterUserUpdates(fields map[string]interface{}) map[string]interface{} {
	filtered := make(map[string]interface{})
	for key, value := range fields {
		if allowedUserFields[key] {
			filtered[key] = value
		}
	}
	return filtered
}

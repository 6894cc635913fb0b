package services

import (
	"context"
	"fmt"

	"github.com/joshua-takyi/sociogram/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memRepo is an in-memory stand-in for the Mongo repositories. Users are
// keyed by hex id, posts kept in insertion order. A unique email check
// mimics the users collection index.
type memRepo struct {
	users       map[string]*models.User
	posts       []*models.Post
	lastUpdated map[string]interface{}
}

func newMemRepo() *memRepo {
	return &memRepo{users: make(map[string]*models.User)}
}

func (m *memRepo) addUser(username, email string) *models.User {
	user := &models.User{
		ID:         primitive.NewObjectID(),
		Username:   username,
		Email:      email,
		Password:   "hashed-secret",
		Followers:  []string{},
		Followings: []string{},
	}
	m.users[user.ID.Hex()] = user
	return user
}

func (m *memRepo) addPost(ownerId, desc string) *models.Post {
	post := &models.Post{
		ID:     primitive.NewObjectID(),
		UserID: ownerId,
		Desc:   desc,
		Likes:  []string{},
	}
	m.posts = append(m.posts, post)
	return post
}

func (m *memRepo) InsertUser(ctx context.Context, user *models.User) (*models.User, error) {
	for _, existing := range m.users {
		if existing.Email == user.Email {
			return nil, fmt.Errorf("duplicate key error: email %s", user.Email)
		}
	}
	user.ID = primitive.NewObjectID()
	m.users[user.ID.Hex()] = user
	return user, nil
}

func (m *memRepo) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, models.ErrNotFound)
	}
	return user, nil
}

func (m *memRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", email, models.ErrNotFound)
}

func (m *memRepo) UpdateUserFields(ctx context.Context, id string, fields map[string]interface{}) error {
	user, ok := m.users[id]
	if !ok {
		return fmt.Errorf("user %s: %w", id, models.ErrNotFound)
	}
	m.lastUpdated = fields
	if username, ok := fields["username"].(string); ok {
		user.Username = username
	}
	if password, ok := fields["password"].(string); ok {
		user.Password = password
	}
	return nil
}

func (m *memRepo) DeleteUser(ctx context.Context, id string) error {
	if _, ok := m.users[id]; !ok {
		return fmt.Errorf("user %s: %w", id, models.ErrNotFound)
	}
	delete(m.users, id)
	return nil
}

func (m *memRepo) AddFollower(ctx context.Context, userId, followerId string) error {
	return m.userArrayAdd(userId, followerId, true)
}

func (m *memRepo) RemoveFollower(ctx context.Context, userId, followerId string) error {
	return m.userArrayRemove(userId, followerId, true)
}

func (m *memRepo) AddFollowing(ctx context.Context, userId, followingId string) error {
	return m.userArrayAdd(userId, followingId, false)
}

func (m *memRepo) RemoveFollowing(ctx context.Context, userId, followingId string) error {
	return m.userArrayRemove(userId, followingId, false)
}

func (m *memRepo) userArrayAdd(userId, value string, followers bool) error {
	user, ok := m.users[userId]
	if !ok {
		return fmt.Errorf("user %s: %w", userId, models.ErrNotFound)
	}
	arr := &user.Followings
	if followers {
		arr = &user.Followers
	}
	for _, id := range *arr {
		if id == value {
			return nil // add-if-absent
		}
	}
	*arr = append(*arr, value)
	return nil
}

func (m *memRepo) userArrayRemove(userId, value string, followers bool) error {
	user, ok := m.users[userId]
	if !ok {
		return fmt.Errorf("user %s: %w", userId, models.ErrNotFound)
	}
	arr := &user.Followings
	if followers {
		arr = &user.Followers
	}
	kept := (*arr)[:0]
	for _, id := range *arr {
		if id != value {
			kept = append(kept, id)
		}
	}
	*arr = kept
	return nil
}

func (m *memRepo) InsertPost(ctx context.Context, post *models.Post) (*models.Post, error) {
	post.ID = primitive.NewObjectID()
	m.posts = append(m.posts, post)
	return post, nil
}

func (m *memRepo) GetPostByID(ctx context.Context, id string) (*models.Post, error) {
	for _, post := range m.posts {
		if post.ID.Hex() == id {
			return post, nil
		}
	}
	return nil, fmt.Errorf("post %s: %w", id, models.ErrNotFound)
}

func (m *memRepo) UpdatePostFields(ctx context.Context, id string, fields map[string]interface{}) error {
	post, err := m.GetPostByID(ctx, id)
	if err != nil {
		return err
	}
	m.lastUpdated = fields
	if desc, ok := fields["desc"].(string); ok {
		post.Desc = desc
	}
	if img, ok := fields["img"].(string); ok {
		post.Img = img
	}
	return nil
}

func (m *memRepo) DeletePost(ctx context.Context, id string) error {
	for i, post := range m.posts {
		if post.ID.Hex() == id {
			m.posts = append(m.posts[:i], m.posts[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("post %s: %w", id, models.ErrNotFound)
}

func (m *memRepo) AddLike(ctx context.Context, postId, userId string) error {
	post, err := m.GetPostByID(ctx, postId)
	if err != nil {
		return err
	}
	if !post.HasLike(userId) {
		post.Likes = append(post.Likes, userId)
	}
	return nil
}

func (m *memRepo) RemoveLike(ctx context.Context, postId, userId string) error {
	post, err := m.GetPostByID(ctx, postId)
	if err != nil {
		return err
	}
	kept := post.Likes[:0]
	for _, id := range post.Likes {
		if id != userId {
			kept = append(kept, id)
		}
	}
	post.Likes = kept
	return nil
}

func (m *memRepo) GetPostsByUser(ctx context.Context, userId string) ([]*models.Post, error) {
	var posts []*models.Post
	for _, post := range m.posts {
		if post.UserID == userId {
			posts = append(posts, post)
		}
	}
	return posts, nil
}

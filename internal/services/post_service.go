package services

import (
	"context"
	"fmt"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/joshua-takyi/sociogram/internal/errs"
	"github.com/joshua-takyi/sociogram/internal/helpers"
	"github.com/joshua-takyi/sociogram/internal/models"
)

type PostService struct {
	postRepo models.PostRepo
	userRepo models.UserRepo
	cld      *cloudinary.Cloudinary
}

// NewPostService wires the post flow. cld may be nil, in which case post
// images are stored verbatim instead of being uploaded.
func NewPostService(postRepo models.PostRepo, userRepo models.UserRepo, cld *cloudinary.Cloudinary) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
		cld:      cld,
	}
}

func (ps *PostService) CreatePost(ctx context.Context, ownerId, desc, img string) (*models.Post, error) {
	post := &models.Post{
		UserID: ownerId,
		Desc:   desc,
		Img:    img,
	}
	if err := models.Validate.Struct(post); err != nil {
		return nil, fmt.Errorf("invalid post payload: %v", err)
	}

	if ps.cld != nil && img != "" {
		url, err := helpers.UploadImage(ctx, ps.cld, img, helpers.PostFolder)
		if err != nil {
			return nil, err
		}
		post.Img = url
	}

	now := time.Now()
	post.Likes = []string{}
	post.CreatedAt = now
	post.UpdatedAt = now

	return ps.postRepo.InsertPost(ctx, post)
}

// UpdatePost applies the allow-listed fields to a post the requester owns.
func (ps *PostService) UpdatePost(ctx context.Context, postId, requesterId string, fields map[string]interface{}) error {
	post, err := ps.postRepo.GetPostByID(ctx, postId)
	if err != nil {
		return err
	}
	if post.UserID != requesterId {
		return errs.Unauthorized("You can only update your posts")
	}

	return ps.postRepo.UpdatePostFields(ctx, postId, models.FilterPostUpdates(fields))
}

func (ps *PostService) DeletePost(ctx context.Context, postId, requesterId string) error {
	post, err := ps.postRepo.GetPostByID(ctx, postId)
	if err != nil {
		return err
	}
	if post.UserID != requesterId {
		return errs.Unauthorized("You can only delete your posts")
	}

	return ps.postRepo.DeletePost(ctx, postId)
}

// ToggleLike adds the requester to the post's likes if absent, removes it
// if present, and reports which happened. Two sequential calls by the same
// user alternate outcomes.
func (ps *PostService) ToggleLike(ctx context.Context, postId, requesterId string) (string, error) {
	post, err := ps.postRepo.GetPostByID(ctx, postId)
	if err != nil {
		return "", err
	}

	if !post.HasLike(requesterId) {
		if err := ps.postRepo.AddLike(ctx, postId, requesterId); err != nil {
			return "", err
		}
		return "The post has been liked", nil
	}

	if err := ps.postRepo.RemoveLike(ctx, postId, requesterId); err != nil {
		return "", err
	}
	return "The post has been disliked", nil
}

func (ps *PostService) GetPost(ctx context.Context, postId string) (*models.Post, error) {
	return ps.postRepo.GetPostByID(ctx, postId)
}

// Timeline returns the requester's own posts followed by each followed
// author's posts in followings order. Posts are bucketed per author in
// insertion order; there is no global chronological sort.
func (ps *PostService) Timeline(ctx context.Context, requesterId string) ([]*models.Post, error) {
	user, err := ps.userRepo.GetUserByID(ctx, requesterId)
	if err != nil {
		return nil, err
	}

	timeline, err := ps.postRepo.GetPostsByUser(ctx, requesterId)
	if err != nil {
		return nil, err
	}
	if timeline == nil {
		timeline = []*models.Post{}
	}

	for _, friendId := range user.Followings {
		friendPosts, err := ps.postRepo.GetPostsByUser(ctx, friendId)
		if err != nil {
			return nil, err
		}
		timeline = append(timeline, friendPosts...)
	}

	return timeline, nil
}

package services

import (
	"context"

	"github.com/joshua-takyi/sociogram/internal/errs"
	"github.com/joshua-takyi/sociogram/internal/helpers"
	"github.com/joshua-takyi/sociogram/internal/models"
)

type UserService struct {
	userRepo models.UserRepo
}

func NewUserService(userRepo models.UserRepo) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// UpdateUser merges the allow-listed fields into the target account. Only
// the account owner or an admin may update, and the payload must carry a
// password, which is stored re-hashed.
func (us *UserService) UpdateUser(ctx context.Context, targetId, requesterId string, requesterIsAdmin bool, fields map[string]interface{}) error {
	if requesterId != targetId && !requesterIsAdmin {
		return errs.Forbidden("You can update only your account!")
	}

	password, ok := fields["password"].(string)
	if !ok || password == "" {
		return errs.BadRequest("Please include your password")
	}

	hashed, err := helpers.HashPassword(password)
	if err != nil {
		return err
	}

	filtered := models.FilterUserUpdates(fields)
	filtered["password"] = hashed

	if err := us.userRepo.UpdateUserFields(ctx, targetId, filtered); err != nil {
		return errs.Internal("Error finding the user")
	}
	return nil
}

// DeleteUser removes the target account under the same authorization and
// password-presence gates as UpdateUser. The password is hashed to mirror
// the update flow but is not checked against the stored credential; there
// is no cascade to the user's posts or to edges held on other users.
func (us *UserService) DeleteUser(ctx context.Context, targetId, requesterId string, requesterIsAdmin bool, password string) error {
	if requesterId != targetId && !requesterIsAdmin {
		return errs.Forbidden("You can only delete your account!")
	}

	if password == "" {
		return errs.BadRequest("Please include your password")
	}

	if _, err := helpers.HashPassword(password); err != nil {
		return err
	}

	if err := us.userRepo.DeleteUser(ctx, targetId); err != nil {
		return errs.Internal("Error deleting the user")
	}
	return nil
}

// GetUser returns the profile view of an account.
func (us *UserService) GetUser(ctx context.Context, id string) (*models.PublicUser, error) {
	user, err := us.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.Public(), nil
}

// Follow adds requesterId to the target's followers and targetId to the
// requester's followings. The two edge directions are written as two
// independent atomic single-document updates; a crash between them can
// leave the edge asymmetric.
func (us *UserService) Follow(ctx context.Context, targetId, requesterId string) error {
	if targetId == requesterId {
		return errs.Forbidden("You cannot follow yourself")
	}

	target, err := us.userRepo.GetUserByID(ctx, targetId)
	if err != nil {
		return err
	}
	if _, err := us.userRepo.GetUserByID(ctx, requesterId); err != nil {
		return err
	}

	if target.HasFollower(requesterId) {
		return errs.Forbidden("You already follow this user")
	}

	if err := us.userRepo.AddFollower(ctx, targetId, requesterId); err != nil {
		return err
	}
	return us.userRepo.AddFollowing(ctx, requesterId, targetId)
}

// Unfollow removes both directions of the edge, symmetric to Follow.
func (us *UserService) Unfollow(ctx context.Context, targetId, requesterId string) error {
	if targetId == requesterId {
		return errs.Forbidden("You cannot unfollow yourself")
	}

	target, err := us.userRepo.GetUserByID(ctx, targetId)
	if err != nil {
		return err
	}
	if _, err := us.userRepo.GetUserByID(ctx, requesterId); err != nil {
		return err
	}

	if !target.HasFollower(requesterId) {
		return errs.Forbidden("You do not follow user")
	}

	if err := us.userRepo.RemoveFollower(ctx, targetId, requesterId); err != nil {
		return err
	}
	return us.userRepo.RemoveFollowing(ctx, requesterId, targetId)
}

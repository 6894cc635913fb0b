package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/joshua-takyi/sociogram/internal/errs"
	"github.com/joshua-takyi/sociogram/internal/helpers"
	"github.com/joshua-takyi/sociogram/internal/models"
)

type AuthService struct {
	userRepo  models.UserRepo
	jwtSecret string
}

func NewAuthService(userRepo models.UserRepo, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
	}
}

// Register persists a new account with a hashed password, empty follower
// and following sets and no admin rights. The stored document is returned
// as-is, hashed password included, matching the reference wire contract.
func (as *AuthService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	user := &models.User{
		Username: username,
		Email:    email,
		Password: password,
	}
	if err := models.Validate.Struct(user); err != nil {
		return nil, fmt.Errorf("invalid registration payload: %v", err)
	}

	hashed, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user.Password = hashed
	user.Followers = []string{}
	user.Followings = []string{}
	user.IsAdmin = false
	user.CreatedAt = now
	user.UpdatedAt = now

	return as.userRepo.InsertUser(ctx, user)
}

// Login authenticates by email and password and returns the full user
// document plus a signed access token.
func (as *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := as.userRepo.GetUserByEmail(ctx, email)
	if errors.Is(err, models.ErrNotFound) {
		return nil, "", errs.NotFound("User not found")
	}
	if err != nil {
		return nil, "", err
	}

	if !helpers.VerifyPassword(password, user.Password) {
		return nil, "", errs.BadRequest("Wrong password!")
	}

	token, err := helpers.IssueToken(as.jwtSecret, user.ID.Hex(), user.IsAdmin)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// TokenClaims verifies an access token issued by Login.
func (as *AuthService) TokenClaims(token string) (*helpers.AuthClaims, error) {
	return helpers.ValidateToken(as.jwtSecret, token)
}

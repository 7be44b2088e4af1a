package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/anonto42/foodgram/backend/internal/models"
	"github.com/anonto42/foodgram/backend/internal/repositories"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	users   repositories.UserRepository
	follows repositories.FollowRepository
}

func NewUserService(users repositories.UserRepository, follows repositories.FollowRepository) *UserService {
	return &UserService{users: users, follows: follows}
}

// Register creates a user account with a bcrypt-hashed password.
func (s *UserService) Register(ctx context.Context, req models.CreateUserRequest) (*models.UserResponse, error) {
	if err := s.ensureFree(ctx, "email", s.users.GetUserByEmail, req.Email); err != nil {
		return nil, err
	}
	if err := s.ensureFree(ctx, "username", s.users.GetUserByUsername, req.Username); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:     req.Email,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  string(hash),
		Role:      models.RoleUser,
	}
	err = s.users.CreateUser(ctx, user)
	if isDuplicate(err) {
		return nil, invalid("username", "a user with that email or username already exists")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	resp := user.ToResponse(false)
	return &resp, nil
}

func (s *UserService) ensureFree(ctx context.Context, field string, lookup func(context.Context, string) (*models.User, error), value string) error {
	_, err := lookup(ctx, value)
	if err == nil {
		return invalid(field, "a user with that %s already exists", field)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return fmt.Errorf("failed to check %s: %w", field, err)
}

// List returns all users with is_subscribed set for requester, which may be nil.
func (s *UserService) List(ctx context.Context, requester *models.User) ([]models.UserResponse, error) {
	users, err := s.users.GetUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	var following map[uint]bool
	if requester != nil {
		ids := make([]uint, len(users))
		for i, u := range users {
			ids[i] = u.ID
		}
		if following, err = s.follows.GetFollowingIDs(ctx, requester.ID, ids); err != nil {
			return nil, fmt.Errorf("failed to load subscriptions: %w", err)
		}
	}

	out := make([]models.UserResponse, len(users))
	for i := range users {
		out[i] = users[i].ToResponse(following[users[i].ID])
	}
	return out, nil
}

func (s *UserService) Get(ctx context.Context, requester *models.User, id uint) (*models.UserResponse, error) {
	user, err := s.users.GetUserByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "user")
	}
	subscribed := false
	if requester != nil && requester.ID != id {
		if subscribed, err = s.follows.IsFollowing(ctx, requester.ID, id); err != nil {
			return nil, fmt.Errorf("failed to check subscription: %w", err)
		}
	}
	resp := user.ToResponse(subscribed)
	return &resp, nil
}

// SetPassword replaces the password after checking the current one.
func (s *UserService) SetPassword(ctx context.Context, user *models.User, req models.SetPasswordRequest) error {
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)) != nil {
		return invalid("current_password", "wrong password")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hash)
	if err := s.users.UpdateUser(ctx, user); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

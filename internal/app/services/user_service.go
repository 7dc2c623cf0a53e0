package services

import (
	"context"

	"github.com/yigit/classroom/internal/app/models"
	"github.com/yigit/classroom/internal/app/models/dto"
)

// UserService defines the interface for user-related operations
type UserService interface {
	GetAllUsers(ctx context.Context) ([]*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*models.User, error)
	UpdateUser(ctx context.Context, id int64, req dto.UpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

type userServiceImpl struct {
	userRepo UserStore
}

// NewUserService creates a new user service instance
func NewUserService(userRepo UserStore) UserService {
	return &userServiceImpl{userRepo: userRepo}
}

func (s *userServiceImpl) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	users, err := s.userRepo.GetAllUsers(ctx)
	return users, translateError(models.EntityUser, err)
}

func (s *userServiceImpl) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return nil, translateError(models.EntityUser, err)
	}
	return user, nil
}

func (s *userServiceImpl) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*models.User, error) {
	user := &models.User{Email: *req.Email, Password: *req.Password}
	id, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		return nil, translateError(models.EntityUser, err)
	}
	// A new user has no profile yet.
	user.ID = id
	return user, nil
}

func (s *userServiceImpl) UpdateUser(ctx context.Context, id int64, req dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Password != nil {
		user.Password = *req.Password
	}
	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, translateError(models.EntityUser, err)
	}
	return user, nil
}

func (s *userServiceImpl) DeleteUser(ctx context.Context, id int64) error {
	return translateError(models.EntityUser, s.userRepo.DeleteUser(ctx, id))
}

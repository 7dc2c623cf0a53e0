package services

import (
	"context"

	"github.com/yigit/classroom/internal/app/models"
	"github.com/yigit/classroom/internal/app/models/dto"
)

// ProfileService defines the interface for profile-related operations
type ProfileService interface {
	GetAllProfiles(ctx context.Context) ([]*models.Profile, error)
	GetProfileByID(ctx context.Context, id int64) (*models.Profile, error)
	CreateProfile(ctx context.Context, req dto.CreateProfileRequest) (*models.Profile, error)
	UpdateProfile(ctx context.Context, id int64, req dto.UpdateProfileRequest) (*models.Profile, error)
	DeleteProfile(ctx context.Context, id int64) error
}

type profileServiceImpl struct {
	profileRepo ProfileStore
}

// NewProfileService creates a new profile service instance
func NewProfileService(profileRepo ProfileStore) ProfileService {
	return &profileServiceImpl{profileRepo: profileRepo}
}

func (s *profileServiceImpl) GetAllProfiles(ctx context.Context) ([]*models.Profile, error) {
	profiles, err := s.profileRepo.GetAllProfiles(ctx)
	return profiles, translateError(models.EntityProfile, err)
}

func (s *profileServiceImpl) GetProfileByID(ctx context.Context, id int64) (*models.Profile, error) {
	profile, err := s.profileRepo.GetProfileByID(ctx, id)
	if err != nil {
		return nil, translateError(models.EntityProfile, err)
	}
	return profile, nil
}

func (s *profileServiceImpl) CreateProfile(ctx context.Context, req dto.CreateProfileRequest) (*models.Profile, error) {
	profile := &models.Profile{Bio: *req.Bio, UserID: *req.UserID}
	id, err := s.profileRepo.CreateProfile(ctx, profile)
	if err != nil {
		return nil, translateError(models.EntityProfile, err)
	}
	profile.ID = id
	return profile, nil
}

func (s *profileServiceImpl) UpdateProfile(ctx context.Context, id int64, req dto.UpdateProfileRequest) (*models.Profile, error) {
	profile, err := s.GetProfileByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.UserID != nil {
		profile.UserID = *req.UserID
	}
	if err := s.profileRepo.UpdateProfile(ctx, profile); err != nil {
		return nil, translateError(models.EntityProfile, err)
	}
	return profile, nil
}

func (s *profileServiceImpl) DeleteProfile(ctx context.Context, id int64) error {
	return translateError(models.EntityProfile, s.profileRepo.DeleteProfile(ctx, id))
}

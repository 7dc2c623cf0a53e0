package dto

import "github.com/yigit/classroom/internal/app/models"

// CreateUserRequest is the body of POST /users.
type CreateUserRequest struct {
	Email    *string `json:"email" binding:"required" example:"a@x.com"`
	Password *string `json:"password" binding:"required" example:"p"`
}

// UpdateUserRequest carries the fields to change; absent fields keep their value.
type UpdateUserRequest struct {
	Email    *string `json:"email" example:"b@x.com"`
	Password *string `json:"password"`
}

// UserResponse is the public view of a user. The password is never emitted.
type UserResponse struct {
	ID      int64            `json:"id" example:"1"`
	Email   string           `json:"email" example:"a@x.com"`
	Profile *ProfileResponse `json:"profile"`
}

// NewUserResponse converts a user and its optional profile.
func NewUserResponse(user *models.User) UserResponse {
	resp := UserResponse{ID: user.ID, Email: user.Email}
	if user.Profile != nil {
		profile := NewProfileResponse(user.Profile)
		resp.Profile = &profile
	}
	return resp
}

// NewUserListResponse converts a slice of users.
func NewUserListResponse(users []*models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}

// CreateProfileRequest is the body of POST /profiles.
type CreateProfileRequest struct {
	Bio    *string `json:"bio" binding:"required" example:"Soy Alice"`
	UserID *int64  `json:"user_id" binding:"required" example:"1"`
}

// UpdateProfileRequest carries the profile fields to change.
type UpdateProfileRequest struct {
	Bio    *string `json:"bio"`
	UserID *int64  `json:"user_id"`
}

// ProfileResponse omits the owning user id.
type ProfileResponse struct {
	ID  int64  `json:"id" example:"1"`
	Bio string `json:"bio" example:"Soy Alice"`
}

func NewProfileResponse(profile *models.Profile) ProfileResponse {
	return ProfileResponse{ID: profile.ID, Bio: profile.Bio}
}

func NewProfileListResponse(profiles []*models.Profile) []ProfileResponse {
	out := make([]ProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, NewProfileResponse(p))
	}
	return out
}

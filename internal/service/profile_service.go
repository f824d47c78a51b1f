package service

import (
	"context"
	"path/filepath"
	"time"

	"github.com/SnehSutariya72/Vehicle-Vault-backend/internal/model"
	"github.com/SnehSutariya72/Vehicle-Vault-backend/internal/repository"
	"github.com/SnehSutariya72/Vehicle-Vault-backend/pkg/apperrors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

type UpdateProfileRequest struct {
	FullName string `json:"full_name"`
	Bio      string `json:"bio"`
	Phone    string `json:"phone"`
}

type ProfileResponse struct {
	Email          string `json:"email"`
	Name           string `json:"name"`
	FullName       string `json:"full_name,omitempty"`
	Bio            string `json:"bio,omitempty"`
	Phone          string `json:"phone,omitempty"`
	ProfilePicture string `json:"profile_picture,omitempty"`
	UpdatedAt      string `json:"updated_at"`
}

// ProfileService manages the authenticated user's own profile. All
// operations are keyed by the email from the verified token, never by a
// client-supplied id.
type ProfileService interface {
	GetProfile(ctx context.Context, email string) (*ProfileResponse, error)
	UpdateProfile(ctx context.Context, email string, req UpdateProfileRequest) (*ProfileResponse, error)
	// SavePicturePath records a freshly generated picture path for the
	// user and returns it; the handler writes the file itself.
	SavePicturePath(ctx context.Context, email, originalName string) (string, error)
}

type profileService struct {
	users     repository.UserRepository
	uploadDir string
}

// NewProfileService returns a new instance of ProfileService
func NewProfileService(users repository.UserRepository, uploadDir string) ProfileService {
	return &profileService{users: users, uploadDir: uploadDir}
}

func toProfileResponse(user *model.User) *ProfileResponse {
	return &ProfileResponse{
		Email:          user.Email,
		Name:           user.Name,
		FullName:       user.FullName,
		Bio:            user.Bio,
		Phone:          user.Phone,
		ProfilePicture: user.ProfilePicture,
		UpdatedAt:      user.UpdatedAt.Format(time.RFC3339),
	}
}

func (s *profileService) GetProfile(ctx context.Context, email string) (*ProfileResponse, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, storageErr(err, "Profile not found")
	}
	return toProfileResponse(user), nil
}

func (s *profileService) UpdateProfile(ctx context.Context, email string, req UpdateProfileRequest) (*ProfileResponse, error) {
	fields := bson.M{}
	if req.FullName != "" {
		fields["full_name"] = req.FullName
	}
	if req.Bio != "" {
		fields["bio"] = req.Bio
	}
	if req.Phone != "" {
		fields["phone"] = req.Phone
	}

	if len(fields) > 0 {
		if err := s.users.UpdateFieldsByEmail(ctx, email, fields); err != nil {
			return nil, storageErr(err, "Profile not found")
		}
	}
	return s.GetProfile(ctx, email)
}

// SavePicturePath generates a collision-free filename under the upload
// directory, keeping the original extension, and persists it as the
// user's profile picture.
func (s *profileService) SavePicturePath(ctx context.Context, email, originalName string) (string, error) {
	ext := filepath.Ext(originalName)
	if ext == "" {
		return "", apperrors.Validation("Picture file must have an extension")
	}

	path := filepath.Join(s.uploadDir, uuid.NewString()+ext)
	if err := s.users.UpdateFieldsByEmail(ctx, email, bson.M{"profile_picture": path}); err != nil {
		return "", storageErr(err, "Profile not found")
	}
	return path, nil
}

package services

import (
	"context"
	"fmt"

	"github.com/opencampus/campusctl/internal/client/api"
	"github.com/opencampus/campusctl/internal/client/models"
	"github.com/opencampus/campusctl/internal/common"
)

// ProfileService exposes the profile record and avatar upload.
type ProfileService interface {
	Get(ctx context.Context) (*models.Profile, error)
	Update(ctx context.Context, p *models.Profile) (*models.Profile, error)
	UploadAvatar(ctx context.Context, filename string, content []byte) (string, error)
}

type profileService struct {
	client api.Client
}

func NewProfileService(client api.Client) ProfileService {
	return &profileService{client: client}
}

func (p *profileService) Get(ctx context.Context) (*models.Profile, error) {
	return p.client.Profile(ctx)
}

func (p *profileService) Update(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	if profile.FullName == "" {
		return nil, fmt.Errorf("%w: full name must not be empty", common.ErrValidation)
	}
	return p.client.UpdateProfile(ctx, profile)
}

// UploadAvatar validates the file before any network call is made.
func (p *profileService) UploadAvatar(ctx context.Context, filename string, content []byte) (string, error) {
	if filename == "" {
		return "", fmt.Errorf("%w: no file selected", common.ErrValidation)
	}
	if len(content) == 0 {
		return "", fmt.Errorf("%w: file is empty", common.ErrValidation)
	}
	return p.client.UploadAvatar(ctx, filename, content)
}

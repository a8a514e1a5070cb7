package api

import (
	"context"

	"github.com/opencampus/campusctl/internal/client/models"
)

// Client is the transport surface the services consume. Every method is one
// remote call against the campus API.
type Client interface {
	Login(ctx context.Context, identifier, password string) (*models.LoginResponse, error)
	Signup(ctx context.Context, email, password string) (*models.SignupResponse, error)
	Logout(ctx context.Context) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, email, pin, newPassword string) error

	MyCourses(ctx context.Context) ([]models.Course, error)
	ExploreCourses(ctx context.Context) ([]models.Course, error)
	Enroll(ctx context.Context, courseID string) error
	Assignments(ctx context.Context, courseID string) ([]models.Assignment, error)
	Quizzes(ctx context.Context, courseID string) ([]models.Quiz, error)

	Profile(ctx context.Context) (*models.Profile, error)
	UpdateProfile(ctx context.Context, p *models.Profile) (*models.Profile, error)
	UploadAvatar(ctx context.Context, filename string, content []byte) (string, error)
}

package services

import (
	"context"

	"github.com/opencampus/campusctl/internal/client/models"
)

// fakeClient implements api.Client for service unit tests. Outputs are preset
// per method; inputs are captured for assertions.
type fakeClient struct {
	LoginResp *models.LoginResponse
	LoginErr  error

	SignupResp *models.SignupResponse
	SignupErr  error

	LogoutErr error

	ForgotErr error
	ResetErr  error

	MyCoursesRet   []models.Course
	MyCoursesErr   error
	MyCoursesCalls int

	ExploreRet   []models.Course
	ExploreErr   error
	ExploreCalls int

	EnrollErr error

	AssignmentsRet []models.Assignment
	AssignmentsErr error

	QuizzesRet []models.Quiz
	QuizzesErr error

	ProfileRet *models.Profile
	ProfileErr error

	UpdateProfileRet *models.Profile
	UpdateProfileErr error

	UploadAvatarRet string
	UploadAvatarErr error

	LastLoginIdentifier string
	LastLoginPassword   string

	LastSignupEmail    string
	LastSignupPassword string

	LastEnrollCourseID string
	LastCourseID       string

	LastUpdateProfile *models.Profile

	LastUploadFilename string
	LastUploadContent  []byte
	UploadAvatarCalls  int
	LogoutCalls        int
}

func (f *fakeClient) Login(ctx context.Context, identifier, password string) (*models.LoginResponse, error) {
	f.LastLoginIdentifier = identifier
	f.LastLoginPassword = password
	return f.LoginResp, f.LoginErr
}

func (f *fakeClient) Signup(ctx context.Context, email, password string) (*models.SignupResponse, error) {
	f.LastSignupEmail = email
	f.LastSignupPassword = password
	return f.SignupResp, f.SignupErr
}

func (f *fakeClient) Logout(ctx context.Context) error {
	f.LogoutCalls++
	return f.LogoutErr
}

func (f *fakeClient) ForgotPassword(ctx context.Context, email string) error { return f.ForgotErr }

func (f *fakeClient) ResetPassword(ctx context.Context, email, pin, newPassword string) error {
	return f.ResetErr
}

func (f *fakeClient) MyCourses(ctx context.Context) ([]models.Course, error) {
	f.MyCoursesCalls++
	return f.MyCoursesRet, f.MyCoursesErr
}

func (f *fakeClient) ExploreCourses(ctx context.Context) ([]models.Course, error) {
	f.ExploreCalls++
	return f.ExploreRet, f.ExploreErr
}

func (f *fakeClient) Enroll(ctx context.Context, courseID string) error {
	f.LastEnrollCourseID = courseID
	return f.EnrollErr
}

func (f *fakeClient) Assignments(ctx context.Context, courseID string) ([]models.Assignment, error) {
	f.LastCourseID = courseID
	return f.AssignmentsRet, f.AssignmentsErr
}

func (f *fakeClient) Quizzes(ctx context.Context, courseID string) ([]models.Quiz, error) {
	f.LastCourseID = courseID
	return f.QuizzesRet, f.QuizzesErr
}

func (f *fakeClient) Profile(ctx context.Context) (*models.Profile, error) {
	return f.ProfileRet, f.ProfileErr
}

func (f *fakeClient) UpdateProfile(ctx context.Context, p *models.Profile) (*models.Profile, error) {
	f.LastUpdateProfile = p
	return f.UpdateProfileRet, f.UpdateProfileErr
}

func (f *fakeClient) UploadAvatar(ctx context.Context, filename string, content []byte) (string, error) {
	f.UploadAvatarCalls++
	f.LastUploadFilename = filename
	f.LastUploadContent = append([]byte(nil), content...)
	return f.UploadAvatarRet, f.UploadAvatarErr
}

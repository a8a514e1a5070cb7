package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/opencampus/campusctl/internal/client/models"
)

// HTTPClient implements Client over a Gateway.
type HTTPClient struct {
	gw *Gateway
}

func NewHTTPClient(gw *Gateway) *HTTPClient {
	return &HTTPClient{gw: gw}
}

// Login submits credentials form-encoded, password-grant style. The call
// bypasses bearer attachment because it is the credential-issuing call.
func (c *HTTPClient) Login(ctx context.Context, identifier, password string) (*models.LoginResponse, error) {
	form := url.Values{}
	form.Set("username", identifier)
	form.Set("password", password)
	form.Set("grant_type", "password")

	var resp models.LoginResponse
	if err := c.gw.DoJSON(ctx, http.MethodPost, "/auth/login", &resp, WithFormBody(form), WithoutAuth()); err != nil {
		return nil, err
	}
	if resp.AccessToken == "" {
		return nil, errors.New("no token received")
	}
	return &resp, nil
}

func (c *HTTPClient) Signup(ctx context.Context, email, password string) (*models.SignupResponse, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var resp models.SignupResponse
	if err := c.gw.DoJSON(ctx, http.MethodPost, "/auth/signup", &resp, WithJSONBody(body)); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.gw.DoJSON(ctx, http.MethodPost, "/auth/logout", nil)
}

func (c *HTTPClient) ForgotPassword(ctx context.Context, email string) error {
	body := struct {
		Email string `json:"email"`
	}{Email: email}
	return c.gw.DoJSON(ctx, http.MethodPost, "/auth/forgot-password", nil, WithJSONBody(body))
}

func (c *HTTPClient) ResetPassword(ctx context.Context, email, pin, newPassword string) error {
	body := struct {
		Email       string `json:"email"`
		Pin         string `json:"pin"`
		NewPassword string `json:"new_password"`
	}{Email: email, Pin: pin, NewPassword: newPassword}
	return c.gw.DoJSON(ctx, http.MethodPost, "/auth/reset-password", nil, WithJSONBody(body))
}

func (c *HTTPClient) MyCourses(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	if err := c.gw.DoJSON(ctx, http.MethodGet, "/courses/my-courses", &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (c *HTTPClient) ExploreCourses(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	if err := c.gw.DoJSON(ctx, http.MethodGet, "/courses/explore-courses", &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (c *HTTPClient) Enroll(ctx context.Context, courseID string) error {
	path := fmt.Sprintf("/courses/%s/enroll", url.PathEscape(courseID))
	return c.gw.DoJSON(ctx, http.MethodPost, path, nil)
}

func (c *HTTPClient) Assignments(ctx context.Context, courseID string) ([]models.Assignment, error) {
	path := fmt.Sprintf("/courses/%s/assignments", url.PathEscape(courseID))
	var assignments []models.Assignment
	if err := c.gw.DoJSON(ctx, http.MethodGet, path, &assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}

func (c *HTTPClient) Quizzes(ctx context.Context, courseID string) ([]models.Quiz, error) {
	path := fmt.Sprintf("/quizzes/courses/%s/quizzes", url.PathEscape(courseID))
	var quizzes []models.Quiz
	if err := c.gw.DoJSON(ctx, http.MethodGet, path, &quizzes); err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (c *HTTPClient) Profile(ctx context.Context) (*models.Profile, error) {
	var p models.Profile
	if err := c.gw.DoJSON(ctx, http.MethodGet, "/profile/profile", &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, p *models.Profile) (*models.Profile, error) {
	var updated models.Profile
	if err := c.gw.DoJSON(ctx, http.MethodPut, "/profile/profile", &updated, WithJSONBody(p)); err != nil {
		return nil, err
	}
	return &updated, nil
}

// UploadAvatar sends the file as a multipart upload. The multipart writer
// owns the content type here; the gateway must not override it with JSON.
func (c *HTTPClient) UploadAvatar(ctx context.Context, filename string, content []byte) (string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := fw.Write(content); err != nil {
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	var resp models.AvatarUploadResponse
	if err := c.gw.DoJSON(ctx, http.MethodPost, "/profile/profile/avatar", &resp, WithRawBody(w.FormDataContentType(), &buf)); err != nil {
		return "", err
	}
	return resp.AvatarURL, nil
}

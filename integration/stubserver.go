// Package integration exercises the full client stack — credential store,
// request gateway, services and session — against an in-process campus API
// stub.
package integration

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"

	"github.com/opencampus/campusctl/internal/client/models"
)

var stubSigningKey = []byte("integration-signing-key")

// StubServer is an in-process campus API good enough for end-to-end client
// tests. It issues signed tokens on login and guards every non-auth endpoint
// with a bearer check, so the client's attach/expire behavior can be observed
// for real.
type StubServer struct {
	*httptest.Server

	mu      sync.Mutex
	tokens  map[string]bool // issued token -> valid
	users   map[string]string
	profile models.Profile

	enrolled map[string]bool

	// request counters: cache behavior and the authenticated logout notify
	MyCoursesHits int
	LogoutHits    int
}

// NewStubServer starts a stub campus API with one registered user.
func NewStubServer() *StubServer {
	s := &StubServer{
		tokens: make(map[string]bool),
		users:  map[string]string{"alice@example.org": "secret"},
		profile: models.Profile{
			FullName: "Alice Cooper",
			Email:    "alice@example.org",
			Bio:      "Gopher.",
		},
		enrolled: make(map[string]bool),
	}

	r := mux.NewRouter()
	r.HandleFunc("/auth/login", s.login).Methods("POST")
	r.HandleFunc("/auth/signup", s.signup).Methods("POST")
	r.HandleFunc("/auth/logout", s.withAuth(s.logout)).Methods("POST")
	r.HandleFunc("/auth/forgot-password", s.accept).Methods("POST")
	r.HandleFunc("/auth/reset-password", s.accept).Methods("POST")
	r.HandleFunc("/courses/my-courses", s.withAuth(s.myCourses)).Methods("GET")
	r.HandleFunc("/courses/explore-courses", s.withAuth(s.exploreCourses)).Methods("GET")
	r.HandleFunc("/courses/{id}/enroll", s.withAuth(s.enroll)).Methods("POST")
	r.HandleFunc("/courses/{id}/assignments", s.withAuth(s.assignments)).Methods("GET")
	r.HandleFunc("/quizzes/courses/{id}/quizzes", s.withAuth(s.quizzes)).Methods("GET")
	r.HandleFunc("/profile/profile", s.withAuth(s.getProfile)).Methods("GET")
	r.HandleFunc("/profile/profile", s.withAuth(s.putProfile)).Methods("PUT")
	r.HandleFunc("/profile/profile/avatar", s.withAuth(s.uploadAvatar)).Methods("POST")

	s.Server = httptest.NewServer(r)
	return s
}

// RevokeTokens invalidates every issued token, so the next guarded request
// fails with 401 the way an expired server-side session would.
func (s *StubServer) RevokeTokens() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for tok := range s.tokens {
		s.tokens[tok] = false
	}
}

// Enrolled reports whether the course was enrolled during the test.
func (s *StubServer) Enrolled(courseID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enrolled[courseID]
}

func (s *StubServer) issueToken(email string) (string, error) {
	claims := models.TokenClaims{
		UserID:   "u-1",
		Email:    email,
		FullName: "Alice Cooper",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(stubSigningKey)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	s.tokens[tok] = true
	s.mu.Unlock()
	return tok, nil
}

func (s *StubServer) withAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok {
			writeError(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		s.mu.Lock()
		valid := s.tokens[token]
		s.mu.Unlock()
		if !valid {
			writeError(w, http.StatusUnauthorized, "Token expired")
			return
		}
		next(w, r)
	}
}

func (s *StubServer) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "malformed form")
		return
	}
	email := r.PostFormValue("username")
	if pw, ok := s.users[email]; !ok || pw != r.PostFormValue("password") {
		// a failed grant is a 400, not a 401: there is no session to expire
		writeError(w, http.StatusBadRequest, "Invalid credentials")
		return
	}

	tok, err := s.issueToken(email)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "token signing failed")
		return
	}
	writeJSON(w, http.StatusOK, models.LoginResponse{
		Message:     "Login successful",
		AccessToken: tok,
		UserID:      "u-1",
		Email:       email,
		FullName:    "Alice Cooper",
	})
}

func (s *StubServer) signup(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Email == "" {
		writeError(w, http.StatusBadRequest, "email is required")
		return
	}
	s.mu.Lock()
	s.users[body.Email] = body.Password
	s.mu.Unlock()
	writeJSON(w, http.StatusCreated, models.SignupResponse{
		ID: "u-2", Email: body.Email, Role: "student", IsActive: true,
	})
}

func (s *StubServer) logout(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	s.LogoutHits++
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

func (s *StubServer) accept(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func (s *StubServer) myCourses(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	s.MyCoursesHits++
	courses := []models.Course{
		{ID: "go-101", Title: "Intro to Go", Progress: 40, NextLesson: "Interfaces"},
	}
	for id := range s.enrolled {
		courses = append(courses, models.Course{ID: id, Title: "Enrolled " + id})
	}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, courses)
}

func (s *StubServer) exploreCourses(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, []models.Course{
		{ID: "go-201", Title: "Concurrency Patterns", Duration: "6 weeks", Students: 1200, Price: "Free"},
		{ID: "db-101", Title: "SQL Foundations", Duration: "4 weeks", Students: 800, Price: "$49"},
	})
}

func (s *StubServer) enroll(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	s.mu.Lock()
	s.enrolled[id] = true
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]string{"message": "Enrolled in " + id})
}

func (s *StubServer) assignments(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	writeJSON(w, http.StatusOK, []models.Assignment{
		{ID: "a-1", CourseID: id, Title: "Worksheet 1", DueDate: "2026-09-15", Status: "pending", Points: 10},
	})
}

func (s *StubServer) quizzes(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	writeJSON(w, http.StatusOK, []models.Quiz{
		{ID: "q-1", CourseID: id, Title: "Checkpoint", Questions: 5, Duration: "10 min", Status: "open"},
	})
}

func (s *StubServer) getProfile(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	p := s.profile
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, p)
}

func (s *StubServer) putProfile(w http.ResponseWriter, r *http.Request) {
	var p models.Profile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "malformed profile")
		return
	}
	s.mu.Lock()
	s.profile.FullName = p.FullName
	s.profile.Bio = p.Bio
	p = s.profile
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, p)
}

func (s *StubServer) uploadAvatar(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file field missing")
		return
	}
	defer file.Close()
	if _, err := io.Copy(io.Discard, file); err != nil {
		writeError(w, http.StatusInternalServerError, "read failed")
		return
	}

	url := "/media/avatars/" + header.Filename
	s.mu.Lock()
	s.profile.AvatarURL = &url
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, models.AvatarUploadResponse{AvatarURL: url})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

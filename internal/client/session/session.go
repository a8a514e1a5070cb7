// Package session holds the client-side authentication state: who is signed
// in, derived from the stored credential and the auth service. The session is
// an explicit object handed to its consumers, not package-level state.
package session

import (
	"context"
	"sync"

	"github.com/golang-jwt/jwt/v5"

	"github.com/opencampus/campusctl/internal/client/models"
	"github.com/opencampus/campusctl/internal/client/repositories/credentials"
	"github.com/opencampus/campusctl/internal/client/services"
	"github.com/opencampus/campusctl/internal/logging"
)

// placeholderUserID marks an identity synthesized from a stored token that
// carried no readable claims. It is replaced by the real identity on the next
// login.
const placeholderUserID = "pending"

// Session tracks the current user. The invariant is simple: authenticated iff
// the user record is non-nil. The session is the sole owner of credential
// teardown; the gateway only reports expiry.
type Session struct {
	mu   sync.Mutex
	user *models.User

	store credentials.Store
	auth  services.AuthService
	log   logging.Logger
}

func New(store credentials.Store, auth services.AuthService, log logging.Logger) *Session {
	return &Session{store: store, auth: auth, log: log}
}

func (s *Session) setUser(u *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = u
}

// User returns the current identity record, or nil when anonymous.
func (s *Session) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// IsAuthenticated reports whether a user record is present.
func (s *Session) IsAuthenticated() bool {
	return s.User() != nil
}

// Restore checks for a stored credential at startup and, when one is found,
// reconstructs the identity from the token's claims without a server
// round-trip. The identity is provisional: a token the server no longer
// accepts surfaces as a session-expired error on the first call, and Expire
// tears the session down then. Restore never fails; any problem degrades to
// the anonymous state.
func (s *Session) Restore(ctx context.Context) {
	token, err := s.store.Load(ctx)
	if err != nil {
		s.log.Warn(ctx, "credential check failed, starting anonymous", "error", err)
		return
	}
	if token == "" {
		return
	}
	s.setUser(userFromToken(token))
	s.log.Info(ctx, "session restored from stored credential")
}

// userFromToken recovers an identity from unverified token claims. Opaque
// (non-JWT) tokens yield a placeholder identity, matching the pre-existing
// optimistic behavior.
func userFromToken(token string) *models.User {
	var claims models.TokenClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return &models.User{ID: placeholderUserID}
	}

	id := claims.UserID
	if id == "" {
		id = claims.Subject
	}
	if id == "" {
		id = placeholderUserID
	}
	return &models.User{
		ID:       id,
		Email:    claims.Email,
		FullName: claims.FullName,
	}
}

// Login authenticates and transitions to the authenticated state. On failure
// the session stays anonymous and the error propagates unchanged for the UI
// to surface.
func (s *Session) Login(ctx context.Context, identifier, password string) error {
	user, err := s.auth.Login(ctx, identifier, password)
	if err != nil {
		return err
	}
	s.setUser(user)
	return nil
}

// Signup creates an account. It never transitions the session; the caller
// directs the user to log in afterwards.
func (s *Session) Signup(ctx context.Context, email, password string) error {
	_, err := s.auth.Signup(ctx, email, password)
	return err
}

// Logout tears the session down unconditionally. The remote notification is
// best-effort: its failure is logged and swallowed, because the local session
// must always be terminable.
func (s *Session) Logout(ctx context.Context) {
	s.setUser(nil)
	if err := s.auth.Logout(ctx); err != nil {
		s.log.Warn(ctx, "logout cleanup incomplete", "error", err)
	}
}

// Expire handles a session-expired signal from any remote call: local
// teardown only, no remote notification.
func (s *Session) Expire(ctx context.Context) {
	s.setUser(nil)
	if err := s.store.Clear(ctx); err != nil {
		s.log.Warn(ctx, "failed to clear expired credential", "error", err)
	}
}

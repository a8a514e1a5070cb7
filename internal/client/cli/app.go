// Package cli implements the interactive campusctl client: a command loop
// over the session, course and profile services, with a login gate in front
// of the authenticated commands.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"

	_ "modernc.org/sqlite"

	"github.com/opencampus/campusctl/internal/client/api"
	"github.com/opencampus/campusctl/internal/client/config"
	"github.com/opencampus/campusctl/internal/client/repositories/credentials"
	"github.com/opencampus/campusctl/internal/client/services"
	"github.com/opencampus/campusctl/internal/client/session"
	"github.com/opencampus/campusctl/internal/logging"
)

type App struct {
	config  *config.Config
	session *session.Session
	auth    services.AuthService
	courses services.CourseService
	profile services.ProfileService
	log     logging.Logger
	reader  *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	db, err := credentials.Open(ctx, c.CredentialDBPath)
	if err != nil {
		logger.Error(ctx, "error initializing local database", "error", err)
		return nil, err
	}

	store := credentials.NewSQLiteStore(db, c.CredentialTTL)
	gateway := api.NewGateway(c.APIBaseURL, store, c.RequestTimeout, logger)
	apiClient := api.NewHTTPClient(gateway)

	authService := services.NewAuthService(apiClient, store)

	return &App{
		config:  c,
		session: session.New(store, authService, logger),
		auth:    authService,
		courses: services.NewCourseService(apiClient, c.ListingCacheTTL),
		profile: services.NewProfileService(apiClient),
		log:     logger,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) expireSession(ctx context.Context) {
	a.session.Expire(ctx)
}

// getStatus renders the prompt suffix: the signed-in identity, or nothing
// when anonymous.
func (a *App) getStatus() string {
	u := a.session.User()
	if u == nil {
		return ""
	}
	name := u.FullName
	if name == "" {
		name = u.Email
	}
	if name == "" {
		name = u.ID
	}
	return fmt.Sprintf("(%s)", name)
}

// Run restores the session from any stored credential, then hands control to
// the command loop. The restore happens before the first prompt is printed,
// so a returning user never sees an anonymous flash.
func (a *App) Run(ctx context.Context) {
	a.session.Restore(ctx)
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

package cli

import (
	"context"
	"testing"

	"github.com/opencampus/campusctl/internal/client/models"
)

func TestGetStatus(t *testing.T) {
	tests := []struct {
		name string
		user *models.User
		want string
	}{
		{"anonymous", nil, ""},
		{"full name", &models.User{ID: "u-1", Email: "a@b.c", FullName: "Alice Cooper"}, "(Alice Cooper)"},
		{"email fallback", &models.User{ID: "u-1", Email: "a@b.c"}, "(a@b.c)"},
		{"id fallback", &models.User{ID: "u-1"}, "(u-1)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeAuthSvc{loginUser: tt.user}
			a := newTestApp(f)
			if tt.user != nil {
				stubInputs(t, []string{"x"}, []byte("pw"))
				if err := a.Login(context.Background()); err != nil {
					t.Fatalf("Login err: %v", err)
				}
			}
			if got := a.getStatus(); got != tt.want {
				t.Fatalf("getStatus() = %q, want %q", got, tt.want)
			}
		})
	}
}

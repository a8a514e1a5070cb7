package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/opencampus/campusctl/internal/client/api"
	"github.com/opencampus/campusctl/internal/common"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			"transport failure",
			fmt.Errorf("%w: connection refused", api.ErrUnavailable),
			"the server is unreachable, please try again",
		},
		{
			"server reason",
			&api.APIError{Status: 403, Message: "Enrollment is closed"},
			"Enrollment is closed",
		},
		{
			"validation",
			fmt.Errorf("%w: full name is required", common.ErrValidation),
			"validation error: full name is required",
		},
		{
			"plain error",
			errors.New("boom"),
			"boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := userMessage(tt.err); got != tt.want {
				t.Fatalf("userMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

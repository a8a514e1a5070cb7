package cli

import (
	"errors"

	"github.com/opencampus/campusctl/internal/client/api"
	"github.com/opencampus/campusctl/internal/common"
)

// userMessage turns an error into the message shown to the user: the
// server-supplied reason when there is one, a retry prompt for transport
// failures, the raw error otherwise.
func userMessage(err error) string {
	var apiErr *api.APIError
	switch {
	case errors.Is(err, api.ErrUnavailable):
		return "the server is unreachable, please try again"
	case errors.Is(err, common.ErrValidation):
		return err.Error()
	case errors.As(err, &apiErr):
		return apiErr.Message
	default:
		return err.Error()
	}
}

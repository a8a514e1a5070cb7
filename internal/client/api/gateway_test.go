package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/opencampus/campusctl/internal/logging"
)

type staticCreds struct {
	token string
	err   error
}

func (s *staticCreds) Load(ctx context.Context) (string, error) { return s.token, s.err }

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestGateway(t *testing.T, handler http.HandlerFunc, creds CredentialSource) (*Gateway, *httptest.Server) {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return NewGateway(ts.URL, creds, 5*time.Second, testLogger()), ts
}

func TestGateway_AttachesBearerIffCredentialPresent(t *testing.T) {
	var gotAuth string
	handler := func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}

	t.Run("credential present", func(t *testing.T) {
		gw, _ := newTestGateway(t, handler, &staticCreds{token: "T1"})
		_, err := gw.Do(context.Background(), http.MethodGet, "/courses/my-courses")
		require.NoError(t, err)
		require.Equal(t, "Bearer T1", gotAuth)
	})

	t.Run("credential absent", func(t *testing.T) {
		gw, _ := newTestGateway(t, handler, &staticCreds{})
		_, err := gw.Do(context.Background(), http.MethodGet, "/courses/my-courses")
		require.NoError(t, err)
		require.Empty(t, gotAuth)
	})

	t.Run("load error treated as absence", func(t *testing.T) {
		gw, _ := newTestGateway(t, handler, &staticCreds{err: errors.New("disk gone")})
		_, err := gw.Do(context.Background(), http.MethodGet, "/courses/my-courses")
		require.NoError(t, err)
		require.Empty(t, gotAuth)
	})

	t.Run("WithoutAuth suppresses attachment", func(t *testing.T) {
		gw, _ := newTestGateway(t, handler, &staticCreds{token: "T1"})
		_, err := gw.Do(context.Background(), http.MethodPost, "/auth/login", WithoutAuth())
		require.NoError(t, err)
		require.Empty(t, gotAuth)
	})
}

func TestGateway_Unauthorized_MapsToSessionExpired(t *testing.T) {
	gw, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}, &staticCreds{token: "stale"})

	_, err := gw.Do(context.Background(), http.MethodGet, "/profile/profile")
	require.ErrorIs(t, err, ErrSessionExpired)
}

func TestGateway_NonSuccess_MapsToAPIError(t *testing.T) {
	t.Run("structured detail body", func(t *testing.T) {
		gw, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte(`{"detail":"already enrolled"}`))
		}, &staticCreds{token: "T1"})

		_, err := gw.Do(context.Background(), http.MethodPost, "/courses/c1/enroll")

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusConflict, apiErr.Status)
		require.Equal(t, "already enrolled", apiErr.Message)
		require.NotErrorIs(t, err, ErrSessionExpired)
	})

	t.Run("unparseable body falls back to status text", func(t *testing.T) {
		gw, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("<html>oops</html>"))
		}, &staticCreds{})

		_, err := gw.Do(context.Background(), http.MethodGet, "/courses/my-courses")

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusText(http.StatusBadGateway), apiErr.Message)
	})
}

func TestGateway_EmptyAndNonJSONBodies_YieldNil(t *testing.T) {
	t.Run("204 no content", func(t *testing.T) {
		gw, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, &staticCreds{token: "T1"})

		data, err := gw.Do(context.Background(), http.MethodPost, "/auth/logout")
		require.NoError(t, err)
		require.Nil(t, data)
	})

	t.Run("200 with plain-text body", func(t *testing.T) {
		gw, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/plain")
			_, _ = w.Write([]byte("ok"))
		}, &staticCreds{})

		data, err := gw.Do(context.Background(), http.MethodGet, "/health")
		require.NoError(t, err)
		require.Nil(t, data)
	})
}

func TestGateway_TransportFailure_WrapsUnavailable(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	ts.Close()

	gw := NewGateway(ts.URL, &staticCreds{}, time.Second, testLogger())
	_, err := gw.Do(context.Background(), http.MethodGet, "/courses/my-courses")
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestGateway_ContentTypeDefaulting(t *testing.T) {
	var gotCT string
	handler := func(w http.ResponseWriter, r *http.Request) {
		gotCT = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusNoContent)
	}

	t.Run("json body", func(t *testing.T) {
		gw, _ := newTestGateway(t, handler, &staticCreds{})
		_, err := gw.Do(context.Background(), http.MethodPost, "/auth/forgot-password",
			WithJSONBody(map[string]string{"email": "a@b.com"}))
		require.NoError(t, err)
		require.Equal(t, "application/json", gotCT)
	})

	t.Run("form body", func(t *testing.T) {
		gw, _ := newTestGateway(t, handler, &staticCreds{})
		form := url.Values{}
		form.Set("username", "a@b.com")
		_, err := gw.Do(context.Background(), http.MethodPost, "/auth/login", WithFormBody(form))
		require.NoError(t, err)
		require.Equal(t, "application/x-www-form-urlencoded", gotCT)
	})

	t.Run("raw body keeps caller content type", func(t *testing.T) {
		gw, _ := newTestGateway(t, handler, &staticCreds{})
		ct := "multipart/form-data; boundary=xyz"
		_, err := gw.Do(context.Background(), http.MethodPost, "/profile/profile/avatar",
			WithRawBody(ct, strings.NewReader("--xyz--")))
		require.NoError(t, err)
		require.Equal(t, ct, gotCT)
	})
}

func TestGateway_SetsRequestID(t *testing.T) {
	var got string
	gw, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("X-Request-Id")
		w.WriteHeader(http.StatusNoContent)
	}, &staticCreds{})

	_, err := gw.Do(context.Background(), http.MethodGet, "/courses/my-courses")
	require.NoError(t, err)
	require.NotEmpty(t, got)
}

func TestGateway_DoJSON_DecodesInto(t *testing.T) {
	gw, _ := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"full_name":"A B","email":"a@b.com"}`))
	}, &staticCreds{token: "T1"})

	var out struct {
		FullName string `json:"full_name"`
		Email    string `json:"email"`
	}
	require.NoError(t, gw.DoJSON(context.Background(), http.MethodGet, "/profile/profile", &out))
	require.Equal(t, "A B", out.FullName)
	require.Equal(t, "a@b.com", out.Email)
}

package replyapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CrestNiraj12/replydesk/infra/auth"
)

func newTestServer(t *testing.T, r chi.Router) *Client {
	t.Helper()
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", auth.StaticToken("tok"), time.Second, nil)
}

func TestClient_ErrorMessagePrefersServerMessage(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/message", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"comment already replied","error":"Bad Request"}`))
	})
	r.Get("/error", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"error":"graph api unavailable"}`))
	})
	r.Get("/plain", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<html>oops</html>`))
	})
	c := newTestServer(t, r)
	ctx := context.Background()

	err := c.Get(ctx, "/message", nil, nil)
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "comment already replied", err.Error())

	err = c.Get(ctx, "/error", nil, nil)
	assert.EqualError(t, err, "graph api unavailable")

	err = c.Get(ctx, "/plain", nil, nil)
	assert.EqualError(t, err, "Internal Server Error (500)")
}

func TestClient_TransportErrorUsesTransportText(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewClient(url, nil, time.Second, nil)
	err := c.Get(context.Background(), "/anything", nil, nil)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Zero(t, apiErr.Status)
	assert.NotEmpty(t, apiErr.Message)
	assert.NotEqual(t, genericMessage, apiErr.Message)
	assert.NotNil(t, errors.Unwrap(err))
}

func TestTransportError_FallsBackToGenericMessage(t *testing.T) {
	assert.Equal(t, genericMessage, transportError(nil).Message)
	assert.Equal(t, genericMessage, transportError(errors.New("  ")).Message)
}

func TestClient_SendsBearerOnlyWhenConfigured(t *testing.T) {
	var got []string
	r := chi.NewRouter()
	r.Get("/ping", func(w http.ResponseWriter, req *http.Request) {
		got = append(got, req.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNoContent)
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	require.NoError(t, NewClient(srv.URL, auth.StaticToken("tok"), 0, nil).Get(context.Background(), "/ping", nil, nil))
	require.NoError(t, NewClient(srv.URL, nil, 0, nil).Get(context.Background(), "/ping", nil, nil))
	assert.Equal(t, []string{"Bearer tok", ""}, got)
}

func TestSanitizeForTerminal_RemovesEscapesAndControls(t *testing.T) {
	in := "ok\x1b[31mred\x1b[0m\x01\x02 line\nnext\x7f"
	assert.Equal(t, "okred line\nnext", sanitizeForTerminal(in))
}

func TestMessage_UnwrapsServiceError(t *testing.T) {
	wrapped := fmt.Errorf("replying to comment: %w", &Error{Status: 400, Message: "comment already replied"})
	assert.Equal(t, "comment already replied", Message(wrapped))
	assert.Equal(t, "replying to comment: comment already replied", wrapped.Error())

	plain := errors.New("keyword is required")
	assert.Equal(t, "keyword is required", Message(plain))
	assert.Equal(t, "", Message(nil))

	blank := fmt.Errorf("listing: %w", &Error{Message: "  "})
	assert.Equal(t, blank.Error(), Message(blank))
}

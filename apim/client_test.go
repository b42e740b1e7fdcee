package apim

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/eisenwinter/apicportal/config"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := New(zaptest.NewLogger(t), &config.PortalConfiguration{
		ConsumerAPI: srv.URL + "/consumer-api",
		APIToken:    "service-token",
	})
	assert.NoError(t, err)
	return c
}

func TestRemoveFullyQualifiedURL(t *testing.T) {
	cases := map[string]string{
		"https://apim.example.com/consumer-api/orgs/1/apps/2": "/orgs/1/apps/2",
		"https://apim.example.com/orgs/1":                     "/orgs/1",
		"/consumer-api/orgs/1":                                "/orgs/1",
		"/orgs/1":                                             "/orgs/1",
		"/consumer-apis/1":                                    "/consumer-apis/1",
		"":                                                    "",
	}
	for in, expected := range cases {
		assert.Equal(t, expected, RemoveFullyQualifiedURL(in, "/consumer-api"), in)
	}
}

func TestApplicationDetails(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/consumer-api/apps/org/cat/a1", r.URL.Path)
		assert.Equal(t, "Bearer service-token", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"id":"a1","name":"App","timestamp":100}`))
	})
	app, err := c.ApplicationDetails(context.Background(), "https://apim.example.com/consumer-api/apps/org/cat/a1")
	assert.NoError(t, err)
	assert.Equal(t, "a1", app["id"])
	assert.Equal(t, json.Number("100"), app["timestamp"])
}

func TestApplicationDetailsErrorsDocument(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"errors":[{"message":"not found"}]}`))
	})
	app, err := c.ApplicationDetails(context.Background(), "/apps/x")
	assert.Nil(t, app)
	assert.ErrorIs(t, err, ErrRemoteError)
}

func TestApplicationDetailsInvalidJSON(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>`))
	})
	_, err := c.ApplicationDetails(context.Background(), "/apps/x")
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestChangePassword(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/consumer-api/me/change-password", r.URL.Path)
		assert.Equal(t, "andrea", r.Header.Get("X-IBM-Consumer-User"))
		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body["current_password"] != "old" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"errors":[{"message":"wrong password"}]}`))
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
	ok, err := c.ChangePassword(context.Background(), "andrea", "old", "new")
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.ChangePassword(context.Background(), "andrea", "wrong", "new")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestNewRequiresConsumerAPI(t *testing.T) {
	_, err := New(zaptest.NewLogger(t), &config.PortalConfiguration{})
	assert.Error(t, err)
}

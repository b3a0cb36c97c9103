package githubapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(url string, maxRetries uint64) *Client {
	return NewClient(url, 2*time.Second, maxRetries, zap.NewNop())
}

func TestCreateDecodesIDAndStatus(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/gists", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"abc123"}`))
	}))
	defer srv.Close()

	res, err := newTestClient(srv.URL, 0).Create(context.Background(), "gho_token", "Hello", "body text")
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, res.Status)
	assert.Equal(t, "abc123", res.ID)
	assert.Equal(t, "Bearer gho_token", gotAuth)
}

func TestCreateRetriesServerErrors(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	res, err := newTestClient(srv.URL, 2).Create(context.Background(), "gho_token", "Hello", "body text")
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, res.Status)
	assert.Equal(t, 3, calls, "initial attempt plus two retries")
}

func TestCreateDoesNotRetryClientErrors(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"Validation Failed"}`))
	}))
	defer srv.Close()

	res, err := newTestClient(srv.URL, 3).Create(context.Background(), "gho_token", "Hello", "body text")
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnprocessableEntity, res.Status)
	assert.Equal(t, 1, calls)
}

func TestCreateTimesOut(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 20*time.Millisecond, 0, zap.NewNop())
	res, err := c.Create(context.Background(), "gho_token", "Hello", "body text")

	require.Error(t, err)
	assert.Zero(t, res.Status)
}

func TestUpdatePatchesGist(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.Equal(t, "/gists/abc123", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"abc123"}`))
	}))
	defer srv.Close()

	res, err := newTestClient(srv.URL, 0).Update(context.Background(), "gho_token", "abc123", "new body")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, res.Status)
	assert.Equal(t, "abc123", res.ID)
}

func TestFetchReturnsArticleFileContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/gists/abc123", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"abc123","files":{"article.md":{"content":"body text"}}}`))
	}))
	defer srv.Close()

	res, err := newTestClient(srv.URL, 0).Fetch(context.Background(), "gho_token", "abc123")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, res.Status)
	assert.Equal(t, "body text", res.Content)
}

func TestProfileAndPrimaryEmail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/user":
			w.Write([]byte(`{"login":"alice","name":"Alice"}`))
		case "/user/emails":
			w.Write([]byte(`[{"email":"noreply@example.com","primary":false},{"email":"alice@example.com","primary":true}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, 0)

	profile, err := c.Profile(context.Background(), "gho_token")
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.Login)
	assert.Equal(t, "Alice", profile.Name)

	email, status, err := c.PrimaryEmail(context.Background(), "gho_token")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	require.NotNil(t, email)
	assert.Equal(t, "alice@example.com", *email)
}

func TestPrimaryEmailNonePrimary(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"email":"noreply@example.com","primary":false}]`))
	}))
	defer srv.Close()

	email, status, err := newTestClient(srv.URL, 0).PrimaryEmail(context.Background(), "gho_token")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Nil(t, email)
}

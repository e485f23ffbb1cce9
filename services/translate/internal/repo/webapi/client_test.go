package webapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"socialhub/services/translate/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostClient_GetPost(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/posts/p1", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.Write([]byte(`{"id":"p1","title":"Hi","content":"There","created_at":"2024-01-02T03:04:05Z","updated_at":null}`))
	}))
	defer server.Close()

	post, err := NewPostClient(server.URL+"/").GetPost(context.Background(), "p1", "Bearer tok")
	require.NoError(t, err)
	assert.Equal(t, "Hi", post.Title)
	assert.Equal(t, "There", post.Content)
	assert.Nil(t, post.UpdatedAt)
}

func TestPostClient_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"post not found"}`))
	}))
	defer server.Close()

	_, err := NewPostClient(server.URL).GetPost(context.Background(), "nope", "")
	assert.ErrorIs(t, err, entity.ErrPostNotFound)
}

func TestPostClient_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := NewPostClient(server.URL).GetPost(context.Background(), "p1", "")
	require.Error(t, err)
	assert.NotErrorIs(t, err, entity.ErrPostNotFound)
}

func TestProfileClient_Language(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/profiles/me", r.URL.Path)
		if r.Header.Get("Authorization") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`{"id":"u1","language":"ko"}`))
	}))
	defer server.Close()

	client := NewProfileClient(server.URL)

	lang, err := client.Language(context.Background(), "Bearer tok")
	require.NoError(t, err)
	assert.Equal(t, "ko", lang)

	_, err = client.Language(context.Background(), "")
	assert.Error(t, err)
}

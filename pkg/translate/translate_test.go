package translate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate_EmptyTargetSkipsBackend(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer server.Close()

	client := NewClient(server.URL, "key")
	out, err := client.Translate(context.Background(), "hello", "", "")

	assert.NoError(t, err)
	assert.Equal(t, "hello", out)
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestTranslate_MissingKey(t *testing.T) {
	client := NewClient("http://unused", "")
	_, err := client.Translate(context.Background(), "hello", "fr", "")

	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestTranslate_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/language/translate/v2", r.URL.Path)
		assert.Equal(t, "secret", r.URL.Query().Get("key"))

		var req translateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "hello", req.Q)
		assert.Equal(t, "fr", req.Target)
		assert.Equal(t, "text", req.Format)
		assert.Equal(t, "en", req.Source)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"translations":[{"translatedText":"bonjour"}]}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL+"/", "secret")
	out, err := client.Translate(context.Background(), "hello", "fr", "en")

	assert.NoError(t, err)
	assert.Equal(t, "bonjour", out)
}

func TestTranslate_OmitsEmptySource(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var raw map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		_, hasSource := raw["source"]
		assert.False(t, hasSource)
		w.Write([]byte(`{"data":{"translations":[{"translatedText":"hola"}]}}`))
	}))
	defer server.Close()

	out, err := NewClient(server.URL, "k").Translate(context.Background(), "hello", "es", "")
	assert.NoError(t, err)
	assert.Equal(t, "hola", out)
}

func TestTranslate_BackendError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"code":400,"message":"Invalid Value"}}`))
	}))
	defer server.Close()

	_, err := NewClient(server.URL, "k").Translate(context.Background(), "hello", "xx", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid Value")
}

func TestTranslate_NoTranslations(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"translations":[]}}`))
	}))
	defer server.Close()

	_, err := NewClient(server.URL, "k").Translate(context.Background(), "hello", "de", "")
	assert.Error(t, err)
}

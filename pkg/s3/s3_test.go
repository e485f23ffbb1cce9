package s3

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicURL_AWS(t *testing.T) {
	url := publicURL("", "eu-west-1", false, "post-images", "posts/u1/a.png")
	assert.Equal(t, "https://post-images.s3.eu-west-1.amazonaws.com/posts/u1/a.png", url)
}

func TestPublicURL_DefaultRegion(t *testing.T) {
	url := publicURL("", "", false, "avatars", "avatars/u1/b.jpg")
	assert.Equal(t, "https://avatars.s3.us-east-1.amazonaws.com/avatars/u1/b.jpg", url)
}

func TestPublicURL_MinIO(t *testing.T) {
	url := publicURL("http://localhost:9000", "us-east-1", true, "post-images", "posts/u1/a.png")
	assert.Equal(t, "http://localhost:9000/post-images/posts/u1/a.png", url)
}

func TestKeyFromURL(t *testing.T) {
	key, ok := KeyFromURL("post-images", "https://post-images.s3.eu-west-1.amazonaws.com/posts/u1/a.png")
	assert.True(t, ok)
	assert.Equal(t, "posts/u1/a.png", key)

	key, ok = KeyFromURL("post-images", "http://localhost:9000/post-images/posts/u1/a.png")
	assert.True(t, ok)
	assert.Equal(t, "posts/u1/a.png", key)

	_, ok = KeyFromURL("avatars", "http://localhost:9000/post-images/posts/u1/a.png")
	assert.False(t, ok)
}

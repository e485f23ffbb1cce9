package webapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"socialhub/services/translate/internal/entity"
)

type PostClient struct {
	baseURL string
}

func NewPostClient(baseURL string) *PostClient {
	return &PostClient{baseURL: strings.TrimRight(baseURL, "/")}
}

func (c *PostClient) GetPost(ctx context.Context, postID, authToken string) (*entity.Post, error) {
	endpoint := fmt.Sprintf("%s/api/v1/posts/%s", c.baseURL, url.PathEscape(postID))

	var post entity.Post
	err := getJSON(ctx, "post", endpoint, authToken, &post)
	var se *statusError
	if errors.As(err, &se) && se.status == http.StatusNotFound {
		return nil, entity.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch post %s: %w", postID, err)
	}
	return &post, nil
}

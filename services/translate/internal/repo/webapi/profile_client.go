package webapi

import (
	"context"
	"fmt"
	"strings"
)

type ProfileClient struct {
	baseURL string
}

func NewProfileClient(baseURL string) *ProfileClient {
	return &ProfileClient{baseURL: strings.TrimRight(baseURL, "/")}
}

// Language returns the preferred language of the caller identified by authToken.
func (c *ProfileClient) Language(ctx context.Context, authToken string) (string, error) {
	var profile struct {
		Language string `json:"language"`
	}
	if err := getJSON(ctx, "profile", c.baseURL+"/api/v1/profiles/me", authToken, &profile); err != nil {
		return "", fmt.Errorf("failed to fetch profile: %w", err)
	}
	return profile.Language, nil
}

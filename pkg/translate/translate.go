package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

var ErrNotConfigured = errors.New("translation API key is not configured")

// Translator is what the translate service depends on.
type Translator interface {
	Translate(ctx context.Context, text, target, source string) (string, error)
}

// Client talks to a Google Translate v2 compatible backend.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type translateRequest struct {
	Q      string `json:"q"`
	Target string `json:"target"`
	Format string `json:"format"`
	Source string `json:"source,omitempty"`
}

type translateResponse struct {
	Data struct {
		Translations []struct {
			TranslatedText         string `json:"translatedText"`
			DetectedSourceLanguage string `json:"detectedSourceLanguage"`
		} `json:"translations"`
	} `json:"data"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Translate returns text unchanged when target is empty, without contacting the backend.
func (c *Client) Translate(ctx context.Context, text, target, source string) (string, error) {
	if target == "" {
		return text, nil
	}
	if c.apiKey == "" {
		return "", ErrNotConfigured
	}

	payload, err := json.Marshal(translateRequest{
		Q:      text,
		Target: target,
		Format: "text",
		Source: source,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal translate request: %w", err)
	}

	url := fmt.Sprintf("%s/language/translate/v2?key=%s", c.baseURL, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create translate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("translation request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read translate response: %w", err)
	}

	var parsed translateResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return "", fmt.Errorf("translation failed with status %d", resp.StatusCode)
		}
		return "", fmt.Errorf("failed to decode translate response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if parsed.Error != nil && parsed.Error.Message != "" {
			return "", fmt.Errorf("translation failed: %s", parsed.Error.Message)
		}
		return "", fmt.Errorf("translation failed with status %d", resp.StatusCode)
	}

	if len(parsed.Data.Translations) == 0 {
		return "", errors.New("translation response contained no translations")
	}

	return parsed.Data.Translations[0].TranslatedText, nil
}

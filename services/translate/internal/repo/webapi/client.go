package webapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

var httpClient = &http.Client{Timeout: 5 * time.Second}

type statusError struct {
	service string
	status  int
	body    string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("%s service returned %d: %s", e.service, e.status, e.body)
}

// getJSON issues a GET forwarding authToken and decodes a 200 response into out.
func getJSON(ctx context.Context, service, url, authToken string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	if authToken != "" {
		req.Header.Set("Authorization", authToken)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &statusError{service: service, status: resp.StatusCode, body: strings.TrimSpace(string(body))}
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

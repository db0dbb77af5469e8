// Package upstream is the client for the remote store API (index.php,
// user.php and the upload endpoints). Every response uses the same
// envelope: {"status": "success", "data": ...} or {"status": ..., "message": ...}.
// A non-success status surfaces as *APIError; transport problems surface as
// wrapped errors. The service never retries, matching the admin UI it
// replaced.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// APIError is a logical failure reported by the API itself. All error
// identity upstream is a human-readable string.
type APIError struct {
	Message string
}

func (e *APIError) Error() string { return e.Message }

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) get(ctx context.Context, endpoint string, query url.Values, out any) error {
	u := c.baseURL + "/" + endpoint
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	return c.send(req, out)
}

// send a JSON body with the given method (the API uses POST for most writes
// and PUT for product updates).
func (c *Client) sendJSON(ctx context.Context, method, endpoint string, body any, out any) error {
	buf, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/"+endpoint, bytes.NewReader(buf))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("store api request failed: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("store api sent an invalid response: %w", err)
	}
	if env.Status != "success" {
		msg := env.Message
		if msg == "" {
			msg = "store api reported a failure"
		}
		return &APIError{Message: msg}
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("store api sent unexpected data: %w", err)
		}
	}
	return nil
}

// action tags a write payload with the dispatch verb index.php/user.php
// switch on.
func action(name string, fields map[string]any) map[string]any {
	body := map[string]any{"action": name}
	for k, v := range fields {
		body[k] = v
	}
	return body
}

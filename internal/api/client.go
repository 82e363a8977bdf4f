package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// TokenSource supplies the bearer token for authenticated calls. The session
// store implements it; a nil source means unauthenticated requests only.
type TokenSource interface {
	AccessToken() string
}

// Client is the typed gateway to the Hireon platform API. One method per
// remote operation; every method serializes its request to JSON, attaches the
// base URL and auth header, and surfaces server failures as *Error.
type Client struct {
	base      string
	userAgent string
	token     TokenSource
	http      *http.Client
}

func NewClient(baseURL, userAgent string, timeout time.Duration, token TokenSource) *Client {
	return &Client{
		base:      baseURL,
		userAgent: userAgent,
		token:     token,
		http:      &http.Client{Timeout: timeout},
	}
}

// envelope is the platform's uniform response shape.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	r, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		r.Header.Set("Content-Type", "application/json")
	}
	r.Header.Set("User-Agent", c.userAgent)
	if method != http.MethodGet {
		r.Header.Set("X-Request-ID", uuid.NewString())
	}
	if c.token != nil {
		if tok := c.token.AccessToken(); tok != "" {
			r.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.http.Do(r)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(bodyBytes, &env); err != nil {
		if resp.StatusCode >= 400 {
			return &Error{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return fmt.Errorf("decode error: %w, body: %s", err, string(bodyBytes))
	}

	if resp.StatusCode >= 400 || !env.Success {
		apiErr := &Error{Status: resp.StatusCode}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Message = env.Error.Message
		} else {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode data: %w", err)
		}
	}
	return nil
}

// Package mazebot talks to the maze race API: start a race, fetch a maze
// document, submit directions.
package mazebot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

var (
	// ErrStatus is returned for non-2xx responses.
	ErrStatus = errors.New("mazebot: unexpected status")

	// ErrDecode is returned when a response body is not the expected JSON.
	ErrDecode = errors.New("mazebot: cannot decode response")
)

// StartPath is the endpoint that opens a race.
const StartPath = "/mazebot/race/start"

// Client is a small JSON client for the race API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures the Client during construction.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		if c != nil {
			cl.httpClient = c
		}
	}
}

// WithLogger configures structured logging.
func WithLogger(l *slog.Logger) Option {
	return func(cl *Client) {
		if l != nil {
			cl.logger = l
		}
	}
}

// New creates a Client for baseURL. A positive timeout bounds each request.
func New(baseURL string, timeout time.Duration, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("mazebot: baseURL is required")
	}
	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	if timeout > 0 {
		c.httpClient.Timeout = timeout
	}
	return c, nil
}

// Outcome is the judge's reply to a submission.
type Outcome struct {
	Result                 string  `json:"result"` // "success", "failed" or "finished"
	Message                string  `json:"message"`
	NextMaze               string  `json:"nextMaze"`
	Certificate            string  `json:"certificate"`
	Elapsed                float64 `json:"elapsed"`
	ShortestSolutionLength int     `json:"shortestSolutionLength"`
	YourSolutionLength     int     `json:"yourSolutionLength"`
}

// Finished reports whether the race is over.
func (o *Outcome) Finished() bool {
	return o.Result == "finished" || (o.NextMaze == "" && o.Certificate != "")
}

// Start opens a race for login and returns the first maze path.
func (c *Client) Start(ctx context.Context, login string) (string, error) {
	var out struct {
		Message  string `json:"message"`
		NextMaze string `json:"nextMaze"`
	}
	if err := c.doJSON(ctx, http.MethodPost, StartPath, "start race", map[string]string{"login": login}, &out); err != nil {
		return "", err
	}
	if out.NextMaze == "" {
		return "", fmt.Errorf("start race: %w: no nextMaze in reply", ErrDecode)
	}
	return out.NextMaze, nil
}

// Fetch downloads the maze document at path.
func (c *Client) Fetch(ctx context.Context, path string) (*Document, error) {
	var doc Document
	if err := c.doJSON(ctx, http.MethodGet, path, "fetch maze", nil, &doc); err != nil {
		return nil, err
	}
	if doc.MazePath == "" {
		doc.MazePath = path
	}
	return &doc, nil
}

// Submit posts directions for the maze at path.
func (c *Client) Submit(ctx context.Context, path, directions string) (*Outcome, error) {
	var out Outcome
	if err := c.doJSON(ctx, http.MethodPost, path, "submit", map[string]string{"directions": directions}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// doJSON sends body (if any) as JSON and decodes the reply into dst.
func (c *Client) doJSON(ctx context.Context, method, path, operation string, body, dst any) error {
	url := c.baseURL + path
	var rd io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", operation, err)
		}
		rd = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, rd)
	if err != nil {
		return fmt.Errorf("%s: create request: %w", operation, err)
	}
	req.Header.Set("Accept", "application/json")
	if rd != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.DebugContext(ctx, "API request", "operation", operation, "method", method, "url", url)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: do request: %w", operation, err)
	}
	defer resp.Body.Close()

	c.logger.DebugContext(ctx, "API response", "operation", operation, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		var e struct {
			Message string `json:"message"`
		}
		msg := strings.TrimSpace(string(raw))
		if json.Unmarshal(raw, &e) == nil && e.Message != "" {
			msg = e.Message
		}
		if msg == "" {
			msg = resp.Status
		}
		return fmt.Errorf("%s: %w %d: %s", operation, ErrStatus, resp.StatusCode, msg)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%s: %w: %v", operation, ErrDecode, err)
	}
	return nil
}

package anylogic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// maxResponseSize is the maximum allowed response size from the Cloud (10MB).
const maxResponseSize = 10 * 1024 * 1024

// Client talks to the Cloud's Open API. Every request carries the API
// key in the Authorization header.
type Client struct {
	baseURL      string
	apiKey       string
	httpClient   *http.Client
	pollInterval time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// WithTimeout sets the per-request timeout on the underlying HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithPollInterval sets how often Outputs re-reads a run that has not
// finished yet.
func WithPollInterval(d time.Duration) Option {
	return func(c *Client) { c.pollInterval = d }
}

// NewClient creates a Client for the given API root and key.
func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		pollInterval: 2 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Models lists the models available to the API key.
func (c *Client) Models(ctx context.Context) ([]Model, error) {
	var models []Model
	if err := c.get(ctx, "/models", &models); err != nil {
		return nil, err
	}
	return models, nil
}

// ModelByName fetches a model record by its display name.
func (c *Client) ModelByName(ctx context.Context, name string) (*Model, error) {
	var model Model
	if err := c.get(ctx, "/models/name/"+url.PathEscape(name), &model); err != nil {
		return nil, err
	}
	return &model, nil
}

// LatestVersion fetches the most recent version of a model, including
// its experiment templates.
func (c *Client) LatestVersion(ctx context.Context, modelID string) (*ModelVersion, error) {
	var version ModelVersion
	path := fmt.Sprintf("/models/%s/versions/latest", url.PathEscape(modelID))
	if err := c.get(ctx, path, &version); err != nil {
		return nil, err
	}
	return &version, nil
}

type runRequest struct {
	Experiment string       `json:"experiment"`
	Inputs     []InputValue `json:"inputs"`
}

// StartRun starts a run of the given model version with the given inputs.
func (c *Client) StartRun(ctx context.Context, versionID string, inputs *Inputs) (*Run, error) {
	body := runRequest{
		Experiment: inputs.Experiment(),
		Inputs:     inputs.Values(),
	}
	var run Run
	path := fmt.Sprintf("/versions/%s/runs", url.PathEscape(versionID))
	if err := c.post(ctx, path, body, &run); err != nil {
		return nil, err
	}
	return &run, nil
}

// Run fetches the current state of a run.
func (c *Client) Run(ctx context.Context, runID string) (*Run, error) {
	var run Run
	if err := c.get(ctx, "/runs/"+url.PathEscape(runID), &run); err != nil {
		return nil, err
	}
	return &run, nil
}

// Outputs fetches the outputs of a run, blocking until the run reaches
// a terminal state. A run that ends in any state other than COMPLETED
// is reported as an error.
func (c *Client) Outputs(ctx context.Context, runID string) (Outputs, error) {
	for {
		run, err := c.Run(ctx, runID)
		if err != nil {
			return nil, err
		}
		if run.Terminal() {
			if run.Status != StatusCompleted {
				return nil, fmt.Errorf("%w: run %s ended %s: %s", ErrRunFailed, run.ID, run.Status, run.Message)
			}
			return Outputs(run.Outputs), nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.pollInterval):
		}
	}
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("anylogic: encoding request: %w", err)
	}
	return c.do(ctx, http.MethodPost, path, bytes.NewReader(payload), out)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("anylogic: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("anylogic: reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    apiErrorMessage(data),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("anylogic: decoding response: %w", err)
	}
	return nil
}

// apiErrorMessage extracts the vendor's message from an error body,
// falling back to the raw body when it is not the usual JSON shape.
func apiErrorMessage(data []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}
	return strings.TrimSpace(string(data))
}

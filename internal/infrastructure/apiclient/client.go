package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"intern-match/internal/delivery/http/dto"
)

// Client talks to a running intern-match server.
type Client interface {
	Health(ctx context.Context) error
	CreatePosting(ctx context.Context, req dto.PostingRequest) error
	CreateCandidate(ctx context.Context, req dto.CandidateRequest) error
}

type httpClient struct {
	baseURL string
	client  *http.Client
	logger  *log.Logger
}

// New returns nil when baseURL is blank.
func New(baseURL string, timeout time.Duration, logger *log.Logger) Client {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &httpClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

func (c *httpClient) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil)
}

func (c *httpClient) CreatePosting(ctx context.Context, req dto.PostingRequest) error {
	return c.do(ctx, http.MethodPost, "/api/v1/postings", req)
}

func (c *httpClient) CreateCandidate(ctx context.Context, req dto.CandidateRequest) error {
	return c.do(ctx, http.MethodPost, "/api/v1/candidates", req)
}

func (c *httpClient) do(ctx context.Context, method, path string, body any) error {
	if c == nil || c.client == nil {
		return errors.New("nil api client")
	}
	endpoint := c.baseURL + path

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, rdr)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		bodyStr := strings.TrimSpace(string(rb))
		if c.logger != nil {
			c.logger.Printf("[APIClient] request failed method=%s endpoint=%s status=%d body=%q", method, endpoint, resp.StatusCode, bodyStr)
		}
		return fmt.Errorf("%s %s failed: status=%d body=%s", method, path, resp.StatusCode, bodyStr)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

var _ Client = (*httpClient)(nil)

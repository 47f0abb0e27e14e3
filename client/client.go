package client

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

	"github.com/prasetyowira/qrbadge/constant"
	"github.com/prasetyowira/qrbadge/domain/generator"
)

var (
	// ErrEmptyText is returned before any request is made when there is nothing to encode.
	ErrEmptyText = errors.New("client: text is empty")
	// ErrRequestFailed wraps transport failures and unreadable responses.
	ErrRequestFailed = errors.New("client: request failed")
)

// maxErrorBody caps how much of an error response is read for display.
const maxErrorBody = 4 << 10

// StatusError is returned when the service answers with anything but 200.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("client: server returned %d: %s", e.StatusCode, e.Body)
}

// Client posts generate requests to the QR service
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the service at baseURL.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Generate sends req and returns the PNG bytes.
func (c *Client) Generate(ctx context.Context, req generator.GenerationRequest) ([]byte, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, ErrEmptyText
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("client: encoding request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+constant.RouteGenerate, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("client: building request: %w", err)
	}
	httpReq.Header.Set(constant.HeaderContentType, constant.ContentTypeJSON)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(msg))}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %w", ErrRequestFailed, err)
	}
	return data, nil
}

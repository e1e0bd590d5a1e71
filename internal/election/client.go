// Package election is the HTTP client for the election service, the
// authority on whether a voter has already cast votes. The delete
// authorization gate depends on it synchronously; any transport or protocol
// failure must stay distinguishable from a definitive "no votes" answer, so
// this client never guesses.
package election

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the election service. The timeout bounds the
// whole request; exceeding it is reported as an error, not as "false".
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// HasVotes asks the election service whether the voter has cast any vote.
// The endpoint answers with a bare "true" or "false" body.
func (c *Client) HasVotes(voterId int64) (bool, error) {
	url := fmt.Sprintf("%s/v1/result/voter/%d", c.baseURL, voterId)

	resp, err := c.httpClient.Get(url)
	if err != nil {
		return false, fmt.Errorf("election service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("election service returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1024))
	if err != nil {
		return false, fmt.Errorf("failed to read election service response: %w", err)
	}

	switch strings.TrimSpace(string(body)) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, fmt.Errorf("unexpected election service response: %q", strings.TrimSpace(string(body)))
	}
}

// Package llm implements the inference gateway: a synchronous client
// for an OpenAI-compatible chat-completions endpoint served by a
// locally hosted model runtime (for example Ollama's /v1 surface).
//
// The gateway is deliberately thin. It sends the contract briefing as
// the system message and the user's literal message as the user
// message, with streaming disabled and a fixed model identifier, and
// returns the single reply. Every failure mode that means "the model
// server is not answering" — connection refused, timeout, non-2xx
// status, empty choice list — is reported as ErrUnavailable so the
// HTTP layer can surface one actionable remediation hint.
package llm

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

	"github.com/prometheus/client_golang/prometheus"
)

// ErrUnavailable indicates the inference endpoint could not produce a
// reply. Callers should tell the user to start the local model server
// rather than echo the raw transport error.
var ErrUnavailable = errors.New("inference service unavailable")

// upstreamReqs counts chat-completion calls by outcome ("ok" | "error").
var upstreamReqs = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "llm_upstream_requests_total",
		Help: "Total chat-completion calls to the inference service.",
	},
	[]string{"outcome"},
)

func init() {
	prometheus.MustRegister(upstreamReqs)
}

// Client calls a chat-completions endpoint with a bounded timeout.
type Client struct {
	baseURL string
	model   string
	http    *http.Client
}

// NewClient constructs a Client for the endpoint at baseURL (the "/v1"
// root, without the /chat/completions suffix) using the given model
// identifier. A non-positive timeout defaults to 60s; the inference
// call is never unbounded.
func NewClient(baseURL, model string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		http:    &http.Client{Timeout: timeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Ask sends the briefing as the system message and userMessage as the
// user message, and returns the model's reply text. All transport and
// upstream failures are wrapped in ErrUnavailable.
func (c *Client) Ask(ctx context.Context, briefing, userMessage string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: briefing},
			{Role: "user", Content: userMessage},
		},
		Stream: false,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		upstreamReqs.WithLabelValues("error").Inc()
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		upstreamReqs.WithLabelValues("error").Inc()
		return "", fmt.Errorf("%w: HTTP %d", ErrUnavailable, resp.StatusCode)
	}

	var out chatResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		upstreamReqs.WithLabelValues("error").Inc()
		return "", fmt.Errorf("%w: invalid response body", ErrUnavailable)
	}
	if out.Error != nil {
		upstreamReqs.WithLabelValues("error").Inc()
		return "", fmt.Errorf("%w: %s", ErrUnavailable, out.Error.Message)
	}
	if len(out.Choices) == 0 {
		upstreamReqs.WithLabelValues("error").Inc()
		return "", fmt.Errorf("%w: empty choices", ErrUnavailable)
	}

	upstreamReqs.WithLabelValues("ok").Inc()
	return out.Choices[0].Message.Content, nil
}

// Package gpt is a thin client for an OpenAI-compatible chat-completion
// service. The wizard talks to it with a runtime-supplied key that is never
// persisted; both a single-shot completion and an SSE token stream are
// supported.
package gpt

import (
	"bufio"
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

const (
	DefaultModel   = "gpt-4o-mini"
	DefaultBaseURL = "https://api.openai.com/v1"

	defaultTemperature = 0.7
	defaultMaxTokens   = 2000
)

// Message is one turn of the conversation sent to the completion service.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Options tune a single completion call. Zero values fall back to the
// service defaults above.
type Options struct {
	Temperature *float64
	MaxTokens   int
}

// StreamHandler receives each incremental token. Returning ErrStopStream
// ends consumption early without failing the call; any other error aborts.
type StreamHandler func(token string) error

// ErrStopStream is the sentinel a StreamHandler returns to cancel a stream.
var ErrStopStream = errors.New("stop stream")

type Config struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

type Client struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("API 키가 설정되지 않았습니다")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 2 * time.Minute}
	}
	return &Client{
		apiKey:  strings.TrimSpace(cfg.APIKey),
		model:   cfg.Model,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  cfg.HTTPClient,
	}, nil
}

func (c *Client) ModelName() string { return c.model }

// Complete performs one non-streaming completion and returns the reply text.
func (c *Client) Complete(ctx context.Context, messages []Message, opts Options) (string, error) {
	resp, err := c.post(ctx, messages, opts, false)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return "", err
	}
	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("completion decode: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", errors.New("completion returned no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}

// Stream performs a streaming completion, invoking handler for every token.
// The wire format is SSE: newline-delimited "data: <json>" frames closed by
// a literal "data: [DONE]". Unparseable frames are skipped. The accumulated
// text is returned on completion or early stop.
func (c *Client) Stream(ctx context.Context, messages []Message, handler StreamHandler) (string, error) {
	resp, err := c.post(ctx, messages, Options{}, true)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var full strings.Builder
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		data := strings.TrimPrefix(line, "data: ")
		if data == "[DONE]" {
			break
		}
		var frame struct {
			Choices []struct {
				Delta struct {
					Content string `json:"content"`
				} `json:"delta"`
			} `json:"choices"`
		}
		if err := json.Unmarshal([]byte(data), &frame); err != nil {
			continue
		}
		if len(frame.Choices) == 0 {
			continue
		}
		token := frame.Choices[0].Delta.Content
		if token == "" {
			continue
		}
		full.WriteString(token)
		if handler != nil {
			if err := handler(token); err != nil {
				if errors.Is(err, ErrStopStream) {
					return full.String(), nil
				}
				return full.String(), err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return full.String(), fmt.Errorf("stream read: %w", err)
	}
	return full.String(), nil
}

func (c *Client) post(ctx context.Context, messages []Message, opts Options, stream bool) (*http.Response, error) {
	temperature := defaultTemperature
	if opts.Temperature != nil {
		temperature = *opts.Temperature
	}
	maxTokens := opts.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	payload := map[string]any{
		"model":       c.model,
		"messages":    messages,
		"temperature": temperature,
		"max_tokens":  maxTokens,
	}
	if stream {
		payload["stream"] = true
	}
	buf, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(buf))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		defer resp.Body.Close()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		return nil, apiError(resp.StatusCode, body)
	}
	return resp, nil
}

// apiError extracts the nested error.message field when the service returns
// a structured error body, else falls back to a status-coded message.
func apiError(status int, body []byte) error {
	var parsed struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && strings.TrimSpace(parsed.Error.Message) != "" {
		return fmt.Errorf("%s", parsed.Error.Message)
	}
	return fmt.Errorf("API request failed: %d", status)
}

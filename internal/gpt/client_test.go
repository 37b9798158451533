package gpt

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client, err := NewClient(Config{APIKey: "sk-test", BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client
}

func TestNewClientRequiresKey(t *testing.T) {
	if _, err := NewClient(Config{}); err == nil {
		t.Fatal("expected error on missing API key")
	}
	if _, err := NewClient(Config{APIKey: "   "}); err == nil {
		t.Fatal("expected error on blank API key")
	}
}

func TestCompleteParsesReply(t *testing.T) {
	var gotPath, gotAuth string
	var gotPayload map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotPayload)
		w.Write([]byte(`{"choices":[{"message":{"content":"로봇 청소기 분석"}}]}`))
	})

	out, err := client.Complete(context.Background(), []Message{{Role: "user", Content: "안녕"}}, Options{})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if out != "로봇 청소기 분석" {
		t.Fatalf("out = %q", out)
	}
	if gotPath != "/chat/completions" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotAuth != "Bearer sk-test" {
		t.Fatalf("auth = %q", gotAuth)
	}
	if gotPayload["model"] != DefaultModel {
		t.Fatalf("model = %v", gotPayload["model"])
	}
	if gotPayload["temperature"] != 0.7 {
		t.Fatalf("temperature = %v", gotPayload["temperature"])
	}
	if gotPayload["max_tokens"] != float64(2000) {
		t.Fatalf("max_tokens = %v", gotPayload["max_tokens"])
	}
}

func TestCompleteNoChoices(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	})
	if _, err := client.Complete(context.Background(), nil, Options{}); err == nil {
		t.Fatal("expected error on empty choices")
	}
}

func TestCompleteExtractsAPIErrorMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"Incorrect API key provided"}}`))
	})
	_, err := client.Complete(context.Background(), nil, Options{})
	if err == nil || err.Error() != "Incorrect API key provided" {
		t.Fatalf("err = %v", err)
	}
}

func TestCompleteFallbackErrorMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream broke"))
	})
	_, err := client.Complete(context.Background(), nil, Options{})
	if err == nil || err.Error() != "API request failed: 502" {
		t.Fatalf("err = %v", err)
	}
}

func TestStreamAccumulatesTokens(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		json.NewDecoder(r.Body).Decode(&payload)
		if payload["stream"] != true {
			t.Errorf("stream flag not set: %v", payload["stream"])
		}
		w.Header().Set("Content-Type", "text/event-stream")
		frames := []string{
			`data: {"choices":[{"delta":{"content":"로봇"}}]}`,
			``,
			`data: {이건 깨진 프레임}`,
			`data: {"choices":[{"delta":{"content":" 청소기"}}]}`,
			`data: {"choices":[{"delta":{}}]}`,
			`data: [DONE]`,
			`data: {"choices":[{"delta":{"content":"무시됨"}}]}`,
		}
		w.Write([]byte(strings.Join(frames, "\n") + "\n"))
	})

	var tokens []string
	out, err := client.Stream(context.Background(), []Message{{Role: "user", Content: "안녕"}}, func(tok string) error {
		tokens = append(tokens, tok)
		return nil
	})
	if err != nil {
		t.Fatalf("Stream: %v", err)
	}
	if out != "로봇 청소기" {
		t.Fatalf("out = %q", out)
	}
	if len(tokens) != 2 {
		t.Fatalf("tokens = %v", tokens)
	}
}

func TestStreamStopSentinel(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		frames := []string{
			`data: {"choices":[{"delta":{"content":"첫"}}]}`,
			`data: {"choices":[{"delta":{"content":"둘"}}]}`,
			`data: [DONE]`,
		}
		w.Write([]byte(strings.Join(frames, "\n") + "\n"))
	})

	out, err := client.Stream(context.Background(), nil, func(tok string) error {
		return ErrStopStream
	})
	if err != nil {
		t.Fatalf("Stream after stop: %v", err)
	}
	if out != "첫" {
		t.Fatalf("out = %q, want text up to the stop", out)
	}
}

func TestStreamHandlerErrorAborts(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`data: {"choices":[{"delta":{"content":"첫"}}]}` + "\n"))
	})
	wantErr := errors.New("handler exploded")
	_, err := client.Stream(context.Background(), nil, func(tok string) error {
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("err = %v", err)
	}
}

func TestRetryWithBackoffRetriesRateLimit(t *testing.T) {
	calls := 0
	out, err := RetryWithBackoff(context.Background(), func() (string, error) {
		calls++
		if calls < 3 {
			return "", errors.New("API request failed: 429")
		}
		return "성공", nil
	})
	if err != nil {
		t.Fatalf("RetryWithBackoff: %v", err)
	}
	if out != "성공" || calls != 3 {
		t.Fatalf("out = %q, calls = %d", out, calls)
	}
}

func TestRetryWithBackoffNoRetryOnOtherErrors(t *testing.T) {
	calls := 0
	_, err := RetryWithBackoff(context.Background(), func() (string, error) {
		calls++
		return "", errors.New("Incorrect API key provided")
	})
	if err == nil || calls != 1 {
		t.Fatalf("err = %v, calls = %d", err, calls)
	}
}

func TestRetryWithBackoffHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	start := time.Now()
	_, err := RetryWithBackoff(ctx, func() (string, error) {
		return "", errors.New("rate limit exceeded")
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if time.Since(start) > 500*time.Millisecond {
		t.Fatal("retry slept despite canceled context")
	}
}

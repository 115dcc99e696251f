package aigen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/yungbote/vedicqa/internal/platform/httpx"
	"github.com/yungbote/vedicqa/internal/platform/logger"
)

const systemPrompt = `You are an expert in Vedic astrology (Jyotiṣa) creating Q&A pairs for training data.
Generate diverse, high-quality question-answer pairs from the given text.

Guidelines:
- Questions should be specific and answerable from the text
- Use proper Sanskrit terminology with diacritical marks (ā, ī, ū, ṛ, ṣ, ṭ, ḍ, ṇ)
- Vary question types: definition, interpretation, procedure, prediction, comparison
- Answers should be comprehensive and accurate

Return a JSON array with objects containing "question", "answer", "qa_type", and "difficulty" fields.`

// httpClient calls an OpenAI-compatible chat completion endpoint.
type httpClient struct {
	log        *logger.Logger
	baseURL    string
	apiKey     string
	model      string
	httpc      *http.Client
	maxRetries int
}

// NewHTTPClient reads GEN_API_KEY, GEN_BASE_URL, and GEN_MODEL from
// the environment and returns a retrying client.
func NewHTTPClient(log *logger.Logger) (Client, error) {
	apiKey := strings.TrimSpace(os.Getenv("GEN_API_KEY"))
	if apiKey == "" {
		return nil, fmt.Errorf("missing GEN_API_KEY")
	}

	baseURL := strings.TrimSpace(os.Getenv("GEN_BASE_URL"))
	if baseURL == "" {
		baseURL = "https://api.openai.com"
	}
	baseURL = strings.TrimRight(baseURL, "/")

	model := strings.TrimSpace(os.Getenv("GEN_MODEL"))
	if model == "" {
		model = "gpt-4o-mini"
	}

	timeoutSec := 120
	if v := os.Getenv("GEN_TIMEOUT_SECONDS"); v != "" {
		if parsed, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && parsed > 0 {
			timeoutSec = parsed
		}
	}

	maxRetries := 3
	if v := os.Getenv("GEN_MAX_RETRIES"); v != "" {
		if parsed, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && parsed >= 0 {
			maxRetries = parsed
		}
	}

	if log == nil {
		log = logger.Nop()
	}

	return &httpClient{
		log:        log.With("component", "gen_client"),
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
		httpc:      &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
		maxRetries: maxRetries,
	}, nil
}

type genHTTPError struct {
	StatusCode int
	Body       string
}

func (e *genHTTPError) Error() string {
	return fmt.Sprintf("generation service http %d: %s", e.StatusCode, e.Body)
}

func (e *genHTTPError) HTTPStatusCode() int {
	if e == nil {
		return 0
	}
	return e.StatusCode
}

func (c *httpClient) Model() string { return c.model }

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *httpClient) GeneratePairs(ctx context.Context, text string, n int) ([]Pair, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("empty passage")
	}
	if n <= 0 {
		n = 3
	}

	user := fmt.Sprintf("Generate %d Q&A pairs from this Jyotiṣa text:\n\n---\n%s\n---\n\nReturn ONLY a valid JSON array.", n, text)

	req := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: user},
		},
	}

	var resp chatResponse
	if err := c.do(ctx, "POST", "/v1/chat/completions", req, &resp); err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("generation service returned no choices")
	}

	pairs, err := parsePairs(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}
	if len(pairs) > n {
		pairs = pairs[:n]
	}
	return pairs, nil
}

// parsePairs extracts a JSON array of pairs from model output,
// tolerating markdown code fences around the payload.
func parsePairs(content string) ([]Pair, error) {
	s := strings.TrimSpace(content)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if i := strings.LastIndex(s, "```"); i >= 0 {
			s = s[:i]
		}
		s = strings.TrimSpace(s)
	}
	start := strings.Index(s, "[")
	end := strings.LastIndex(s, "]")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON array in service output")
	}

	var pairs []Pair
	if err := json.Unmarshal([]byte(s[start:end+1]), &pairs); err != nil {
		return nil, fmt.Errorf("decode service output: %w", err)
	}

	out := pairs[:0]
	for _, p := range pairs {
		if strings.TrimSpace(p.Question) == "" || strings.TrimSpace(p.Answer) == "" {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (c *httpClient) doOnce(ctx context.Context, method, path string, body any) (*http.Response, []byte, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, nil, err
	}

	raw, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if readErr != nil {
		return resp, nil, readErr
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp, raw, &genHTTPError{StatusCode: resp.StatusCode, Body: string(raw)}
	}
	return resp, raw, nil
}

func (c *httpClient) do(ctx context.Context, method, path string, body any, out any) error {
	backoff := 1 * time.Second

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		resp, raw, err := c.doOnce(ctx, method, path, body)
		if err == nil {
			if out == nil {
				return nil
			}
			if uErr := json.Unmarshal(raw, out); uErr != nil {
				return fmt.Errorf("decode response: %w", uErr)
			}
			return nil
		}

		if !httpx.IsRetryableError(err) {
			return err
		}
		if attempt == c.maxRetries {
			return err
		}

		sleepFor := httpx.RetryAfterDuration(resp, backoff, 10*time.Second)
		sleepFor = httpx.JitterSleep(sleepFor)

		c.log.Warn("generation request retrying",
			"path", path,
			"attempt", attempt+1,
			"max_retries", c.maxRetries,
			"sleep", sleepFor.String(),
			"error", err.Error(),
		)

		time.Sleep(sleepFor)
		backoff *= 2
	}

	return fmt.Errorf("unreachable retry loop")
}

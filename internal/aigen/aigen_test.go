package aigen

import (
	"context"
	"testing"
	"time"
)

func TestParsePairs(t *testing.T) {
	content := "```json\n[{\"question\":\"What is lagna?\",\"answer\":\"The rising sign.\",\"qa_type\":\"definition\",\"difficulty\":\"easy\"},{\"question\":\"\",\"answer\":\"dropped\"}]\n```"
	pairs, err := parsePairs(content)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(pairs) != 1 {
		t.Fatalf("expected 1 valid pair, got %d", len(pairs))
	}
	if pairs[0].Question != "What is lagna?" || pairs[0].QAType != "definition" {
		t.Fatalf("unexpected pair %+v", pairs[0])
	}
}

func TestParsePairsWithSurroundingProse(t *testing.T) {
	content := `Here are the pairs you asked for:
[{"question":"Q","answer":"A"}]
Hope that helps!`
	pairs, err := parsePairs(content)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(pairs) != 1 {
		t.Fatalf("expected 1 pair, got %d", len(pairs))
	}
}

func TestParsePairsNoArray(t *testing.T) {
	if _, err := parsePairs("no json here"); err == nil {
		t.Fatalf("expected error without an array")
	}
	if _, err := parsePairs(`[{"question": broken]`); err == nil {
		t.Fatalf("expected error for invalid json")
	}
}

type fakeClient struct {
	calls int
}

func (f *fakeClient) Model() string { return "fake" }

func (f *fakeClient) GeneratePairs(ctx context.Context, text string, n int) ([]Pair, error) {
	f.calls++
	return []Pair{{Question: "q", Answer: "a"}}, nil
}

func TestRateLimitedDelegates(t *testing.T) {
	inner := &fakeClient{}
	c := NewRateLimited(inner, 100, 1)
	if c.Model() != "fake" {
		t.Fatalf("model not delegated")
	}
	pairs, err := c.GeneratePairs(context.Background(), "text", 1)
	if err != nil || len(pairs) != 1 {
		t.Fatalf("call not delegated: %v %v", pairs, err)
	}
	if inner.calls != 1 {
		t.Fatalf("expected 1 inner call, got %d", inner.calls)
	}
}

func TestRateLimitedHonorsCancellation(t *testing.T) {
	inner := &fakeClient{}
	c := NewRateLimited(inner, 0.001, 1)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	// Burn the single burst token, then the next call must block and
	// fail on the deadline.
	if _, err := c.GeneratePairs(ctx, "one", 1); err != nil {
		t.Fatalf("first call should pass on burst: %v", err)
	}
	if _, err := c.GeneratePairs(ctx, "two", 1); err == nil {
		t.Fatalf("expected context error")
	}
	if inner.calls != 1 {
		t.Fatalf("throttled call must not reach the client, got %d calls", inner.calls)
	}
}

func TestRateLimitedDisabledPassThrough(t *testing.T) {
	inner := &fakeClient{}
	if c := NewRateLimited(inner, 0, 0); c != Client(inner) {
		t.Fatalf("non-positive limits should return the client unchanged")
	}
}

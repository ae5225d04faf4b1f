package service_test

import (
	"context"
	"time"

	"kundli.app/kundli/common/llm"
	"kundli.app/kundli/internal/ephem"
)

type mockProvider struct {
	positionsFn func(ctx context.Context, utc time.Time, lat, lon float64) (*ephem.PositionSet, error)
}

func (m *mockProvider) Positions(ctx context.Context, utc time.Time, lat, lon float64) (*ephem.PositionSet, error) {
	if m.positionsFn != nil {
		return m.positionsFn(ctx, utc, lat, lon)
	}
	return nil, nil
}

type mockLimiter struct {
	acquireFn func(ctx context.Context) (bool, time.Duration, error)
}

func (m *mockLimiter) Acquire(ctx context.Context) (bool, time.Duration, error) {
	if m.acquireFn != nil {
		return m.acquireFn(ctx)
	}
	return true, 0, nil
}

type mockLLM struct {
	chatFn     func(ctx context.Context, req llm.Request, result any) (*llm.Response, error)
	completeFn func(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error)
}

func (m *mockLLM) Chat(ctx context.Context, req llm.Request, result any) (*llm.Response, error) {
	if m.chatFn != nil {
		return m.chatFn(ctx, req, result)
	}
	return &llm.Response{}, nil
}

func (m *mockLLM) Complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error) {
	if m.completeFn != nil {
		return m.completeFn(ctx, systemPrompt, userPrompt, maxTokens)
	}
	return "", nil
}

func (m *mockLLM) Model() string {
	return "test-model"
}

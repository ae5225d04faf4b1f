package handler_test

import (
	"context"
	"encoding/json"

	"kundli.app/kundli/internal/astro"
	"kundli.app/kundli/internal/service"
)

type mockKundliService struct {
	buildFn func(ctx context.Context, details service.BirthDetails) (*astro.Chart, error)
}

func (m *mockKundliService) Build(ctx context.Context, details service.BirthDetails) (*astro.Chart, error) {
	if m.buildFn != nil {
		return m.buildFn(ctx, details)
	}
	return nil, nil
}

type mockInterpretService struct {
	interpretFn func(ctx context.Context, question string, chartData json.RawMessage, userName string) (*service.Interpretation, error)
}

func (m *mockInterpretService) Interpret(ctx context.Context, question string, chartData json.RawMessage, userName string) (*service.Interpretation, error) {
	if m.interpretFn != nil {
		return m.interpretFn(ctx, question, chartData, userName)
	}
	return &service.Interpretation{}, nil
}

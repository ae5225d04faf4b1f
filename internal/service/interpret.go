package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"kundli.app/kundli/common/llm"
	"kundli.app/kundli/common/logger"
	"kundli.app/kundli/internal/cooldown"
)

// unavailableMessage is returned for every narration failure. Interpretation
// never surfaces a hard error to the caller.
const unavailableMessage = "The interpretation service is unavailable right now. Please try again in a moment."

const interpretSystemPrompt = `You are an experienced Vedic astrologer. You are given a birth chart
snapshot as JSON: ascendant sign, each planet's sign, house, degree and
status tags (retrograde, exalted, debilitated, peak, combust), plus the
aspects each planet casts. Answer the user's question grounded strictly
in this chart. Be specific about which placements support your reading.
Keep the tone warm and plain. Do not invent placements that are not in
the snapshot.`

// Interpretation is a narration result. Cooldown is the remaining wait in
// seconds when the request was rate limited, zero otherwise.
type Interpretation struct {
	Response string
	Cooldown int
}

type InterpretService interface {
	Interpret(ctx context.Context, question string, chartData json.RawMessage, userName string) (*Interpretation, error)
}

type narrationResult struct {
	Answer string `json:"answer" jsonschema_description:"The astrological interpretation answering the user's question"`
}

var narrationSchema = llm.GenerateSchema[narrationResult]()

type interpretService struct {
	limiter cooldown.Limiter
	llm     llm.Client // nil when no credential is configured
}

func NewInterpretService(limiter cooldown.Limiter, client llm.Client) InterpretService {
	return &interpretService{
		limiter: limiter,
		llm:     client,
	}
}

func (s *interpretService) Interpret(ctx context.Context, question string, chartData json.RawMessage, userName string) (*Interpretation, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{Component: "kundli.service.interpret"})

	ok, retryAfter, err := s.limiter.Acquire(ctx)
	if err != nil {
		// Fail open: a broken limiter backend must not take narration down.
		slog.WarnContext(ctx, "cooldown check failed, allowing request", "error", err)
		ok = true
	}
	if !ok {
		secs := int(math.Ceil(retryAfter.Seconds()))
		if secs < 1 {
			secs = 1
		}
		slog.InfoContext(ctx, "narration rejected by cooldown", "retry_after_seconds", secs)
		return &Interpretation{
			Response: fmt.Sprintf("wait %ds", secs),
			Cooldown: secs,
		}, nil
	}

	if s.llm == nil {
		slog.WarnContext(ctx, "narration requested without configured credential")
		return &Interpretation{Response: unavailableMessage}, nil
	}

	prompt := buildInterpretPrompt(question, chartData, userName)

	answer, err := s.narrate(ctx, prompt)
	if err != nil {
		slog.ErrorContext(ctx, "narration failed",
			"error", err,
			"question", logger.Truncate(question, 120),
		)
		return &Interpretation{Response: unavailableMessage}, nil
	}

	return &Interpretation{Response: llm.SanitizeCompletion(answer)}, nil
}

// narrate asks for a structured answer first and falls back to a plain
// completion when the structured call fails.
func (s *interpretService) narrate(ctx context.Context, prompt string) (string, error) {
	var result narrationResult
	_, err := s.llm.Chat(ctx, llm.Request{
		SystemPrompt: interpretSystemPrompt,
		UserPrompt:   prompt,
		SchemaName:   "chart_interpretation",
		Schema:       narrationSchema,
		MaxTokens:    1200,
		Temperature:  llm.Temp(0.7),
	}, &result)
	if err == nil && strings.TrimSpace(result.Answer) != "" {
		return result.Answer, nil
	}
	if err != nil {
		slog.WarnContext(ctx, "structured narration failed, falling back to completion", "error", err)
	}

	return s.llm.Complete(ctx, interpretSystemPrompt, prompt, 1200)
}

func buildInterpretPrompt(question string, chartData json.RawMessage, userName string) string {
	var b strings.Builder
	if userName != "" {
		fmt.Fprintf(&b, "The querent's name is %s.\n\n", userName)
	}
	b.WriteString("Birth chart snapshot:\n")
	b.Write(chartData)
	b.WriteString("\n\nQuestion: ")
	b.WriteString(question)
	return b.String()
}

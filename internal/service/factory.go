package service

import (
	"kundli.app/kundli/common/llm"
	"kundli.app/kundli/internal/cooldown"
	"kundli.app/kundli/internal/ephem"
)

type Services struct {
	provider ephem.Provider
	limiter  cooldown.Limiter
	llm      llm.Client
}

func NewServices(provider ephem.Provider, limiter cooldown.Limiter, llmClient llm.Client) *Services {
	return &Services{
		provider: provider,
		limiter:  limiter,
		llm:      llmClient,
	}
}

func (s *Services) Kundli() KundliService {
	return NewKundliService(s.provider)
}

func (s *Services) Interpret() InterpretService {
	return NewInterpretService(s.limiter, s.llm)
}

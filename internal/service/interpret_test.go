package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"kundli.app/kundli/common/llm"
	"kundli.app/kundli/internal/service"
)

var _ = Describe("InterpretService", func() {
	var (
		svc     service.InterpretService
		limiter *mockLimiter
		client  *mockLLM
		ctx     context.Context
	)

	chartData := json.RawMessage(`{"asc_sign":"Leo"}`)

	BeforeEach(func() {
		ctx = context.Background()
		limiter = &mockLimiter{}
		client = &mockLLM{}
		svc = service.NewInterpretService(limiter, client)
	})

	Context("when the cooldown is active", func() {
		It("returns the wait message without invoking the model", func() {
			limiter.acquireFn = func(context.Context) (bool, time.Duration, error) {
				return false, 42 * time.Second, nil
			}
			invoked := false
			client.chatFn = func(context.Context, llm.Request, any) (*llm.Response, error) {
				invoked = true
				return &llm.Response{}, nil
			}
			client.completeFn = func(context.Context, string, string, int) (string, error) {
				invoked = true
				return "", nil
			}

			result, err := svc.Interpret(ctx, "Will I travel?", chartData, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Response).To(Equal("wait 42s"))
			Expect(result.Cooldown).To(Equal(42))
			Expect(invoked).To(BeFalse())
		})

		It("rounds sub-second waits up to one second", func() {
			limiter.acquireFn = func(context.Context) (bool, time.Duration, error) {
				return false, 300 * time.Millisecond, nil
			}

			result, err := svc.Interpret(ctx, "question", chartData, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Cooldown).To(Equal(1))
			Expect(result.Response).To(Equal("wait 1s"))
		})
	})

	Context("when the slot is granted", func() {
		It("returns the structured answer", func() {
			var gotPrompt string
			client.chatFn = func(_ context.Context, req llm.Request, result any) (*llm.Response, error) {
				gotPrompt = req.UserPrompt
				Expect(json.Unmarshal([]byte(`{"answer":"Jupiter favors the ninth house."}`), result)).To(Succeed())
				return &llm.Response{}, nil
			}

			result, err := svc.Interpret(ctx, "Will I travel?", chartData, "Asha")
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Response).To(Equal("Jupiter favors the ninth house."))
			Expect(result.Cooldown).To(BeZero())

			Expect(gotPrompt).To(ContainSubstring("Asha"))
			Expect(gotPrompt).To(ContainSubstring(`"asc_sign":"Leo"`))
			Expect(gotPrompt).To(ContainSubstring("Will I travel?"))
		})

		It("falls back to plain completion when the structured call fails", func() {
			client.chatFn = func(context.Context, llm.Request, any) (*llm.Response, error) {
				return nil, errors.New("schema rejected")
			}
			client.completeFn = func(context.Context, string, string, int) (string, error) {
				return "assistant: A favorable period lies ahead.", nil
			}

			result, err := svc.Interpret(ctx, "question", chartData, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Response).To(Equal("A favorable period lies ahead."), "role tags are stripped")
		})

		It("degrades to the unavailable message when both calls fail", func() {
			client.chatFn = func(context.Context, llm.Request, any) (*llm.Response, error) {
				return nil, errors.New("boom")
			}
			client.completeFn = func(context.Context, string, string, int) (string, error) {
				return "", errors.New("boom again")
			}

			result, err := svc.Interpret(ctx, "question", chartData, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Response).To(ContainSubstring("unavailable"))
		})
	})

	Context("when no credential is configured", func() {
		It("returns the unavailable message", func() {
			svc = service.NewInterpretService(limiter, nil)

			result, err := svc.Interpret(ctx, "question", chartData, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Response).To(ContainSubstring("unavailable"))
			Expect(result.Cooldown).To(BeZero())
		})
	})

	Context("when the limiter backend fails", func() {
		It("fails open and still narrates", func() {
			limiter.acquireFn = func(context.Context) (bool, time.Duration, error) {
				return false, 0, errors.New("redis down")
			}
			client.chatFn = func(_ context.Context, _ llm.Request, result any) (*llm.Response, error) {
				Expect(json.Unmarshal([]byte(`{"answer":"ok"}`), result)).To(Succeed())
				return &llm.Response{}, nil
			}

			result, err := svc.Interpret(ctx, "question", chartData, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Response).To(Equal("ok"))
		})
	})
})

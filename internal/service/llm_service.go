package service

import (
	"context"
	"fmt"
	"strings"

	"spendlens/pkg/config"

	"github.com/Role1776/gigago"
	"go.uber.org/zap"
)

// systemInstruction pins the model to the financial-advisor role so per-call
// prompts stay small.
const systemInstruction = `You are a professional personal-finance advisor. ` +
	`You analyze spending trends and savings goals and write short, clear, practical reports. ` +
	`Always answer in plain text without markdown markup, stay concrete, and never invent transactions or amounts that are not in the data you were given.`

// LLMService is the GigaChat-backed Completer implementation.
type LLMService struct {
	client *gigago.Client
	model  *gigago.GenerativeModel
	logger *zap.Logger
}

func NewLLMService(cfg *config.GigaChatConfig, logger *zap.Logger) (*LLMService, error) {
	ctx := context.Background()

	opts := []gigago.Option{
		gigago.WithCustomScope(cfg.Scope),
	}
	if cfg.InsecureSkipVerify {
		opts = append(opts, gigago.WithCustomInsecureSkipVerify(true))
		logger.Warn("GigaChat TLS certificate verification is disabled")
	}

	client, err := gigago.NewClient(ctx, cfg.APIKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GigaChat client: %w", err)
	}

	model := client.GenerativeModel("GigaChat")
	model.SystemInstruction = systemInstruction
	model.Temperature = 0.3

	return &LLMService{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

// Complete sends a single prompt and returns the generated text. Safe to call
// repeatedly; each call is an independent generation request.
func (s *LLMService) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := s.model.Generate(ctx, []gigago.Message{
		{Role: gigago.RoleUser, Content: prompt},
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate response: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from LLM")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (s *LLMService) Close() error {
	if s.client != nil {
		s.client.Close()
	}
	return nil
}

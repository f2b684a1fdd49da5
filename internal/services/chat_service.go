package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// ErrChatNotConfigured is returned at startup when no API key is set. The
// condition is terminal for the process: callers disable the chat surface
// instead of retrying per request.
var ErrChatNotConfigured = errors.New("chat service is not configured")

const defaultChatModel = "gemini-2.0-flash"

// ChatTurn is one prior exchange in the conversation, reconstructed by the
// client on each request. No conversation memory is kept server-side.
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatService wraps the Gemini completion API as a stateless
// prompt-to-text call with a target response language.
type ChatService struct {
	client *genai.Client
	model  string
}

func NewChatService(ctx context.Context, apiKey, model string) (*ChatService, error) {
	if apiKey == "" {
		return nil, ErrChatNotConfigured
	}
	if model == "" {
		model = defaultChatModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &ChatService{client: client, model: model}, nil
}

// Complete sends the assembled prompt and returns the generated reply.
// language is "en" or "fa"; history is concatenated into the prompt, since
// the endpoint holds no state between turns.
func (s *ChatService) Complete(ctx context.Context, history []ChatTurn, message, language string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", ErrInvalidInput
	}

	var instruction string
	switch language {
	case "en", "":
		instruction = "You are a friendly health and wellness assistant. Respond in English."
	case "fa":
		instruction = "You are a friendly health and wellness assistant. Respond in Persian (Farsi)."
	default:
		return "", ErrInvalidInput
	}

	var prompt strings.Builder
	prompt.WriteString(instruction)
	prompt.WriteString("\n\n")
	for _, turn := range history {
		switch turn.Role {
		case "user":
			prompt.WriteString("User: ")
		case "assistant":
			prompt.WriteString("Assistant: ")
		default:
			continue
		}
		prompt.WriteString(strings.TrimSpace(turn.Content))
		prompt.WriteString("\n")
	}
	prompt.WriteString("User: ")
	prompt.WriteString(message)
	prompt.WriteString("\nAssistant:")

	contents := []*genai.Content{
		genai.NewContentFromText(prompt.String(), genai.RoleUser),
	}
	result, err := s.client.Models.GenerateContent(ctx, s.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("generate completion: %w", err)
	}

	reply := strings.TrimSpace(result.Text())
	if reply == "" {
		return "", fmt.Errorf("empty completion response")
	}
	return reply, nil
}

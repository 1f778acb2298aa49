package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// ChatTurn is one message in a chat-completions conversation.
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// OpenAIClient is a thin client for the chat-completions API. The base URL is
// configurable so tests (or a compatible provider) can point it elsewhere.
type OpenAIClient struct {
	http  *resty.Client
	model string
}

var AI *OpenAIClient

// NewOpenAIClient builds a client for the given endpoint and model.
func NewOpenAIClient(baseURL, apiKey, model string) *OpenAIClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(apiKey).
		SetHeader("Content-Type", "application/json").
		SetTimeout(60 * time.Second)

	return &OpenAIClient{http: client, model: model}
}

// InitOpenAI configures the shared client used by all AI endpoints.
func InitOpenAI(baseURL, apiKey, model string) {
	AI = NewOpenAIClient(baseURL, apiKey, model)
}

type chatCompletionRequest struct {
	Model    string     `json:"model"`
	Messages []ChatTurn `json:"messages"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Complete sends the conversation and returns the assistant's text. No retries
// and no streaming; an upstream failure is returned to the caller as-is.
func (c *OpenAIClient) Complete(ctx context.Context, messages []ChatTurn) (string, error) {
	if c == nil {
		return "", errors.New("openai client not initialized")
	}

	var out chatCompletionResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(chatCompletionRequest{Model: c.model, Messages: messages}).
		SetResult(&out).
		SetError(&out).
		Post("/chat/completions")
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		if out.Error != nil && out.Error.Message != "" {
			return "", fmt.Errorf("openai: %s", out.Error.Message)
		}
		return "", fmt.Errorf("openai: unexpected status %d", resp.StatusCode())
	}
	if len(out.Choices) == 0 {
		return "", errors.New("openai: empty response")
	}

	return out.Choices[0].Message.Content, nil
}

// CompleteWithSystem is a convenience wrapper for a single system prompt plus
// prior history and the latest user message.
func (c *OpenAIClient) CompleteWithSystem(ctx context.Context, system string, history []ChatTurn, userMessage string) (string, error) {
	messages := make([]ChatTurn, 0, len(history)+2)
	messages = append(messages, ChatTurn{Role: "system", Content: system})
	for _, turn := range history {
		if turn.Role != "user" && turn.Role != "assistant" {
			continue
		}
		messages = append(messages, turn)
	}
	messages = append(messages, ChatTurn{Role: "user", Content: userMessage})
	return c.Complete(ctx, messages)
}

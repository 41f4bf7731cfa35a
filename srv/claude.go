package srv

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// Message is one conversational turn. Role is "user" or "assistant"; the
// system prompt travels separately.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// LLM is the language-model collaborator. The core treats it as a black
// box returning text for a conversation.
type LLM interface {
	Complete(ctx context.Context, systemPrompt string, history []Message) (string, error)
}

type ClaudeClient struct {
	client *anthropic.Client
}

func NewClaudeClient(apiKey string) *ClaudeClient {
	client := anthropic.NewClient(
		option.WithAPIKey(apiKey),
	)
	return &ClaudeClient{
		client: client,
	}
}

func (c *ClaudeClient) Complete(ctx context.Context, systemPrompt string, history []Message) (string, error) {
	messages := make([]anthropic.MessageParam, 0, len(history))
	for _, msg := range history {
		if msg.Role == "assistant" {
			messages = append(messages, anthropic.NewAssistantMessage(anthropic.NewTextBlock(msg.Content)))
		} else {
			messages = append(messages, anthropic.NewUserMessage(anthropic.NewTextBlock(msg.Content)))
		}
	}

	message, err := c.client.Messages.New(
		ctx,
		anthropic.MessageNewParams{
			Model:     anthropic.F(anthropic.ModelClaude3_5SonnetLatest),
			MaxTokens: anthropic.F(int64(8192)),
			System: anthropic.F([]anthropic.TextBlockParam{
				anthropic.NewTextBlock(systemPrompt),
			}),
			Messages: anthropic.F(messages),
		},
	)

	if err != nil {
		return "", fmt.Errorf("claude api error: %w", err)
	}

	if len(message.Content) == 0 {
		return "", fmt.Errorf("empty response from claude")
	}

	return message.Content[0].Text, nil
}

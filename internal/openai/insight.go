package openai

import (
	"context"
	"fmt"
	"strings"

	oa "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type Insight struct {
	cli oa.Client
}

func NewInsight(apiKey string) *Insight {
	client := oa.NewClient(option.WithAPIKey(apiKey))
	return &Insight{cli: client}
}

// HeadlineInsight turns the day's headlines into a one-line market driver
// note appended to the /news reply.
func (s *Insight) HeadlineInsight(ctx context.Context, headlines []string) (string, error) {
	if len(headlines) == 0 {
		return "", fmt.Errorf("no headlines")
	}

	resp, err := s.cli.Chat.Completions.New(ctx, oa.ChatCompletionNewParams{
		Model: "gpt-4",
		Messages: []oa.ChatCompletionMessageParamUnion{
			oa.SystemMessage("You are a concise Indian equity-market analyst. Given today's business headlines, reply with exactly one short sentence starting with 'Reason:' naming the most likely market driver (global cues, FII flows, inflation data, earnings, profit booking, etc). No preamble, no bullets."),
			oa.UserMessage("Today's headlines:\n" + strings.Join(headlines, "\n")),
		},
		MaxTokens: oa.Int(80),
	})
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

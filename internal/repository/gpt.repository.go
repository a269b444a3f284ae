package repository

import (
	"context"
	"fmt"

	"github.com/ayush6624/go-chatgpt"
)

type GptRepository interface {
	SuggestPortfolio(ctx context.Context, description string) (string, error)
}

type gptRepositoryHandler struct {
	GptClient *chatgpt.Client
}

func NewGptRepository(apiKey string) (GptRepository, error) {
	client, err := chatgpt.NewClient(apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to construct gpt client: %w", err)
	}

	return gptRepositoryHandler{
		GptClient: client,
	}, nil
}

const prompt = `
You are helping a user draft a starting allocation for an investment backtest. They will describe in English what they want to invest in and roughly how. You must output ONLY a JSON array of asset rows, no prose, where each row has this shape:

{
  "symbol": string,          // a real ticker, or a short label for cash
  "amount": number,          // lump sum total, or per-period contribution for DCA
  "investmentType": string,  // "LUMP_SUM" or "DCA"
  "dcaFrequency": string,    // required when investmentType is "DCA"; one of WEEKLY, BIWEEKLY, EVERY_4_WEEKS, EVERY_8_WEEKS, EVERY_12_WEEKS, EVERY_24_WEEKS, EVERY_48_WEEKS
  "assetClass": string       // "SECURITY" or "CASH"
}

Amounts should be whole currency units. If the user names a budget, make the amounts add up to it. If they don't, pick something reasonable around 10000 total.

here's an example:
"I want mostly broad US market, a bit of bonds, and 100 a week into bitcoin"

expected output:
[
  {"symbol": "VTI", "amount": 7000, "investmentType": "LUMP_SUM", "assetClass": "SECURITY"},
  {"symbol": "BND", "amount": 2000, "investmentType": "LUMP_SUM", "assetClass": "SECURITY"},
  {"symbol": "BTC-USD", "amount": 100, "investmentType": "DCA", "dcaFrequency": "WEEKLY", "assetClass": "SECURITY"}
]
`

func (h gptRepositoryHandler) SuggestPortfolio(ctx context.Context, description string) (string, error) {
	res, err := h.GptClient.Send(ctx, &chatgpt.ChatCompletionRequest{
		Model: chatgpt.GPT35Turbo,
		Messages: []chatgpt.ChatMessage{
			{
				Role:    chatgpt.ChatGPTModelRoleSystem,
				Content: prompt,
			},
			{
				Role:    chatgpt.ChatGPTModelRoleUser,
				Content: description,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to get allocation suggestion: %w", err)
	}
	if len(res.Choices) == 0 {
		return "", fmt.Errorf("gpt returned no choices")
	}

	return res.Choices[0].Message.Content, nil
}

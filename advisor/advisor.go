// Package advisor asks a Gemini model to read the tracked-price table and
// offer purchase recommendations. It is strictly an output consumer: a
// failure here never touches the persisted tables.
package advisor

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// DefaultModel is the model used when the caller does not pick one.
const DefaultModel = "gemini-2.5-flash"

const systemPrompt = `You are a frugal household purchasing assistant.
You are given a price tracker table in markdown. Each row is one observation
of an item: its price, the change against the previous observation, and its
running average price. Analyze the trends and recommend, per item, whether
now is a good moment to buy, to wait, or to watch. Be brief and concrete.`

// Advisor holds the model configuration for one-shot table reviews.
type Advisor struct {
	ModelName string
}

// New returns an Advisor on the default model.
func New() *Advisor {
	return &Advisor{ModelName: DefaultModel}
}

// Advise sends the rendered tracked table plus an optional user question and
// returns the model's recommendation as markdown text.
func (a *Advisor) Advise(ctx context.Context, client *genai.Client, table, question string) (string, error) {
	if question == "" {
		question = "Which items are worth buying now, and which should I wait on?"
	}

	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt}},
		},
	}
	contents := []*genai.Content{
		{Role: genai.RoleUser, Parts: []*genai.Part{
			{Text: table},
			{Text: question},
		}},
	}

	resp, err := client.Models.GenerateContent(ctx, a.ModelName, contents, config)
	if err != nil {
		return "", fmt.Errorf("advisor request failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from advisor")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

package engine

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/davitran/audioscribe/internal/logger"
)

const answerPreamble = `You are a helpful assistant. Answer the question using the recording summary below.

Summary:
---
%s
---

Question: %s`

type implGemini struct {
	apiKeys    []string
	currentKey int
	model      string
	logger     logger.Logger
}

func (g *implGemini) Summarize(ctx context.Context, chunk string, maxChars int) (string, error) {
	prompt := fmt.Sprintf(summaryInstruction, maxChars) + "\n\n" + chunk
	return g.generate(ctx, prompt)
}

func (g *implGemini) Answer(ctx context.Context, summaryContext, question string) (string, error) {
	text, err := g.generate(ctx, fmt.Sprintf(answerPreamble, summaryContext, question))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// generate sends the prompt to Gemini and returns the response text.
// Rotates API keys on 429 / quota errors.
func (g *implGemini) generate(ctx context.Context, prompt string) (string, error) {
	attempts := len(g.apiKeys)
	var lastErr error

	for range attempts {
		key := g.apiKeys[g.currentKey]

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			g.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				g.logger.Warn(ctx, "Key %d rate limited, rotating...", g.currentKey+1)
				g.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text += part.Text
				}
			}
			return text, nil
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (g *implGemini) rotateKey() {
	g.currentKey = (g.currentKey + 1) % len(g.apiKeys)
}

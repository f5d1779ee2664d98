package engine

import (
	"context"
	"fmt"
	"io"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/davitran/audioscribe/internal/config"
	"github.com/davitran/audioscribe/internal/logger"
)

const summaryInstruction = "Give a very long and detailed summary, but keep it to max %d characters."

type implOpenAI struct {
	client *openai.Client
	cfg    config.OpenAIConfig
	logger logger.Logger
}

// Transcribe sends one segment to the Whisper audio transcription endpoint.
// The segment name carries the extension, which is how the engine learns the
// container format; the hint matters for raw formats such as wav.
func (o *implOpenAI) Transcribe(ctx context.Context, audio io.Reader, name, formatHint string) (string, error) {
	o.logger.Debug(ctx, "Transcribing %s (format hint %q) with %s", name, formatHint, o.cfg.TranscribeModel)

	resp, err := o.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    o.cfg.TranscribeModel,
		Reader:   audio,
		FilePath: name,
	})
	if err != nil {
		return "", fmt.Errorf("whisper transcription: %w", err)
	}

	return resp.Text, nil
}

// Summarize condenses one transcript chunk. The length bound is an
// instruction in the prompt; the output is not truncated here.
func (o *implOpenAI) Summarize(ctx context.Context, chunk string, maxChars int) (string, error) {
	o.logger.Debug(ctx, "Summarizing %d characters with %s", len(chunk), o.cfg.SummaryModel)

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.cfg.SummaryModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: chunk},
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf(summaryInstruction, maxChars)},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}

// Answer asks one question against the summary. Every call rebuilds the
// message list from scratch; prior questions are not carried over.
func (o *implOpenAI) Answer(ctx context.Context, summaryContext, question string) (string, error) {
	o.logger.Debug(ctx, "Answering question (%d chars of context) with %s", len(summaryContext), o.cfg.AnswerModel)

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.cfg.AnswerModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: "You are a helpful assistant."},
			{Role: openai.ChatMessageRoleUser, Content: summaryContext},
			{Role: openai.ChatMessageRoleUser, Content: question},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

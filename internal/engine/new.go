package engine

import (
	openai "github.com/sashabaranov/go-openai"

	"github.com/davitran/audioscribe/internal/config"
	"github.com/davitran/audioscribe/internal/logger"
)

// OpenAI implements Transcriber, Summarizer and Answerer against the OpenAI API.
type OpenAI interface {
	Transcriber
	Summarizer
	Answerer
}

// Gemini implements Summarizer and Answerer against the Gemini API, rotating
// through the supplied keys on quota errors. Transcription always goes
// through Whisper, so Gemini does not implement Transcriber.
type Gemini interface {
	Summarizer
	Answerer
}

// NewOpenAI creates an OpenAI-backed engine.
func NewOpenAI(cfg config.OpenAIConfig, log logger.Logger) OpenAI {
	return &implOpenAI{
		client: openai.NewClient(cfg.APIKey),
		cfg:    cfg,
		logger: log,
	}
}

// NewGemini creates a Gemini-backed engine.
func NewGemini(cfg config.GeminiConfig, log logger.Logger) Gemini {
	return &implGemini{
		apiKeys: cfg.APIKeys,
		model:   cfg.Model,
		logger:  log,
	}
}

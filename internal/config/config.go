package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Provider string         `yaml:"provider"`
	OpenAI   OpenAIConfig   `yaml:"openai"`
	Gemini   GeminiConfig   `yaml:"gemini"`
	Cache    CacheConfig    `yaml:"cache"`
	Pipeline PipelineConfig `yaml:"pipeline"`
	FFmpeg   FFmpegConfig   `yaml:"ffmpeg"`
	Logging  LoggingConfig  `yaml:"logging"`
	Watch    WatchConfig    `yaml:"watch"`
}

type OpenAIConfig struct {
	APIKey          string `yaml:"-"`
	TranscribeModel string `yaml:"transcribe_model"`
	SummaryModel    string `yaml:"summary_model"`
	AnswerModel     string `yaml:"answer_model"`
}

type GeminiConfig struct {
	APIKeys []string `yaml:"-"`
	Model   string   `yaml:"model"`
}

type CacheConfig struct {
	Dir string `yaml:"dir"`
}

type PipelineConfig struct {
	SegmentMs       int64  `yaml:"segment_ms"`
	ChunkWords      int    `yaml:"chunk_words"`
	SummaryMaxChars int    `yaml:"summary_max_chars"`
	ExitWord        string `yaml:"exit_word"`
}

type FFmpegConfig struct {
	Binary      string `yaml:"binary"`
	ProbeBinary string `yaml:"probe_binary"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type WatchConfig struct {
	InputDir      string `yaml:"input_dir"`
	MaxConcurrent int    `yaml:"max_concurrent"`
}

// Load reads the YAML config file, fills secrets from the environment,
// and applies defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.loadSecrets()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// loadSecrets pulls API keys from the environment (optionally seeded from a
// .env file). Keys never live in the YAML file.
func (c *Config) loadSecrets() {
	_ = godotenv.Load()

	c.OpenAI.APIKey = os.Getenv("OPENAI_API_KEY")

	if raw := os.Getenv("GEMINI_API_KEYS"); raw != "" {
		for _, k := range strings.Split(raw, ",") {
			if k = strings.TrimSpace(k); k != "" {
				c.Gemini.APIKeys = append(c.Gemini.APIKeys, k)
			}
		}
	}
}

func (c *Config) Validate() error {
	if c.Provider == "" {
		c.Provider = "openai"
	}
	switch c.Provider {
	case "openai", "gemini":
	default:
		return fmt.Errorf("provider must be \"openai\" or \"gemini\", got %q", c.Provider)
	}

	if c.OpenAI.TranscribeModel == "" {
		c.OpenAI.TranscribeModel = "whisper-1"
	}
	if c.OpenAI.SummaryModel == "" {
		c.OpenAI.SummaryModel = "gpt-3.5-turbo"
	}
	if c.OpenAI.AnswerModel == "" {
		c.OpenAI.AnswerModel = "gpt-4"
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}

	if c.Cache.Dir == "" {
		c.Cache.Dir = "cache"
	}

	if c.Pipeline.SegmentMs == 0 {
		c.Pipeline.SegmentMs = 300000
	}
	if c.Pipeline.SegmentMs < 0 {
		return fmt.Errorf("pipeline.segment_ms must be positive")
	}
	if c.Pipeline.ChunkWords == 0 {
		c.Pipeline.ChunkWords = 3000
	}
	if c.Pipeline.ChunkWords < 0 {
		return fmt.Errorf("pipeline.chunk_words must be positive")
	}
	if c.Pipeline.SummaryMaxChars == 0 {
		c.Pipeline.SummaryMaxChars = 4096
	}
	if c.Pipeline.ExitWord == "" {
		c.Pipeline.ExitWord = "exit"
	}

	if c.FFmpeg.Binary == "" {
		c.FFmpeg.Binary = "ffmpeg"
	}
	if c.FFmpeg.ProbeBinary == "" {
		c.FFmpeg.ProbeBinary = "ffprobe"
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	if c.Watch.MaxConcurrent == 0 {
		c.Watch.MaxConcurrent = 1
	}

	return nil
}

// ValidateSecrets checks that the configured provider has its API keys.
// Separate from Validate so maintenance operations that never reach an
// engine (like clearing the cache) work without credentials.
func (c *Config) ValidateSecrets() error {
	if c.OpenAI.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required (transcription always uses Whisper)")
	}
	if c.Provider == "gemini" && len(c.Gemini.APIKeys) == 0 {
		return fmt.Errorf("GEMINI_API_KEYS is required for the gemini provider")
	}
	return nil
}

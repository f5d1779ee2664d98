package config

import (
	"os"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "empty config gets defaults",
			config:  Config{},
			wantErr: false,
		},
		{
			name:    "explicit openai provider",
			config:  Config{Provider: "openai"},
			wantErr: false,
		},
		{
			name:    "gemini provider",
			config:  Config{Provider: "gemini"},
			wantErr: false,
		},
		{
			name:    "unknown provider",
			config:  Config{Provider: "acme"},
			wantErr: true,
		},
		{
			name:    "negative segment length",
			config:  Config{Pipeline: PipelineConfig{SegmentMs: -1}},
			wantErr: true,
		},
		{
			name:    "negative chunk words",
			config:  Config{Pipeline: PipelineConfig{ChunkWords: -5}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateSecrets(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "openai with key",
			config:  Config{Provider: "openai", OpenAI: OpenAIConfig{APIKey: "sk-test"}},
			wantErr: false,
		},
		{
			name:    "missing openai key",
			config:  Config{Provider: "openai"},
			wantErr: true,
		},
		{
			name:    "gemini without gemini keys",
			config:  Config{Provider: "gemini", OpenAI: OpenAIConfig{APIKey: "sk-test"}},
			wantErr: true,
		},
		{
			name: "gemini with keys",
			config: Config{
				Provider: "gemini",
				OpenAI:   OpenAIConfig{APIKey: "sk-test"},
				Gemini:   GeminiConfig{APIKeys: []string{"g-1", "g-2"}},
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.ValidateSecrets()
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSecrets() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Pipeline.SegmentMs != 300000 {
		t.Errorf("SegmentMs = %d, want 300000", cfg.Pipeline.SegmentMs)
	}
	if cfg.Pipeline.ChunkWords != 3000 {
		t.Errorf("ChunkWords = %d, want 3000", cfg.Pipeline.ChunkWords)
	}
	if cfg.Pipeline.SummaryMaxChars != 4096 {
		t.Errorf("SummaryMaxChars = %d, want 4096", cfg.Pipeline.SummaryMaxChars)
	}
	if cfg.Pipeline.ExitWord != "exit" {
		t.Errorf("ExitWord = %q, want %q", cfg.Pipeline.ExitWord, "exit")
	}
	if cfg.Cache.Dir != "cache" {
		t.Errorf("Cache.Dir = %q, want %q", cfg.Cache.Dir, "cache")
	}
	if cfg.OpenAI.TranscribeModel != "whisper-1" {
		t.Errorf("TranscribeModel = %q, want %q", cfg.OpenAI.TranscribeModel, "whisper-1")
	}
	if cfg.FFmpeg.Binary != "ffmpeg" || cfg.FFmpeg.ProbeBinary != "ffprobe" {
		t.Errorf("FFmpeg defaults = %q/%q", cfg.FFmpeg.Binary, cfg.FFmpeg.ProbeBinary)
	}
}

func TestLoad(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("GEMINI_API_KEYS", "g-1, g-2")

	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
provider: "openai"

openai:
  transcribe_model: "whisper-1"
  summary_model: "gpt-3.5-turbo"
  answer_model: "gpt-4"

cache:
  dir: "testcache"

pipeline:
  segment_ms: 60000
  chunk_words: 500

logging:
  level: "debug"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.OpenAI.APIKey != "sk-test" {
		t.Errorf("APIKey = %q, want %q", cfg.OpenAI.APIKey, "sk-test")
	}
	if len(cfg.Gemini.APIKeys) != 2 || cfg.Gemini.APIKeys[1] != "g-2" {
		t.Errorf("Gemini.APIKeys = %v, want [g-1 g-2]", cfg.Gemini.APIKeys)
	}
	if cfg.Cache.Dir != "testcache" {
		t.Errorf("Cache.Dir = %q, want %q", cfg.Cache.Dir, "testcache")
	}
	if cfg.Pipeline.SegmentMs != 60000 {
		t.Errorf("SegmentMs = %d, want 60000", cfg.Pipeline.SegmentMs)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}

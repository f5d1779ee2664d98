package export

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteDocx(t *testing.T) {
	out := filepath.Join(t.TempDir(), "meeting.docx")

	summary := "# Overview\n\nThe team discussed **rollout plans**.\n\n- step one\n- step two\n1. numbered item\n---\n"
	transcript := "so as I was saying the rollout starts next week and everyone should be ready"

	if err := WriteDocx("meeting", transcript, summary, out); err != nil {
		t.Fatalf("WriteDocx() error = %v", err)
	}

	info, err := os.Stat(out)
	if err != nil {
		t.Fatalf("output missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("output document is empty")
	}
}

func TestCleanMarkdownInline(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"**bold**", "bold"},
		{"__also bold__", "also bold"},
		{"`code`", "code"},
		{"plain", "plain"},
	}

	for _, tt := range tests {
		if got := cleanMarkdownInline(tt.in); got != tt.want {
			t.Errorf("cleanMarkdownInline(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHeadingSize(t *testing.T) {
	if headingSize(1) <= headingSize(3) {
		t.Error("heading sizes should decrease with depth")
	}
	if headingSize(5) != fontSize {
		t.Errorf("deep headings should fall back to body size")
	}
}

package cache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/davitran/audioscribe/internal/logger"
)

const testFingerprint = "0f343b0931126a20f133d67c2b018a3b1c0a9f5d0f343b0931126a20f133d67c"

func newTestCache(t *testing.T) (ArtifactCache, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "cache")
	return New(dir, logger.New("error")), dir
}

func TestGetMissOnAbsentRoot(t *testing.T) {
	c, _ := newTestCache(t)

	text, ok, err := c.Get(testFingerprint, KindTranscript)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if ok || text != "" {
		t.Errorf("Get() on absent root = (%q, %v), want miss", text, ok)
	}
}

func TestPutGetRoundTrip(t *testing.T) {
	c, dir := newTestCache(t)

	if err := c.Put(testFingerprint, KindTranscript, "hello transcript"); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	text, ok, err := c.Get(testFingerprint, KindTranscript)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !ok || text != "hello transcript" {
		t.Errorf("Get() = (%q, %v), want cached text", text, ok)
	}

	// One flat blob per (fingerprint, kind).
	want := filepath.Join(dir, testFingerprint+"_transcript.txt")
	if _, err := os.Stat(want); err != nil {
		t.Errorf("expected entry file at %s: %v", want, err)
	}
}

func TestKindsAreIndependent(t *testing.T) {
	c, _ := newTestCache(t)

	if err := c.Put(testFingerprint, KindTranscript, "transcript"); err != nil {
		t.Fatal(err)
	}

	_, ok, err := c.Get(testFingerprint, KindSummary)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if ok {
		t.Error("summary should be a miss when only the transcript is cached")
	}
}

func TestOverwriteIsSafe(t *testing.T) {
	c, _ := newTestCache(t)

	if err := c.Put(testFingerprint, KindSummary, "first"); err != nil {
		t.Fatal(err)
	}
	if err := c.Put(testFingerprint, KindSummary, "second"); err != nil {
		t.Fatalf("overwrite Put() error = %v", err)
	}

	text, ok, _ := c.Get(testFingerprint, KindSummary)
	if !ok || text != "second" {
		t.Errorf("Get() after overwrite = (%q, %v), want second", text, ok)
	}
}

func TestClearAll(t *testing.T) {
	c, dir := newTestCache(t)

	if err := c.Put(testFingerprint, KindTranscript, "transcript"); err != nil {
		t.Fatal(err)
	}
	if err := c.Put(testFingerprint, KindSummary, "summary"); err != nil {
		t.Fatal(err)
	}

	if err := c.ClearAll(); err != nil {
		t.Fatalf("ClearAll() error = %v", err)
	}

	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Errorf("cache root still exists after ClearAll")
	}
	if _, ok, _ := c.Get(testFingerprint, KindTranscript); ok {
		t.Error("Get() hit after ClearAll")
	}

	// Clearing an already absent root is a no-op.
	if err := c.ClearAll(); err != nil {
		t.Errorf("ClearAll() on absent root error = %v", err)
	}
}

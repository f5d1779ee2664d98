package cache

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Get reads the persisted artifact for (fingerprint, kind). An absent cache
// root or file is a miss, not an error.
func (c *implCache) Get(fingerprint string, kind Kind) (string, bool, error) {
	data, err := os.ReadFile(c.entryPath(fingerprint, kind))
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read cache entry %s_%s: %w", fingerprint, kind, err)
	}

	return string(data), true, nil
}

// Put writes the artifact, creating the cache root if needed. Overwrites are
// not expected in normal operation but are safe.
func (c *implCache) Put(fingerprint string, kind Kind, text string) error {
	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return fmt.Errorf("create cache dir %s: %w", c.dir, err)
	}

	path := c.entryPath(fingerprint, kind)
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("write cache entry %s: %w", path, err)
	}

	c.logger.Debug(context.Background(), "Cached %s artifact: %s", kind, path)
	return nil
}

// ClearAll removes the entire cache root: all fingerprints, all kinds.
// Destructive and non-reversible. An absent root is a no-op.
func (c *implCache) ClearAll() error {
	if err := os.RemoveAll(c.dir); err != nil {
		return fmt.Errorf("clear cache dir %s: %w", c.dir, err)
	}
	return nil
}

func (c *implCache) entryPath(fingerprint string, kind Kind) string {
	return filepath.Join(c.dir, fmt.Sprintf("%s_%s.txt", fingerprint, kind))
}

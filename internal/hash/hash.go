package hash

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
)

// blockSize is the read granularity; inputs are streamed, never loaded whole.
const blockSize = 4096

// Fingerprint folds the reader's bytes into a SHA-256 digest and returns it
// as a lowercase hex string. Identical byte content always yields the same
// fingerprint.
func Fingerprint(r io.Reader) (string, error) {
	h := sha256.New()

	buf := make([]byte, blockSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			h.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// FingerprintFile computes the fingerprint of a file's raw bytes.
func FingerprintFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	return Fingerprint(f)
}

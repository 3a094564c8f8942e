package util

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
)

// SHA256HexFromReader streams r through SHA-256 and returns the hex digest.
// Used to fingerprint uploaded documents without buffering them in memory.
func SHA256HexFromReader(r io.Reader) (string, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

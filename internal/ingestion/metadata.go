package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/jonathan/job-ats/internal/types"
)

// stampSource records the content hash of the adapted text and the adaptation time.
// FetchedAt is kept when the fetch path already set it.
func stampSource(src types.SourceDescriptor, text string, now time.Time) types.SourceDescriptor {
	src.ContentHash = computeHash(text)
	if src.FetchedAt == "" {
		src.FetchedAt = now.UTC().Format(time.RFC3339)
	}
	return src
}

// computeHash computes SHA256 hash of content and returns hex string
func computeHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}

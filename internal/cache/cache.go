// Package cache memoizes formatted output so repeated calls over the
// same abstract skip the NLP pipeline.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// Cache defines the interface for result caching
type Cache interface {
	Get(key string) (string, bool)
	Set(key string, value string, ttl time.Duration)
	Clear()
}

// Key derives a cache key from the input text and the rendering
// parameters that affect the output
func Key(text, format string, lineWidth int) string {
	hash := sha256.Sum256([]byte(text))
	return fmt.Sprintf("abstractfmt:v1:%s:%d:%s", format, lineWidth, hex.EncodeToString(hash[:]))
}

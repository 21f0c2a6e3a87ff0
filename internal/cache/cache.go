// Package cache provides TTL caching of verdicts and news results, keyed by
// a digest of the investigated subject.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/vietcheck/vietcheck/internal/model"
)

// Cache defines the interface for caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

const keyPrefix = "vietcheck:v1:"

// SubjectKey generates a cache key for a typed subject
func SubjectKey(subject model.Subject) string {
	return digest(string(subject.Type) + "|" + subject.Value + "|" + subject.BankName)
}

// ImageKey generates a cache key from the raw image payload
func ImageKey(data []byte) string {
	hash := sha256.Sum256(data)
	return keyPrefix + "img:" + hex.EncodeToString(hash[:])
}

// NewsKey is the fixed key for the cached news list
func NewsKey() string {
	return keyPrefix + "news"
}

func digest(s string) string {
	hash := sha256.Sum256([]byte(s))
	return keyPrefix + hex.EncodeToString(hash[:])
}

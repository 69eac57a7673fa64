// Package cache memoizes comparison responses. Strategy results are pure
// function outputs, so a hit is always safe to serve; nothing here is a
// system of record.
package cache

// Cache is a string-keyed blob store.
type Cache interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}

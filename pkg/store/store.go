// Package store is the app's only durable state: a synchronous key-value
// port mirroring per-origin browser storage. Values round-trip through
// JSON. A missing or unparseable value reads as absent; callers fall back
// to their defaults and never see a parse error.
package store

type Store interface {
	// Get unmarshals the value for key into out and reports whether a
	// usable value was found.
	Get(key string, out any) bool
	Set(key string, value any) error
	Remove(key string)
}

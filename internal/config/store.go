// Package config implements the confkit configuration store.
package config

// Store provides key-value access to configuration.
// Keys are flat strings (dotted keys like "server.port" are literal
// strings, not nested paths). Implementations are not safe for
// concurrent use; callers that share a Store across goroutines must
// synchronize around it.
type Store interface {
	// Has returns whether key is present.
	Has(key string) bool

	// Get returns the value for key and whether it was found.
	Get(key string) (string, bool)

	// Set writes key=value to the store, overwriting any previous
	// value. The store is memory-only; nothing is persisted.
	Set(key, value string)

	// All returns a copy of all key-value pairs.
	All() map[string]string
}

// Package store defines the durable key-value storage boundary. The catalog,
// the admin session flag and uploaded image payloads all live behind this
// interface so that consumers never depend on the persistence medium.
package store

import "errors"

// Well-known keys. Values are stored as-is; keys carry no version namespace,
// so a format change requires a manual migration or reset.
const (
	KeyCatalog     = "admin-products"
	KeySessionAuth = "admin-authenticated"
	KeySessionTime = "admin-auth-time"

	// UploadKeyPrefix prefixes the ad hoc per-upload image keys.
	UploadKeyPrefix = "uploaded-image-"
)

// ErrNotFound is returned by Get when the key has no value.
var ErrNotFound = errors.New("store: key not found")

// KVStore is a single-writer, multi-reader key-value store with
// last-writer-wins semantics. After Put returns, any subsequent Get in the
// same process observes the new value.
type KVStore interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Delete(key string) error
	// Keys returns all keys with the given prefix; an empty prefix lists
	// every key.
	Keys(prefix string) ([]string, error)
	Close() error
}

package cache

import (
	"github.com/goliatone/go-robotevents-cache/internal/cacheinfra"
)

// Store holds resolved entries as encoded payloads keyed by serialized Key.
// Pending state is not the store's concern; it only ever sees finished fetches.
type Store interface {
	Get(key string) ([]byte, bool)
	Set(key string, payload []byte)
	Delete(key string)
	Keys() []string
	Len() int
}

// EncodeRecords serializes a record sequence for storage. A nil or empty
// sequence encodes to a payload that decodes to an empty, non-nil slice.
func EncodeRecords[T any](records []T) ([]byte, error) {
	return cacheinfra.Encode(records)
}

// DecodeRecords decodes a stored payload into a slice owned by the caller.
func DecodeRecords[T any](payload []byte) ([]T, error) {
	return cacheinfra.Decode[T](payload)
}

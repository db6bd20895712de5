package cacheinfra

import (
	"github.com/puzpuzpuz/xsync/v3"
)

// mapStore keeps every payload until it is deleted. It has no capacity bound
// and no expiry.
type mapStore struct {
	entries *xsync.MapOf[string, []byte]
}

// NewMapStore builds the unbounded store used by default.
func NewMapStore() *mapStore {
	return &mapStore{entries: xsync.NewMapOf[string, []byte]()}
}

func (s *mapStore) Get(key string) ([]byte, bool) {
	return s.entries.Load(key)
}

func (s *mapStore) Set(key string, payload []byte) {
	s.entries.Store(key, payload)
}

// Delete removes a single entry. Deleting a missing key is a no-op.
func (s *mapStore) Delete(key string) {
	s.entries.Delete(key)
}

// Keys returns a snapshot of every stored key in no particular order.
func (s *mapStore) Keys() []string {
	keys := make([]string, 0, s.entries.Size())
	s.entries.Range(func(key string, _ []byte) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

func (s *mapStore) Len() int {
	return s.entries.Size()
}

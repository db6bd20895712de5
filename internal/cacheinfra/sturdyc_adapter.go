package cacheinfra

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-errors"
	"github.com/viccon/sturdyc"
)

// SessionTTL keeps entries for the lifetime of the process. Entries leave the
// store through explicit deletes, never through expiry.
const SessionTTL = 100 * 365 * 24 * time.Hour

// Config holds the store configuration. The sizing fields only apply when
// Bounded is set; the default store never evicts.
type Config struct {
	// Bounded selects the sturdyc store, which evicts EvictionPercentage of a
	// shard once the shard holds Capacity/NumShards entries. Evicted keys are
	// fetched again by the next preload.
	Bounded bool

	// Capacity defines the maximum number of entries that the store can hold.
	// Must be greater than 0.
	Capacity int

	// NumShards determines the number of shards for concurrent access.
	// Must be greater than 0. Default: 256
	NumShards int

	// TTL is the lifetime of a stored entry. Defaults to SessionTTL.
	TTL time.Duration

	// EvictionPercentage specifies what percentage of entries to evict
	// when the store reaches its capacity. Must be between 1-100.
	EvictionPercentage int

	// EvictionInterval sets how often sturdyc scans for expired entries.
	// Zero value uses the default interval.
	EvictionInterval time.Duration
}

// DefaultConfig returns a Config sized for a single app session.
func DefaultConfig() Config {
	return Config{
		Capacity:           10000,
		NumShards:          256,
		TTL:                SessionTTL,
		EvictionPercentage: 10,
	}
}

// ToSturdycOptions converts the Config to sturdyc.Option slice.
// Capacity, NumShards, TTL, and EvictionPercentage are passed directly
// to sturdyc.New() and are not included here.
func (c Config) ToSturdycOptions() []sturdyc.Option {
	var options []sturdyc.Option

	if c.EvictionInterval > 0 {
		options = append(options, sturdyc.WithEvictionInterval(c.EvictionInterval))
	}

	return options
}

// Validate checks if the configuration values are valid.
func (c Config) Validate() error {
	err := errors.ValidateWithOzzo(func() error {
		return validation.ValidateStruct(&c,
			validation.Field(&c.Capacity, validation.Required, validation.Min(1)),
			validation.Field(&c.NumShards, validation.Required, validation.Min(1)),
			validation.Field(&c.TTL, validation.Required, validation.Min(time.Nanosecond)),
			validation.Field(&c.EvictionPercentage, validation.Required, validation.Min(1), validation.Max(100)),
			validation.Field(&c.EvictionInterval, validation.Min(time.Duration(0))),
		)
	}, "invalid cache configuration")
	if err != nil {
		return err.WithTextCode("CACHE_CONFIG_INVALID")
	}
	return nil
}

// sturdycStore wraps a sturdyc client holding encoded entry payloads.
type sturdycStore struct {
	client *sturdyc.Client[[]byte]
}

// NewSturdycStore validates cfg and builds a sturdyc backed store.
//
// Version compatibility note: This implementation assumes sturdyc v1.x API.
func NewSturdycStore(cfg Config) (*sturdycStore, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client := sturdyc.New[[]byte](
		cfg.Capacity,
		cfg.NumShards,
		cfg.TTL,
		cfg.EvictionPercentage,
		cfg.ToSturdycOptions()...,
	)

	return &sturdycStore{client: client}, nil
}

// Get returns the payload stored under key.
func (s *sturdycStore) Get(key string) ([]byte, bool) {
	return s.client.Get(key)
}

// Set stores payload under key, replacing any previous payload.
func (s *sturdycStore) Set(key string, payload []byte) {
	s.client.Set(key, payload)
}

// Delete removes a single entry. Deleting a missing key is a no-op.
func (s *sturdycStore) Delete(key string) {
	s.client.Delete(key)
}

// Keys returns a snapshot of every stored key in no particular order.
func (s *sturdycStore) Keys() []string {
	return s.client.ScanKeys()
}

// Len reports the number of stored entries.
func (s *sturdycStore) Len() int {
	return s.client.Size()
}

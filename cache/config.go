package cache

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/goliatone/go-errors"

	"github.com/goliatone/go-robotevents-cache/internal/cacheinfra"
)

// EnvPrefix namespaces the environment variables read by LoadConfigFromEnv.
const EnvPrefix = "ROBOTEVENTS_CACHE_"

// Config exposes cache configuration options for consumers of the cache package.
type Config struct {
	// Bounded trades the session guarantee for a memory cap: entries may be
	// evicted once a store shard fills up.
	Bounded            bool          `env:"BOUNDED"`
	Capacity           int           `env:"CAPACITY"`
	NumShards          int           `env:"NUM_SHARDS"`
	TTL                time.Duration `env:"TTL"`
	EvictionPercentage int           `env:"EVICTION_PERCENTAGE"`
	EvictionInterval   time.Duration `env:"EVICTION_INTERVAL"`
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() Config {
	return convertFromInternal(cacheinfra.DefaultConfig())
}

// LoadConfigFromEnv starts from DefaultConfig and overrides every field that
// has a ROBOTEVENTS_CACHE_* variable set. The result is validated.
func LoadConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, errors.Wrap(err, errors.CategoryBadInput, "parse cache environment").
			WithTextCode("CACHE_ENV_INVALID")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks whether the configuration values are valid.
func (c Config) Validate() error {
	return c.toInternal().Validate()
}

// NewStore validates cfg and builds the store. Unless cfg.Bounded is set the
// store never evicts, so resolved entries live until they are deleted.
func NewStore(cfg Config) (Store, error) {
	if !cfg.Bounded {
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
		return cacheinfra.NewMapStore(), nil
	}

	store, err := cacheinfra.NewSturdycStore(cfg.toInternal())
	if err != nil {
		return nil, err
	}
	return store, nil
}

func (c Config) toInternal() cacheinfra.Config {
	return cacheinfra.Config{
		Bounded:            c.Bounded,
		Capacity:           c.Capacity,
		NumShards:          c.NumShards,
		TTL:                c.TTL,
		EvictionPercentage: c.EvictionPercentage,
		EvictionInterval:   c.EvictionInterval,
	}
}

func convertFromInternal(cfg cacheinfra.Config) Config {
	return Config{
		Bounded:            cfg.Bounded,
		Capacity:           cfg.Capacity,
		NumShards:          cfg.NumShards,
		TTL:                cfg.TTL,
		EvictionPercentage: cfg.EvictionPercentage,
		EvictionInterval:   cfg.EvictionInterval,
	}
}

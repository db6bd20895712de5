package di

import (
	"log/slog"

	"github.com/goliatone/go-errors"

	"github.com/goliatone/go-robotevents-cache/cache"
	"github.com/goliatone/go-robotevents-cache/resourcecache"
	"github.com/goliatone/go-robotevents-cache/robotevents"
)

// Container owns the single ResourceCache of an app session together with
// the store and key serializer it was built from. Build it once at startup
// and hand it to every consumer.
type Container struct {
	store         cache.Store
	keySerializer cache.KeySerializer
	resources     *resourcecache.ResourceCache
	config        cache.Config
	logger        *slog.Logger
}

// Option customizes a Container.
type Option func(*options)

type options struct {
	logger   *slog.Logger
	programs *robotevents.Programs
}

// WithLogger sets the logger shared by the container and the cache.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithPrograms overrides the program grade configuration.
func WithPrograms(programs robotevents.Programs) Option {
	return func(o *options) {
		o.programs = &programs
	}
}

// NewContainer validates config, builds the sturdyc store and wires the
// ResourceCache to fetcher.
func NewContainer(config cache.Config, fetcher robotevents.Fetcher, opts ...Option) (*Container, error) {
	if fetcher == nil {
		return nil, errors.New("resource cache requires a fetcher", errors.CategoryValidation).
			WithTextCode("FETCHER_REQUIRED")
	}

	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	store, err := cache.NewStore(config)
	if err != nil {
		return nil, err
	}

	keySerializer := cache.NewDefaultKeySerializer()

	cacheOpts := []resourcecache.Option{
		resourcecache.WithLogger(o.logger),
		resourcecache.WithKeySerializer(keySerializer),
	}
	if o.programs != nil {
		cacheOpts = append(cacheOpts, resourcecache.WithPrograms(*o.programs))
	}

	o.logger.Debug("resource cache initialized",
		slog.Bool("bounded", config.Bounded),
		slog.Int("capacity", config.Capacity),
		slog.Int("shards", config.NumShards),
	)

	return &Container{
		store:         store,
		keySerializer: keySerializer,
		resources:     resourcecache.New(fetcher, store, cacheOpts...),
		config:        config,
		logger:        o.logger,
	}, nil
}

// NewContainerWithDefaults creates a container using cache.DefaultConfig.
func NewContainerWithDefaults(fetcher robotevents.Fetcher, opts ...Option) (*Container, error) {
	return NewContainer(cache.DefaultConfig(), fetcher, opts...)
}

// NewContainerFromEnv creates a container from cache.LoadConfigFromEnv.
func NewContainerFromEnv(fetcher robotevents.Fetcher, opts ...Option) (*Container, error) {
	config, err := cache.LoadConfigFromEnv()
	if err != nil {
		return nil, err
	}
	return NewContainer(config, fetcher, opts...)
}

// ResourceCache returns the singleton cache instance.
func (c *Container) ResourceCache() *resourcecache.ResourceCache {
	return c.resources
}

// Store returns the store backing the cache. Writing to it directly bypasses
// the cache's state tracking; it is exposed for diagnostics.
func (c *Container) Store() cache.Store {
	return c.store
}

// KeySerializer returns the serializer shared by the store and the cache.
func (c *Container) KeySerializer() cache.KeySerializer {
	return c.keySerializer
}

// Config returns a copy of the cache configuration used by this container.
func (c *Container) Config() cache.Config {
	return c.config
}

// Logger returns the container logger.
func (c *Container) Logger() *slog.Logger {
	return c.logger
}

package resourcecache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/goliatone/go-errors"
	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync/v3"

	"github.com/goliatone/go-robotevents-cache/cache"
)

// TextCodeFetchFailed tags errors returned when the collaborator fetch fails.
const TextCodeFetchFailed = "RESOURCE_FETCH_FAILED"

type fetchFunc[T any] func(ctx context.Context, key cache.Key) ([]T, error)

// flight is the pending state of a key: the in-flight fetch every concurrent
// caller waits on. payload and err are written once, before done is closed.
type flight struct {
	id      string
	done    chan struct{}
	payload []byte
	err     error
}

func newFlight() *flight {
	return &flight{id: uuid.NewString(), done: make(chan struct{})}
}

func (f *flight) wait(ctx context.Context) ([]byte, error) {
	select {
	case <-f.done:
		return f.payload, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// resource is the cache engine for a single resource kind. Resolved entries
// live in the shared store; pending entries live in flights. Every state
// transition of a key happens inside flights.Compute for that key.
type resource[T any] struct {
	kind    cache.Kind
	store   cache.Store
	keys    cache.KeySerializer
	fetch   fetchFunc[T]
	flights *xsync.MapOf[string, *flight]
	logger  *slog.Logger
}

func newResource[T any](kind cache.Kind, store cache.Store, keys cache.KeySerializer, logger *slog.Logger, fetch fetchFunc[T]) *resource[T] {
	return &resource[T]{
		kind:    kind,
		store:   store,
		keys:    keys,
		fetch:   fetch,
		flights: xsync.NewMapOf[string, *flight](),
		logger:  logger.With(slog.String("kind", kind.String())),
	}
}

// get returns the resolved records for key, or an empty slice when the key is
// absent or pending.
func (r *resource[T]) get(key cache.Key) []T {
	skey := r.keys.SerializeKey(key)
	payload, ok := r.store.Get(skey)
	if !ok {
		return []T{}
	}
	return r.decode(skey, payload)
}

func (r *resource[T]) isLoading(key cache.Key) bool {
	_, ok := r.flights.Load(r.keys.SerializeKey(key))
	return ok
}

// preload returns cached records, joins the pending fetch, or starts one.
// Failures are logged by the flight and reported as an empty slice.
func (r *resource[T]) preload(ctx context.Context, key cache.Key) []T {
	skey := r.keys.SerializeKey(key)

	f, payload, hit := r.acquire(ctx, key, skey, false)
	if hit {
		return r.decode(skey, payload)
	}

	payload, err := f.wait(ctx)
	if err != nil {
		if ctx.Err() != nil {
			r.logger.Debug("stopped waiting for resource fetch",
				slog.String("key", skey),
				slog.String("fetch_id", f.id),
				slog.String("reason", ctx.Err().Error()),
			)
		}
		return []T{}
	}
	return r.decode(skey, payload)
}

// refresh evicts key and waits for a fresh fetch. A fetch that is already in
// flight is joined instead of duplicated.
func (r *resource[T]) refresh(ctx context.Context, key cache.Key) error {
	skey := r.keys.SerializeKey(key)
	f, _, _ := r.acquire(ctx, key, skey, true)
	_, err := f.wait(ctx)
	return err
}

// acquire performs the Absent->Pending transition. It returns the flight to
// wait on, or the stored payload when the key is already resolved and force
// is false.
func (r *resource[T]) acquire(ctx context.Context, key cache.Key, skey string, force bool) (f *flight, payload []byte, hit bool) {
	var started *flight

	f, _ = r.flights.Compute(skey, func(current *flight, loaded bool) (*flight, bool) {
		if loaded {
			return current, false
		}
		if force {
			r.store.Delete(skey)
		} else if cached, ok := r.store.Get(skey); ok {
			payload, hit = cached, true
			return nil, true
		}
		started = newFlight()
		return started, false
	})

	if started != nil {
		go r.run(ctx, key, skey, started)
	}
	return f, payload, hit
}

// run executes the fetch for f and settles the key. The result is stored only
// when f is still the registered flight, so a clear that happened meanwhile
// is not undone.
func (r *resource[T]) run(ctx context.Context, key cache.Key, skey string, f *flight) {
	ctx = context.WithoutCancel(ctx)

	logger := r.logger.With(slog.String("key", skey), slog.String("fetch_id", f.id))
	if tags := cacheTagsFromContext(ctx); len(tags) > 0 {
		logger = logger.With(slog.Any("tags", tags))
	}
	logger.Debug("resource fetch started")
	started := time.Now()

	payload, err := r.fetchPayload(ctx, key)
	if err != nil {
		err = r.fetchError(err, skey, f.id)
	}

	stored := false
	r.flights.Compute(skey, func(current *flight, loaded bool) (*flight, bool) {
		if !loaded || current != f {
			return current, !loaded
		}
		if err == nil {
			r.store.Set(skey, payload)
			stored = true
		}
		return nil, true
	})

	f.payload, f.err = payload, err
	close(f.done)

	if err != nil {
		var richErr *errors.Error
		if errors.As(err, &richErr) {
			errors.LogBySeverity(logger, richErr)
		}
		return
	}
	logger.Debug("resource fetch finished",
		slog.Duration("elapsed", time.Since(started)),
		slog.Bool("stored", stored),
	)
}

func (r *resource[T]) fetchPayload(ctx context.Context, key cache.Key) (payload []byte, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("fetch panicked: %v", rec)
		}
	}()

	records, err := r.fetch(ctx, key)
	if err != nil {
		return nil, err
	}
	return cache.EncodeRecords(records)
}

// fetchError tags a collaborator failure. Plain errors become external errors;
// a go-errors *Error keeps the category its producer chose.
func (r *resource[T]) fetchError(err error, skey, fetchID string) error {
	return errors.Wrap(err, errors.CategoryExternal, "fetch "+r.kind.String()).
		WithTextCode(TextCodeFetchFailed).
		WithSeverity(errors.SeverityWarning).
		WithMetadata(map[string]any{
			"kind":     r.kind.String(),
			"key":      skey,
			"fetch_id": fetchID,
		})
}

func (r *resource[T]) decode(skey string, payload []byte) []T {
	records, err := cache.DecodeRecords[T](payload)
	if err != nil {
		r.logger.Error("discarding undecodable cache entry", slog.String("key", skey), slog.Any("error", err))
		return []T{}
	}
	return records
}

// cachedKeys lists the resolved keys of this kind accepted by match.
func (r *resource[T]) cachedKeys(match func(cache.Key) bool) []cache.Key {
	var out []cache.Key
	for _, skey := range r.store.Keys() {
		if key, ok := r.parse(skey); ok && match(key) {
			out = append(out, key)
		}
	}
	return out
}

// clear returns every key accepted by match to Absent, pending ones included,
// and reports how many keys were removed.
func (r *resource[T]) clear(match func(cache.Key) bool) int {
	removed := make(map[string]struct{})

	var pending []string
	r.flights.Range(func(skey string, _ *flight) bool {
		if key, ok := r.parse(skey); ok && match(key) {
			pending = append(pending, skey)
		}
		return true
	})
	for _, skey := range pending {
		r.flights.Delete(skey)
		removed[skey] = struct{}{}
	}

	for _, skey := range r.store.Keys() {
		if key, ok := r.parse(skey); ok && match(key) {
			r.store.Delete(skey)
			removed[skey] = struct{}{}
		}
	}

	return len(removed)
}

func (r *resource[T]) parse(skey string) (cache.Key, bool) {
	key, err := r.keys.ParseKey(skey)
	if err != nil || key.Kind != r.kind {
		return cache.Key{}, false
	}
	return key, true
}

func matchAll(cache.Key) bool { return true }

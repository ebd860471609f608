// Package appctx provides a request-scoped unit of work for orchestration
// services.
//
// A RequestContext memoizes reads made while handling one request and queues
// writes so they run together on Commit, with rollback of the already applied
// writes when a later one fails:
//
//	rc := appctx.New(ctx)
//
//	draft, err := appctx.GetOrFetch(rc, "draft:7", loadDraft)
//	// ... mutate a copy of draft ...
//	err = rc.Stage("draft:7", updated, saveDraft)
//
//	err = rc.Commit(ctx)
package appctx

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jsamuelsen11/checkout-fel/internal/domain"
)

var _ domain.WriteStager = (*RequestContext)(nil)

// ErrAlreadyCommitted is returned when AddAction, Stage or Commit is called
// on a RequestContext that has already been committed.
var ErrAlreadyCommitted = errors.New("appctx: request context already committed")

// ErrNilAction is returned when a nil Action is staged.
var ErrNilAction = errors.New("appctx: nil action")

// ErrTypeMismatch is returned by GetOrFetch when a cached value's type does
// not match the requested type T.
var ErrTypeMismatch = errors.New("appctx: cached value type mismatch")

// RequestContext embeds context.Context and adds memoized reads and a queue
// of staged writes. Create one per request. Reads are not safe for
// concurrent use; the write queue is.
type RequestContext struct {
	context.Context

	cache map[string]cacheEntry

	queueMu   sync.Mutex
	items     []domain.Action
	committed bool
}

type cacheEntry struct {
	value any
	err   error
}

// New creates an empty RequestContext wrapping ctx.
func New(ctx context.Context) *RequestContext {
	return &RequestContext{
		Context: ctx,
		cache:   make(map[string]cacheEntry),
	}
}

// GetOrFetch returns the cached value for key, or calls fetchFn and caches
// its result. Errors are cached too, so a failed fetch is not repeated
// within the same request.
func GetOrFetch[T any](rc *RequestContext, key string, fetchFn func(ctx context.Context) (T, error)) (T, error) {
	if entry, ok := rc.cache[key]; ok {
		var zero T
		if entry.err != nil {
			return zero, entry.err
		}
		v, ok := entry.value.(T)
		if !ok {
			return zero, fmt.Errorf("%w: key %q holds %T, requested %T", ErrTypeMismatch, key, entry.value, zero)
		}
		return v, nil
	}

	val, err := fetchFn(rc.Context)
	rc.cache[key] = cacheEntry{value: val, err: err}
	return val, err
}

// Stage replaces the cached value for key with entity and queues action for
// Commit. Later GetOrFetch calls for key observe the staged entity.
func (rc *RequestContext) Stage(key string, entity any, action domain.Action) error {
	if err := rc.AddAction(action); err != nil {
		return err
	}
	rc.cache[key] = cacheEntry{value: entity}
	return nil
}

// AddAction queues action for Commit.
func (rc *RequestContext) AddAction(action domain.Action) error {
	if action == nil {
		return ErrNilAction
	}

	rc.queueMu.Lock()
	defer rc.queueMu.Unlock()

	if rc.committed {
		return ErrAlreadyCommitted
	}
	rc.items = append(rc.items, action)
	return nil
}

// Execute runs action immediately. It is not queued and is never rolled back
// by Commit.
func (rc *RequestContext) Execute(action domain.Action) error {
	if action == nil {
		return ErrNilAction
	}
	return action.Execute(rc.Context)
}

// Pending reports how many actions are queued.
func (rc *RequestContext) Pending() int {
	rc.queueMu.Lock()
	defer rc.queueMu.Unlock()
	return len(rc.items)
}

// Committed reports whether Commit has been called.
func (rc *RequestContext) Committed() bool {
	rc.queueMu.Lock()
	defer rc.queueMu.Unlock()
	return rc.committed
}

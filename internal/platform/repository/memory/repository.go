package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

type Entity interface {
	GetID() string
}

// Repository is a concurrency safe keyed store. Operations fail with the
// context error once ctx is done; List returns entities ordered by ID.
type Repository[T Entity] struct {
	data  map[string]T
	clone func(T) T
	mu    sync.RWMutex
}

type Option[T Entity] func(*Repository[T])

// WithClone copies entities on the way in and out, so callers never share
// state with the store.
func WithClone[T Entity](clone func(T) T) Option[T] {
	return func(r *Repository[T]) {
		r.clone = clone
	}
}

func New[T Entity](opts ...Option[T]) *Repository[T] {
	r := &Repository[T]{
		data:  make(map[string]T),
		clone: func(v T) T { return v },
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Repository[T]) Save(ctx context.Context, entity T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	id := entity.GetID()
	if _, exists := r.data[id]; exists {
		return fmt.Errorf("%w: %s", ErrAlreadyExists, id)
	}

	r.data[id] = r.clone(entity)
	return nil
}

func (r *Repository[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	entity, exists := r.data[id]
	if !exists {
		return zero, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	return r.clone(entity), nil
}

func (r *Repository[T]) Update(ctx context.Context, entity T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	id := entity.GetID()
	if _, exists := r.data[id]; !exists {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	r.data[id] = r.clone(entity)
	return nil
}

func (r *Repository[T]) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.data[id]; !exists {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	delete(r.data, id)
	return nil
}

func (r *Repository[T]) List(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.data))
	for id := range r.data {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	entities := make([]T, 0, len(ids))
	for _, id := range ids {
		entities = append(entities, r.clone(r.data[id]))
	}
	return entities, nil
}

func (r *Repository[T]) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.data), nil
}

package store

import (
	"context"

	"hiring-stream/pkg/optional"
)

type CoreKeyValueStore[K, V any] interface {
	StateStore
	Get(ctx context.Context, key K) (V, bool, error)
	// Put with a None value deletes the row for key.
	Put(ctx context.Context, key K, value optional.Option[V]) error
	PutIfAbsent(ctx context.Context, key K, value V) (optional.Option[V], error)
	Delete(ctx context.Context, key K) error
	ApproximateNumEntries() (uint64, error)
	Range(ctx context.Context, from optional.Option[K], to optional.Option[K],
		iterFunc func(K, V) error) error
}

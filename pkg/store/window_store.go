package store

import (
	"context"
	"time"

	"hiring-stream/pkg/optional"
)

type CoreWindowStore[K, V any] interface {
	StateStore
	Put(ctx context.Context, key K, value optional.Option[V], windowStartTimestamp int64) error
	Get(ctx context.Context, key K, windowStartTimestamp int64) (V, bool, error)
	// Fetch iterates, in timestamp order, the records for key whose window
	// start falls inside [timeFrom, timeTo].
	Fetch(ctx context.Context, key K, timeFrom time.Time, timeTo time.Time,
		iterFunc func(int64, K, V) error) error
	FetchAll(ctx context.Context, timeFrom time.Time, timeTo time.Time,
		iterFunc func(int64, K, V) error) error
	IterAll(iterFunc func(int64, K, V) error) error
}

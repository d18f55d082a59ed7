package store

import (
	"context"

	"hiring-stream/pkg/optional"

	"github.com/zhangyunhao116/skipmap"
)

type InMemorySkipmapKeyValueStore[K, V any] struct {
	store    *skipmap.FuncMap[K, V]
	lessFunc LessFunc[K]
	name     string
}

var _ = CoreKeyValueStore[int, int](&InMemorySkipmapKeyValueStore[int, int]{})

func NewInMemorySkipmapKeyValueStore[K, V any](name string, lessFunc LessFunc[K]) *InMemorySkipmapKeyValueStore[K, V] {
	return &InMemorySkipmapKeyValueStore[K, V]{
		name:     name,
		lessFunc: lessFunc,
		store:    skipmap.NewFunc[K, V](lessFunc),
	}
}

func (st *InMemorySkipmapKeyValueStore[K, V]) Name() string {
	return st.name
}

func (st *InMemorySkipmapKeyValueStore[K, V]) Get(ctx context.Context, key K) (V, bool, error) {
	ret, exists := st.store.Load(key)
	return ret, exists, nil
}

func (st *InMemorySkipmapKeyValueStore[K, V]) Put(ctx context.Context, key K, value optional.Option[V]) error {
	v, ok := value.Take()
	if !ok {
		st.store.Delete(key)
	} else {
		st.store.Store(key, v)
	}
	return nil
}

func (st *InMemorySkipmapKeyValueStore[K, V]) PutIfAbsent(ctx context.Context, key K, value V) (optional.Option[V], error) {
	val, loaded := st.store.LoadOrStore(key, value)
	if loaded {
		return optional.Some(val), nil
	}
	return optional.None[V](), nil
}

func (st *InMemorySkipmapKeyValueStore[K, V]) Delete(ctx context.Context, key K) error {
	st.store.Delete(key)
	return nil
}

func (st *InMemorySkipmapKeyValueStore[K, V]) ApproximateNumEntries() (uint64, error) {
	return uint64(st.store.Len()), nil
}

func (st *InMemorySkipmapKeyValueStore[K, V]) Range(ctx context.Context,
	from optional.Option[K], to optional.Option[K],
	iterFunc func(K, V) error,
) error {
	var iterErr error
	f, okF := from.Take()
	t, okT := to.Take()
	rangeFunc := func(key K, value V) bool {
		if okT && st.lessFunc(t, key) {
			return false
		}
		if err := iterFunc(key, value); err != nil {
			iterErr = err
			return false
		}
		return true
	}
	if okF {
		st.store.RangeFrom(f, rangeFunc)
	} else {
		st.store.Range(rangeFunc)
	}
	return iterErr
}

package store

import (
	"context"
	"time"

	"hiring-stream/pkg/optional"
	"hiring-stream/pkg/utils/syncutils"

	"github.com/rs/zerolog/log"
	"github.com/zhangyunhao116/skipmap"
)

// InMemorySkipMapWindowStore keeps one keyed map per window start timestamp.
// Segments older than the retention period, measured against the largest
// timestamp observed so far, are dropped on every access.
type InMemorySkipMapWindowStore[K, V any] struct {
	mux                syncutils.RWMutex
	store              *skipmap.Int64Map[*skipmap.FuncMap[K, V]]
	compareFunc        CompareFunc[K]
	name               string
	windowSize         int64
	retentionPeriod    int64
	observedStreamTime int64 // protected by mux
}

var _ = CoreWindowStore[int, int](&InMemorySkipMapWindowStore[int, int]{})

func NewInMemorySkipMapWindowStore[K, V any](name string, retentionPeriod int64,
	windowSize int64, compareFunc CompareFunc[K],
) *InMemorySkipMapWindowStore[K, V] {
	return &InMemorySkipMapWindowStore[K, V]{
		name:               name,
		windowSize:         windowSize,
		retentionPeriod:    retentionPeriod,
		observedStreamTime: 0,
		store:              skipmap.NewInt64[*skipmap.FuncMap[K, V]](),
		compareFunc:        compareFunc,
	}
}

func (s *InMemorySkipMapWindowStore[K, V]) Name() string { return s.name }

func (s *InMemorySkipMapWindowStore[K, V]) Put(ctx context.Context, key K, value optional.Option[V], windowStartTimestamp int64) error {
	s.removeExpiredSegments()
	s.mux.Lock()
	if windowStartTimestamp > s.observedStreamTime {
		s.observedStreamTime = windowStartTimestamp
	}
	expired := windowStartTimestamp <= s.observedStreamTime-s.retentionPeriod
	s.mux.Unlock()
	if expired {
		log.Warn().Msgf("Skipping record for expired segment.")
		return nil
	}
	val, exists := value.Take()
	if exists {
		kvmap, _ := s.store.LoadOrStore(windowStartTimestamp, skipmap.NewFunc[K, V](func(a, b K) bool {
			return s.compareFunc(a, b) < 0
		}))
		kvmap.Store(key, val)
	} else {
		kvmap, ok := s.store.Load(windowStartTimestamp)
		if ok {
			kvmap.Delete(key)
		}
	}
	return nil
}

func (s *InMemorySkipMapWindowStore[K, V]) Get(ctx context.Context, key K, windowStartTimestamp int64) (V, bool, error) {
	var v V
	s.removeExpiredSegments()
	s.mux.RLock()
	expired := windowStartTimestamp <= s.observedStreamTime-s.retentionPeriod
	s.mux.RUnlock()
	if expired {
		return v, false, nil
	}
	kvmap, ok := s.store.Load(windowStartTimestamp)
	if !ok {
		return v, false, nil
	}
	v, exists := kvmap.Load(key)
	return v, exists, nil
}

func (s *InMemorySkipMapWindowStore[K, V]) Fetch(ctx context.Context, key K, timeFrom time.Time, timeTo time.Time,
	iterFunc func(int64, K, V) error,
) error {
	s.removeExpiredSegments()
	tsFrom := timeFrom.UnixMilli()
	tsTo := timeTo.UnixMilli()

	s.mux.RLock()
	minTime := s.observedStreamTime - s.retentionPeriod + 1
	s.mux.RUnlock()
	if minTime < tsFrom {
		minTime = tsFrom
	}
	if tsTo < minTime {
		return nil
	}

	var iterErr error
	s.store.RangeFrom(tsFrom, func(ts int64, kvmap *skipmap.FuncMap[K, V]) bool {
		if ts > tsTo {
			return false
		} else if ts < tsFrom {
			return true
		}
		v, exists := kvmap.Load(key)
		if exists {
			if err := iterFunc(ts, key, v); err != nil {
				iterErr = err
				return false
			}
		}
		return true
	})
	return iterErr
}

func (s *InMemorySkipMapWindowStore[K, V]) FetchAll(ctx context.Context, timeFrom time.Time, timeTo time.Time,
	iterFunc func(int64, K, V) error,
) error {
	s.removeExpiredSegments()
	tsFrom := timeFrom.UnixMilli()
	tsTo := timeTo.UnixMilli()
	if tsFrom > tsTo {
		return nil
	}

	s.mux.RLock()
	minTime := s.observedStreamTime - s.retentionPeriod + 1
	s.mux.RUnlock()
	if minTime < tsFrom {
		minTime = tsFrom
	}
	if tsTo < minTime {
		return nil
	}

	var iterErr error
	s.store.RangeFrom(tsFrom, func(ts int64, kvmap *skipmap.FuncMap[K, V]) bool {
		if ts < tsFrom {
			return true
		} else if ts > tsTo {
			return false
		}
		kvmap.Range(func(k K, v V) bool {
			if err := iterFunc(ts, k, v); err != nil {
				iterErr = err
				return false
			}
			return true
		})
		return iterErr == nil
	})
	return iterErr
}

func (s *InMemorySkipMapWindowStore[K, V]) IterAll(iterFunc func(int64, K, V) error) error {
	s.removeExpiredSegments()
	s.mux.RLock()
	minTime := s.observedStreamTime - s.retentionPeriod
	s.mux.RUnlock()

	var iterErr error
	s.store.RangeFrom(minTime, func(ts int64, kvmap *skipmap.FuncMap[K, V]) bool {
		if ts < minTime {
			return true
		}
		kvmap.Range(func(k K, v V) bool {
			if err := iterFunc(ts, k, v); err != nil {
				iterErr = err
				return false
			}
			return true
		})
		return iterErr == nil
	})
	return iterErr
}

func (s *InMemorySkipMapWindowStore[K, V]) removeExpiredSegments() {
	s.mux.RLock()
	minLiveTime := s.observedStreamTime - s.retentionPeriod + 1
	s.mux.RUnlock()
	if minLiveTime < 0 {
		minLiveTime = 0
	}
	s.store.Range(func(ts int64, _ *skipmap.FuncMap[K, V]) bool {
		if ts < minLiveTime {
			s.store.Delete(ts)
			return true
		}
		return false
	})
}

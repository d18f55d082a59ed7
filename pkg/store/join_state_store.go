package store

import (
	"context"

	"hiring-stream/pkg/utils/syncutils"

	"github.com/google/btree"
)

type JoinStateTag uint8

const (
	AWAITING_MATCH JoinStateTag = iota
	MATCHED
)

func (t JoinStateTag) String() string {
	switch t {
	case AWAITING_MATCH:
		return "AWAITING_MATCH"
	case MATCHED:
		return "MATCHED"
	default:
		return "UNKNOWN"
	}
}

// JoinState is the tagged per-key record of an outstanding windowed join.
// DeadlineMs is the absolute event time past which the record is reclaimed;
// reclamation of an AWAITING_MATCH record is the EXPIRED transition.
type JoinState[V any] struct {
	Left       V
	LeftTsMs   int64
	DeadlineMs int64
	Tag        JoinStateTag
}

type deadlineEntry[K any] struct {
	key        K
	deadlineMs int64
}

// JoinStateStore indexes per-key join state by key for lookups and by
// deadline for expiry, so reclaiming elapsed windows is a range scan over
// the btree rather than a full walk.
type JoinStateStore[K comparable, V any] struct {
	mux         syncutils.Mutex
	states      map[K]JoinState[V]
	deadlines   *btree.BTreeG[deadlineEntry[K]]
	compareFunc CompareFunc[K]
	name        string
}

var _ = StateStore(&JoinStateStore[int, int]{})

func NewJoinStateStore[K comparable, V any](name string, compareFunc CompareFunc[K]) *JoinStateStore[K, V] {
	return &JoinStateStore[K, V]{
		name:        name,
		states:      make(map[K]JoinState[V]),
		compareFunc: compareFunc,
		deadlines: btree.NewG(2, func(a, b deadlineEntry[K]) bool {
			if a.deadlineMs != b.deadlineMs {
				return a.deadlineMs < b.deadlineMs
			}
			return compareFunc(a.key, b.key) < 0
		}),
	}
}

func (st *JoinStateStore[K, V]) Name() string {
	return st.name
}

func (st *JoinStateStore[K, V]) Get(ctx context.Context, key K) (JoinState[V], bool, error) {
	st.mux.Lock()
	defer st.mux.Unlock()
	s, ok := st.states[key]
	return s, ok, nil
}

func (st *JoinStateStore[K, V]) Put(ctx context.Context, key K, state JoinState[V]) error {
	st.mux.Lock()
	defer st.mux.Unlock()
	if old, ok := st.states[key]; ok && old.DeadlineMs != state.DeadlineMs {
		st.deadlines.Delete(deadlineEntry[K]{key: key, deadlineMs: old.DeadlineMs})
	}
	st.states[key] = state
	st.deadlines.ReplaceOrInsert(deadlineEntry[K]{key: key, deadlineMs: state.DeadlineMs})
	return nil
}

func (st *JoinStateStore[K, V]) Delete(ctx context.Context, key K) error {
	st.mux.Lock()
	defer st.mux.Unlock()
	if old, ok := st.states[key]; ok {
		st.deadlines.Delete(deadlineEntry[K]{key: key, deadlineMs: old.DeadlineMs})
		delete(st.states, key)
	}
	return nil
}

func (st *JoinStateStore[K, V]) ApproximateNumEntries() (uint64, error) {
	st.mux.Lock()
	defer st.mux.Unlock()
	return uint64(len(st.states)), nil
}

// ExpireUpTo removes every record whose deadline lies strictly before
// boundMs and hands it to iterFunc. Records are gone before iterFunc runs,
// so a failing callback does not resurrect them.
func (st *JoinStateStore[K, V]) ExpireUpTo(ctx context.Context, boundMs int64,
	iterFunc func(K, JoinState[V]) error,
) (int, error) {
	st.mux.Lock()
	var elapsed []deadlineEntry[K]
	st.deadlines.Ascend(func(e deadlineEntry[K]) bool {
		if e.deadlineMs >= boundMs {
			return false
		}
		elapsed = append(elapsed, e)
		return true
	})
	expired := make([]struct {
		key   K
		state JoinState[V]
	}, 0, len(elapsed))
	for _, e := range elapsed {
		st.deadlines.Delete(e)
		s, ok := st.states[e.key]
		if ok {
			expired = append(expired, struct {
				key   K
				state JoinState[V]
			}{key: e.key, state: s})
			delete(st.states, e.key)
		}
	}
	st.mux.Unlock()
	if iterFunc != nil {
		for _, kv := range expired {
			if err := iterFunc(kv.key, kv.state); err != nil {
				return len(expired), err
			}
		}
	}
	return len(expired), nil
}

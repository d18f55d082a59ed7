package processor

import (
	"context"
	"time"

	"hiring-stream/pkg/commtypes"
	"hiring-stream/pkg/debug"
	"hiring-stream/pkg/optional"
	"hiring-stream/pkg/store"
	"hiring-stream/pkg/utils/syncutils"

	"github.com/rs/zerolog/log"
)

// WindowedLeftOuterJoinProcessor correlates a primary (left) stream with an
// optional (right) stream inside a per-record time window.
//
// A left record always produces an immediate emission with the right side
// absent; the emission never waits on the right stream. If a right record
// with the same key and an event time inside [leftTs-before, leftTs+after]
// arrives — in either order — exactly one more emission follows with the
// right side attached. First match wins; later right records for the same
// key are dropped, as are right records outside the window.
//
// Per-key state lives in a JoinStateStore keyed by deadline
// (leftTs + after + grace). Elapsed deadlines are reclaimed lazily as
// stream time advances and by ExpireUpTo, which a periodic sweeper calls so
// memory stays bounded for keys that never see another event.
//
// ProcessLeft, ProcessRight and ExpireUpTo serialize on one mutex: a left
// record must not interleave with a right record between the buffer probe
// and the state write, or a buffered in-window right could be missed by
// both sides.
type WindowedLeftOuterJoinProcessor[K comparable, VL, VR, VO any] struct {
	stateStore  *store.JoinStateStore[K, VL]
	rightBuffer store.CoreWindowStore[K, VR]
	joiner      ValueJoinerWithKeyTs[K, VL, VR, VO]
	name        string

	mux                syncutils.Mutex
	observedStreamTime int64 // protected by mux

	joinBeforeMs int64
	joinAfterMs  int64
	joinGraceMs  int64
}

func NewWindowedLeftOuterJoinProcessor[K comparable, VL, VR, VO any](
	name string,
	stateStore *store.JoinStateStore[K, VL],
	rightBuffer store.CoreWindowStore[K, VR],
	jw *commtypes.JoinWindows,
	joiner ValueJoinerWithKeyTs[K, VL, VR, VO],
) *WindowedLeftOuterJoinProcessor[K, VL, VR, VO] {
	return &WindowedLeftOuterJoinProcessor[K, VL, VR, VO]{
		name:         name,
		stateStore:   stateStore,
		rightBuffer:  rightBuffer,
		joiner:       joiner,
		joinBeforeMs: jw.BeforeMs(),
		joinAfterMs:  jw.AfterMs(),
		joinGraceMs:  jw.GracePeriodMs(),
	}
}

func (p *WindowedLeftOuterJoinProcessor[K, VL, VR, VO]) Name() string {
	return p.name
}

// advanceStreamTime requires mux to be held.
func (p *WindowedLeftOuterJoinProcessor[K, VL, VR, VO]) advanceStreamTime(ctx context.Context, recordTs int64) error {
	if recordTs > p.observedStreamTime {
		p.observedStreamTime = recordTs
	}
	_, err := p.stateStore.ExpireUpTo(ctx, p.observedStreamTime, p.logExpired)
	return err
}

func (p *WindowedLeftOuterJoinProcessor[K, VL, VR, VO]) logExpired(key K, st store.JoinState[VL]) error {
	if st.Tag == store.AWAITING_MATCH {
		log.Debug().Msgf("%s: window elapsed without a match for key %v", p.name, key)
	}
	return nil
}

// ExpireUpTo reclaims all join state with deadlines before boundMs and
// returns how many records were dropped. The pipeline's background sweeper
// calls this so state for quiet keys is still cleaned up.
func (p *WindowedLeftOuterJoinProcessor[K, VL, VR, VO]) ExpireUpTo(ctx context.Context, boundMs int64) (int, error) {
	p.mux.Lock()
	defer p.mux.Unlock()
	return p.stateStore.ExpireUpTo(ctx, boundMs, p.logExpired)
}

// OutstandingWindows reports how many keys still hold join state.
func (p *WindowedLeftOuterJoinProcessor[K, VL, VR, VO]) OutstandingWindows() (uint64, error) {
	return p.stateStore.ApproximateNumEntries()
}

// ProcessLeft handles a primary-stream record.
func (p *WindowedLeftOuterJoinProcessor[K, VL, VR, VO]) ProcessLeft(ctx context.Context,
	msg commtypes.Message[K, VL],
) ([]commtypes.Message[K, VO], error) {
	if msg.Key.IsNone() || msg.Value.IsNone() {
		log.Warn().Msgf("Skipping record due to null key or value. key=%v, val=%v", msg.Key, msg.Value)
		return nil, nil
	}
	p.mux.Lock()
	defer p.mux.Unlock()
	if err := p.advanceStreamTime(ctx, msg.TimestampMs); err != nil {
		return nil, err
	}
	key := msg.Key.Unwrap()
	left := msg.Value.Unwrap()
	leftTs := msg.TimestampMs

	msgs := make([]commtypes.Message[K, VO], 0, 2)
	unscored := p.joiner.Apply(key, left, optional.None[VR](), leftTs, 0)
	msgs = append(msgs, commtypes.Message[K, VO]{
		Key: msg.Key, Value: optional.Some(unscored), TimestampMs: leftTs,
	})

	// An out-of-order right record may already be buffered; the earliest
	// one inside the window wins.
	matchTs := int64(-1)
	var match VR
	timeFrom := leftTs - p.joinBeforeMs
	if timeFrom < 0 {
		timeFrom = 0
	}
	timeTo := leftTs + p.joinAfterMs
	err := p.rightBuffer.Fetch(ctx, key, time.UnixMilli(timeFrom), time.UnixMilli(timeTo),
		func(rightTs int64, kt K, vt VR) error {
			if matchTs < 0 {
				matchTs = rightTs
				match = vt
			}
			return nil
		})
	if err != nil {
		return nil, err
	}

	state := store.JoinState[VL]{
		Left:       left,
		LeftTsMs:   leftTs,
		DeadlineMs: leftTs + p.joinAfterMs + p.joinGraceMs,
		Tag:        store.AWAITING_MATCH,
	}
	debug.Assert(state.DeadlineMs >= leftTs, "join state deadline precedes the record")
	if matchTs >= 0 {
		joined := p.joiner.Apply(key, left, optional.Some(match), leftTs, matchTs)
		newTs := leftTs
		if matchTs > newTs {
			newTs = matchTs
		}
		msgs = append(msgs, commtypes.Message[K, VO]{
			Key: msg.Key, Value: optional.Some(joined), TimestampMs: newTs,
		})
		state.Tag = store.MATCHED
	}
	if err := p.stateStore.Put(ctx, key, state); err != nil {
		return nil, err
	}
	return msgs, nil
}

// ProcessRight handles an optional-stream record.
func (p *WindowedLeftOuterJoinProcessor[K, VL, VR, VO]) ProcessRight(ctx context.Context,
	msg commtypes.Message[K, VR],
) ([]commtypes.Message[K, VO], error) {
	if msg.Key.IsNone() || msg.Value.IsNone() {
		log.Warn().Msgf("Skipping record due to null key or value. key=%v, val=%v", msg.Key, msg.Value)
		return nil, nil
	}
	p.mux.Lock()
	defer p.mux.Unlock()
	if err := p.advanceStreamTime(ctx, msg.TimestampMs); err != nil {
		return nil, err
	}
	key := msg.Key.Unwrap()
	right := msg.Value.Unwrap()
	rightTs := msg.TimestampMs

	// Buffer first so a left record that has not arrived yet can still
	// match this right record later.
	if err := p.rightBuffer.Put(ctx, key, msg.Value, rightTs); err != nil {
		return nil, err
	}

	st, ok, err := p.stateStore.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		// No live window for this key: either the left record has not
		// arrived, or its window expired. Not an error either way.
		return nil, nil
	}
	if st.Tag == store.MATCHED {
		log.Debug().Msgf("%s: dropping duplicate match for key %v", p.name, key)
		return nil, nil
	}
	if rightTs < st.LeftTsMs-p.joinBeforeMs || rightTs > st.LeftTsMs+p.joinAfterMs {
		log.Debug().Msgf("%s: dropping out-of-window record for key %v, ts %d", p.name, key, rightTs)
		return nil, nil
	}

	st.Tag = store.MATCHED
	if err := p.stateStore.Put(ctx, key, st); err != nil {
		return nil, err
	}
	joined := p.joiner.Apply(key, st.Left, optional.Some(right), st.LeftTsMs, rightTs)
	newTs := st.LeftTsMs
	if rightTs > newTs {
		newTs = rightTs
	}
	return []commtypes.Message[K, VO]{
		{Key: msg.Key, Value: optional.Some(joined), TimestampMs: newTs},
	}, nil
}

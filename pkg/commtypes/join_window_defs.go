package commtypes

import (
	"time"

	"hiring-stream/pkg/common_errors"
)

// JoinWindows is the window specification for a stream-stream join. Records
// l from the left stream and r from the right stream join when
//
//	l.ts - before <= r.ts && r.ts <= l.ts + after
//
// The windows are sliding: each input record anchors its own interval at the
// record's event time. Out-of-order records are accepted for an additional
// grace period past the window end before their state is reclaimed.
type JoinWindows struct {
	beforeMs int64
	afterMs  int64
	graceMs  int64
}

func newJoinWindows(beforeMs int64, afterMs int64, graceMs int64) (*JoinWindows, error) {
	if beforeMs+afterMs < 0 {
		return nil, common_errors.ErrWindowSizeLeqZero
	}
	if graceMs < 0 {
		return nil, common_errors.ErrGraceLessThanZero
	}
	return &JoinWindows{
		beforeMs: beforeMs,
		afterMs:  afterMs,
		graceMs:  graceMs,
	}, nil
}

func NewJoinWindowsWithGrace(timeDifference time.Duration, afterWindowEnd time.Duration) (*JoinWindows, error) {
	timeDifferenceMs := timeDifference.Milliseconds()
	return newJoinWindows(timeDifferenceMs, timeDifferenceMs, afterWindowEnd.Milliseconds())
}

func NewJoinWindowsNoGrace(timeDifference time.Duration) (*JoinWindows, error) {
	timeDifferenceMs := timeDifference.Milliseconds()
	return newJoinWindows(timeDifferenceMs, timeDifferenceMs, 0)
}

// Before changes the start window boundary to timeDifference and keeps the
// end boundary as is. Grace is not modified.
func (w *JoinWindows) Before(timeDifference time.Duration) (*JoinWindows, error) {
	return newJoinWindows(timeDifference.Milliseconds(), w.afterMs, w.graceMs)
}

// After changes the end window boundary to timeDifference and keeps the
// start boundary as is. Grace is not modified.
func (w *JoinWindows) After(timeDifference time.Duration) (*JoinWindows, error) {
	return newJoinWindows(w.beforeMs, timeDifference.Milliseconds(), w.graceMs)
}

func (w *JoinWindows) BeforeMs() int64 {
	return w.beforeMs
}

func (w *JoinWindows) AfterMs() int64 {
	return w.afterMs
}

func (w *JoinWindows) MaxSize() int64 {
	return w.beforeMs + w.afterMs
}

func (w *JoinWindows) GracePeriodMs() int64 {
	return w.graceMs
}

package processor

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"hiring-stream/pkg/commtypes"
	"hiring-stream/pkg/optional"
	"hiring-stream/pkg/store"
)

func getOuterJoinWindows(t *testing.T) *commtypes.JoinWindows {
	t.Helper()
	jw, err := commtypes.NewJoinWindowsWithGrace(100*time.Millisecond, 50*time.Millisecond)
	if err != nil {
		t.Fatalf("fail to create join windows: %v", err)
	}
	jw, err = jw.Before(0)
	if err != nil {
		t.Fatalf("fail to set window start: %v", err)
	}
	return jw
}

func getOuterJoinProcessor(t *testing.T) *WindowedLeftOuterJoinProcessor[int, string, int, string] {
	jw := getOuterJoinWindows(t)
	stateStore := store.NewJoinStateStore[int, string]("state1", store.IntegerCompare[int])
	buf := store.NewInMemorySkipMapWindowStore[int, int]("right1",
		jw.MaxSize()+jw.GracePeriodMs(), jw.MaxSize(), store.IntegerCompare[int])
	joiner := ValueJoinerWithKeyTsFunc[int, string, int, string](
		func(readOnlyKey int, left string, right optional.Option[int], leftTs int64, otherTs int64) string {
			if rv, ok := right.Take(); ok {
				return fmt.Sprintf("%s+%d", left, rv)
			}
			return left + "+null"
		})
	return NewWindowedLeftOuterJoinProcessor[int, string, int, string]("outerJoin", stateStore, buf, jw, joiner)
}

func leftMsg(key int, val string, ts int64) commtypes.Message[int, string] {
	return commtypes.Message[int, string]{Key: optional.Some(key), Value: optional.Some(val), TimestampMs: ts}
}

func rightMsg(key int, val int, ts int64) commtypes.Message[int, int] {
	return commtypes.Message[int, int]{Key: optional.Some(key), Value: optional.Some(val), TimestampMs: ts}
}

func TestLeftEmitsImmediately(t *testing.T) {
	ctx := context.Background()
	proc := getOuterJoinProcessor(t)
	msgs, err := proc.ProcessLeft(ctx, leftMsg(1, "a", 10))
	if err != nil {
		t.Fatalf("process left err: %v", err)
	}
	if len(msgs) != 1 {
		t.Fatalf("expected one immediate emission, got %d", len(msgs))
	}
	if msgs[0].Value.Unwrap() != "a+null" || msgs[0].TimestampMs != 10 {
		t.Errorf("unexpected emission: %v", msgs[0])
	}
}

func TestRightWithinWindowEmitsOnce(t *testing.T) {
	ctx := context.Background()
	proc := getOuterJoinProcessor(t)
	if _, err := proc.ProcessLeft(ctx, leftMsg(1, "a", 10)); err != nil {
		t.Fatalf("process left err: %v", err)
	}
	msgs, err := proc.ProcessRight(ctx, rightMsg(1, 90, 60))
	if err != nil {
		t.Fatalf("process right err: %v", err)
	}
	if len(msgs) != 1 || msgs[0].Value.Unwrap() != "a+90" {
		t.Fatalf("expected one matched emission a+90, got %v", msgs)
	}
	if msgs[0].TimestampMs != 60 {
		t.Errorf("matched emission ts %d, expected 60", msgs[0].TimestampMs)
	}

	// first match wins; later rights for the key are dropped
	msgs, err = proc.ProcessRight(ctx, rightMsg(1, 95, 70))
	if err != nil {
		t.Fatalf("process right err: %v", err)
	}
	if msgs != nil {
		t.Errorf("duplicate right should be dropped, got %v", msgs)
	}
}

func TestRightBeforeLeftStillMatches(t *testing.T) {
	ctx := context.Background()
	proc := getOuterJoinProcessor(t)
	msgs, err := proc.ProcessRight(ctx, rightMsg(2, 77, 30))
	if err != nil {
		t.Fatalf("process right err: %v", err)
	}
	if msgs != nil {
		t.Fatalf("right without a left should only buffer, got %v", msgs)
	}
	msgs, err = proc.ProcessLeft(ctx, leftMsg(2, "b", 10))
	if err != nil {
		t.Fatalf("process left err: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("expected unscored plus matched emission, got %v", msgs)
	}
	if msgs[0].Value.Unwrap() != "b+null" || msgs[0].TimestampMs != 10 {
		t.Errorf("unexpected first emission: %v", msgs[0])
	}
	if msgs[1].Value.Unwrap() != "b+77" || msgs[1].TimestampMs != 30 {
		t.Errorf("unexpected second emission: %v", msgs[1])
	}
}

func TestRightOutsideWindowDropped(t *testing.T) {
	ctx := context.Background()
	proc := getOuterJoinProcessor(t)
	if _, err := proc.ProcessLeft(ctx, leftMsg(1, "a", 0)); err != nil {
		t.Fatalf("process left err: %v", err)
	}
	// window end is leftTs+100; ts 150 is still within grace so the state
	// is retained, but the record must not match
	msgs, err := proc.ProcessRight(ctx, rightMsg(1, 90, 150))
	if err != nil {
		t.Fatalf("process right err: %v", err)
	}
	if msgs != nil {
		t.Errorf("out-of-window right should be dropped, got %v", msgs)
	}
}

func TestRightAfterExpiryDropped(t *testing.T) {
	ctx := context.Background()
	proc := getOuterJoinProcessor(t)
	if _, err := proc.ProcessLeft(ctx, leftMsg(1, "a", 0)); err != nil {
		t.Fatalf("process left err: %v", err)
	}
	n, err := proc.ExpireUpTo(ctx, 151)
	if err != nil {
		t.Fatalf("expire err: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected one expired window, got %d", n)
	}
	msgs, err := proc.ProcessRight(ctx, rightMsg(1, 90, 50))
	if err != nil {
		t.Fatalf("process right err: %v", err)
	}
	if msgs != nil {
		t.Errorf("right after expiry should be dropped, got %v", msgs)
	}
}

func TestConcurrentLeftsAndRightsScoreExactlyOnce(t *testing.T) {
	ctx := context.Background()
	proc := getOuterJoinProcessor(t)
	const numKeys = 300

	var mu sync.Mutex
	got := make(map[int][]string)
	collect := func(msgs []commtypes.Message[int, string]) {
		mu.Lock()
		defer mu.Unlock()
		for _, m := range msgs {
			k := m.Key.Unwrap()
			got[k] = append(got[k], m.Value.Unwrap())
		}
	}

	// the left and right streams of one partition may be consumed by
	// different goroutines; whichever order the processor observes, every
	// key must end up with one unscored and one scored emission
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for k := 0; k < numKeys; k++ {
			msgs, err := proc.ProcessLeft(ctx, leftMsg(k, "a", 100))
			if err != nil {
				t.Errorf("process left err: %v", err)
				return
			}
			collect(msgs)
		}
	}()
	go func() {
		defer wg.Done()
		for k := 0; k < numKeys; k++ {
			msgs, err := proc.ProcessRight(ctx, rightMsg(k, k, 150))
			if err != nil {
				t.Errorf("process right err: %v", err)
				return
			}
			collect(msgs)
		}
	}()
	wg.Wait()

	for k := 0; k < numKeys; k++ {
		outs := got[k]
		if len(outs) != 2 {
			t.Fatalf("key %d emitted %v, expected one unscored and one scored", k, outs)
		}
		unscored, scored := 0, 0
		for _, v := range outs {
			switch v {
			case "a+null":
				unscored++
			case fmt.Sprintf("a+%d", k):
				scored++
			default:
				t.Fatalf("key %d emitted unexpected value %q", k, v)
			}
		}
		if unscored != 1 || scored != 1 {
			t.Fatalf("key %d emitted %v, expected one unscored and one scored", k, outs)
		}
	}
}

func TestStreamTimeExpiresQuietKeys(t *testing.T) {
	ctx := context.Background()
	proc := getOuterJoinProcessor(t)
	if _, err := proc.ProcessLeft(ctx, leftMsg(1, "a", 0)); err != nil {
		t.Fatalf("process left err: %v", err)
	}
	// key 2 advances stream time past key 1's deadline (0+100+50)
	if _, err := proc.ProcessLeft(ctx, leftMsg(2, "b", 200)); err != nil {
		t.Fatalf("process left err: %v", err)
	}
	msgs, err := proc.ProcessRight(ctx, rightMsg(1, 90, 50))
	if err != nil {
		t.Fatalf("process right err: %v", err)
	}
	if msgs != nil {
		t.Errorf("right for an expired key should be dropped, got %v", msgs)
	}
}

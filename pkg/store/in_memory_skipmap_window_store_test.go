package store

import (
	"context"
	"testing"
	"time"

	"hiring-stream/pkg/optional"
)

const (
	testRetentionPeriod = int64(120_000)
	testWindowSize      = int64(60_000)
)

func getSkipMapWindowStore() *InMemorySkipMapWindowStore[uint64, string] {
	return NewInMemorySkipMapWindowStore[uint64, string]("test1",
		testRetentionPeriod, testWindowSize, IntegerCompare[uint64])
}

func TestWindowStorePutGet(t *testing.T) {
	ctx := context.Background()
	st := getSkipMapWindowStore()
	if err := st.Put(ctx, 1, optional.Some("a"), 1000); err != nil {
		t.Fatalf("put err: %v", err)
	}
	if err := st.Put(ctx, 2, optional.Some("b"), 1500); err != nil {
		t.Fatalf("put err: %v", err)
	}
	v, ok, err := st.Get(ctx, 1, 1000)
	if err != nil {
		t.Fatalf("get err: %v", err)
	}
	if !ok || v != "a" {
		t.Fatalf("got (%v, %v), expected (a, true)", v, ok)
	}
	_, ok, _ = st.Get(ctx, 1, 1500)
	if ok {
		t.Fatal("key 1 should not exist at ts 1500")
	}
}

func TestWindowStoreFetchBounds(t *testing.T) {
	ctx := context.Background()
	st := getSkipMapWindowStore()
	for _, ts := range []int64{1000, 2000, 3000, 4000} {
		if err := st.Put(ctx, 1, optional.Some("v"), ts); err != nil {
			t.Fatalf("put err: %v", err)
		}
	}

	// both bounds inclusive
	var got []int64
	err := st.Fetch(ctx, 1, time.UnixMilli(2000), time.UnixMilli(3000),
		func(ts int64, k uint64, v string) error {
			got = append(got, ts)
			return nil
		})
	if err != nil {
		t.Fatalf("fetch err: %v", err)
	}
	if len(got) != 2 || got[0] != 2000 || got[1] != 3000 {
		t.Fatalf("fetched %v, expected [2000 3000]", got)
	}

	got = got[:0]
	err = st.Fetch(ctx, 2, time.UnixMilli(0), time.UnixMilli(5000),
		func(ts int64, k uint64, v string) error {
			got = append(got, ts)
			return nil
		})
	if err != nil {
		t.Fatalf("fetch err: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("fetched %v for absent key, expected none", got)
	}
}

func TestWindowStoreExpiration(t *testing.T) {
	ctx := context.Background()
	st := getSkipMapWindowStore()
	if err := st.Put(ctx, 1, optional.Some("old"), 1000); err != nil {
		t.Fatalf("put err: %v", err)
	}
	// advancing stream time beyond retention drops the old segment
	if err := st.Put(ctx, 2, optional.Some("new"), 1000+testRetentionPeriod); err != nil {
		t.Fatalf("put err: %v", err)
	}
	_, ok, _ := st.Get(ctx, 1, 1000)
	if ok {
		t.Fatal("expected segment at ts 1000 to be expired")
	}
	v, ok, _ := st.Get(ctx, 2, 1000+testRetentionPeriod)
	if !ok || v != "new" {
		t.Fatalf("got (%v, %v), expected (new, true)", v, ok)
	}

	// writes into expired segments are dropped
	if err := st.Put(ctx, 3, optional.Some("late"), 500); err != nil {
		t.Fatalf("put err: %v", err)
	}
	_, ok, _ = st.Get(ctx, 3, 500)
	if ok {
		t.Fatal("write into expired segment should be dropped")
	}
}

func TestWindowStorePutNoneDeletes(t *testing.T) {
	ctx := context.Background()
	st := getSkipMapWindowStore()
	if err := st.Put(ctx, 1, optional.Some("a"), 1000); err != nil {
		t.Fatalf("put err: %v", err)
	}
	if err := st.Put(ctx, 1, optional.None[string](), 1000); err != nil {
		t.Fatalf("put err: %v", err)
	}
	_, ok, _ := st.Get(ctx, 1, 1000)
	if ok {
		t.Fatal("expected entry to be deleted")
	}
}

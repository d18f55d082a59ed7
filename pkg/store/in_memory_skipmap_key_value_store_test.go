package store

import (
	"context"
	"testing"

	"hiring-stream/pkg/optional"
)

func getSkipmapKVStore() *InMemorySkipmapKeyValueStore[uint64, string] {
	return NewInMemorySkipmapKeyValueStore[uint64, string]("test1", IntegerLessFunc[uint64])
}

func TestSkipmapKVPutGet(t *testing.T) {
	ctx := context.Background()
	st := getSkipmapKVStore()

	_, ok, err := st.Get(ctx, 1)
	if err != nil {
		t.Fatalf("get err: %v", err)
	}
	if ok {
		t.Fatal("expected missing key")
	}

	if err := st.Put(ctx, 1, optional.Some("cashier")); err != nil {
		t.Fatalf("put err: %v", err)
	}
	v, ok, err := st.Get(ctx, 1)
	if err != nil {
		t.Fatalf("get err: %v", err)
	}
	if !ok || v != "cashier" {
		t.Fatalf("got (%v, %v), expected (cashier, true)", v, ok)
	}

	// upsert overwrites
	if err := st.Put(ctx, 1, optional.Some("head cashier")); err != nil {
		t.Fatalf("put err: %v", err)
	}
	v, ok, _ = st.Get(ctx, 1)
	if !ok || v != "head cashier" {
		t.Fatalf("got (%v, %v), expected (head cashier, true)", v, ok)
	}
}

func TestSkipmapKVPutNoneDeletes(t *testing.T) {
	ctx := context.Background()
	st := getSkipmapKVStore()
	if err := st.Put(ctx, 2, optional.Some("barista")); err != nil {
		t.Fatalf("put err: %v", err)
	}
	if err := st.Put(ctx, 2, optional.None[string]()); err != nil {
		t.Fatalf("put err: %v", err)
	}
	_, ok, _ := st.Get(ctx, 2)
	if ok {
		t.Fatal("expected key to be deleted")
	}
	n, _ := st.ApproximateNumEntries()
	if n != 0 {
		t.Fatalf("expected empty store, got %d entries", n)
	}
}

func TestSkipmapKVPutIfAbsent(t *testing.T) {
	ctx := context.Background()
	st := getSkipmapKVStore()
	old, err := st.PutIfAbsent(ctx, 3, "clerk")
	if err != nil {
		t.Fatalf("putIfAbsent err: %v", err)
	}
	if old.IsSome() {
		t.Fatalf("expected no prior value, got %v", old)
	}
	old, err = st.PutIfAbsent(ctx, 3, "manager")
	if err != nil {
		t.Fatalf("putIfAbsent err: %v", err)
	}
	if v, ok := old.Take(); !ok || v != "clerk" {
		t.Fatalf("expected prior value clerk, got (%v, %v)", v, ok)
	}
	v, _, _ := st.Get(ctx, 3)
	if v != "clerk" {
		t.Fatalf("putIfAbsent overwrote existing value with %v", v)
	}
}

func TestSkipmapKVRange(t *testing.T) {
	ctx := context.Background()
	st := getSkipmapKVStore()
	for _, k := range []uint64{5, 1, 3, 9, 7} {
		if err := st.Put(ctx, k, optional.Some("v")); err != nil {
			t.Fatalf("put err: %v", err)
		}
	}

	var keys []uint64
	err := st.Range(ctx, optional.Some(uint64(3)), optional.Some(uint64(7)), func(k uint64, v string) error {
		keys = append(keys, k)
		return nil
	})
	if err != nil {
		t.Fatalf("range err: %v", err)
	}
	expected := []uint64{3, 5, 7}
	if len(keys) != len(expected) {
		t.Fatalf("got keys %v, expected %v", keys, expected)
	}
	for i, k := range expected {
		if keys[i] != k {
			t.Fatalf("got keys %v, expected %v", keys, expected)
		}
	}

	keys = keys[:0]
	err = st.Range(ctx, optional.None[uint64](), optional.None[uint64](), func(k uint64, v string) error {
		keys = append(keys, k)
		return nil
	})
	if err != nil {
		t.Fatalf("range err: %v", err)
	}
	if len(keys) != 5 {
		t.Fatalf("unbounded range returned %d keys, expected 5", len(keys))
	}
}

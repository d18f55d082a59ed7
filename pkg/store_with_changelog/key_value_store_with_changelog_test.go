package store_with_changelog

import (
	"context"
	"testing"

	"hiring-stream/pkg/common_errors"
	"hiring-stream/pkg/commtypes"
	"hiring-stream/pkg/eventlog"
	"hiring-stream/pkg/hashfuncs"
	"hiring-stream/pkg/optional"
	"hiring-stream/pkg/store"
)

func getChangelogStore(t *testing.T, changelog eventlog.EventLog, changelogIsSrc bool) *KeyValueStoreWithChangelog[uint64, string] {
	t.Helper()
	msgSerde, err := commtypes.GetMsgSerde[uint64, string](commtypes.JSON, commtypes.Uint64Serde{}, commtypes.StringSerde{})
	if err != nil {
		t.Fatalf("fail to get serde: %v", err)
	}
	return NewKeyValueStoreWithChangelog[uint64, string](
		store.NewInMemorySkipmapKeyValueStore[uint64, string]("tab1", store.IntegerLessFunc[uint64]),
		changelog, msgSerde, hashfuncs.IntegerHasher[uint64]{}, changelogIsSrc)
}

func TestChangelogRestore(t *testing.T) {
	ctx := context.Background()
	changelog := eventlog.NewInMemoryEventLog("tab1-changelog", 2)
	st := getChangelogStore(t, changelog, false)

	if err := st.Put(ctx, 1, optional.Some("a")); err != nil {
		t.Fatalf("put err: %v", err)
	}
	if err := st.Put(ctx, 2, optional.Some("b")); err != nil {
		t.Fatalf("put err: %v", err)
	}
	if err := st.Put(ctx, 1, optional.Some("a2")); err != nil {
		t.Fatalf("put err: %v", err)
	}

	// a fresh store over the same changelog rebuilds the same table
	restored := getChangelogStore(t, changelog, false)
	if err := restored.RestoreFromChangelog(ctx); err != nil {
		t.Fatalf("restore err: %v", err)
	}
	v, ok, _ := restored.Get(ctx, 1)
	if !ok || v != "a2" {
		t.Errorf("got (%v, %v), expected (a2, true)", v, ok)
	}
	v, ok, _ = restored.Get(ctx, 2)
	if !ok || v != "b" {
		t.Errorf("got (%v, %v), expected (b, true)", v, ok)
	}
	n, _ := restored.ApproximateNumEntries()
	if n != 2 {
		t.Errorf("restored %d entries, expected 2", n)
	}
}

func TestChangelogRestoreAppliesDeletes(t *testing.T) {
	ctx := context.Background()
	changelog := eventlog.NewInMemoryEventLog("tab1-changelog", 1)
	st := getChangelogStore(t, changelog, false)
	if err := st.Put(ctx, 1, optional.Some("a")); err != nil {
		t.Fatalf("put err: %v", err)
	}
	if err := st.Delete(ctx, 1); err != nil {
		t.Fatalf("delete err: %v", err)
	}

	restored := getChangelogStore(t, changelog, false)
	if err := restored.RestoreFromChangelog(ctx); err != nil {
		t.Fatalf("restore err: %v", err)
	}
	_, ok, _ := restored.Get(ctx, 1)
	if ok {
		t.Error("deleted key should not reappear after restore")
	}
}

func TestChangelogRestoreRejectsCorruptEntry(t *testing.T) {
	ctx := context.Background()
	changelog := eventlog.NewInMemoryEventLog("tab1-changelog", 1)
	st := getChangelogStore(t, changelog, false)
	if err := st.Put(ctx, 1, optional.Some("a")); err != nil {
		t.Fatalf("put err: %v", err)
	}
	if _, err := changelog.Push(ctx, []byte("{not json"), 0); err != nil {
		t.Fatalf("push err: %v", err)
	}

	restored := getChangelogStore(t, changelog, false)
	if err := restored.RestoreFromChangelog(ctx); err == nil {
		t.Fatal("expected restore to fail on a corrupt changelog entry")
	}
}

func TestChangelogIsSrcDoesNotProduce(t *testing.T) {
	ctx := context.Background()
	changelog := eventlog.NewInMemoryEventLog("jobs", 1)
	st := getChangelogStore(t, changelog, true)
	if err := st.Put(ctx, 1, optional.Some("a")); err != nil {
		t.Fatalf("put err: %v", err)
	}
	// the source topic already holds the upsert; the store must not
	// append a second copy
	if _, err := changelog.ReadNext(ctx, 0); !common_errors.IsStreamEmptyError(err) {
		t.Errorf("expected empty changelog, got %v", err)
	}
	v, ok, _ := st.Get(ctx, 1)
	if !ok || v != "a" {
		t.Errorf("got (%v, %v), expected (a, true)", v, ok)
	}
}

func TestChangelogPutIfAbsent(t *testing.T) {
	ctx := context.Background()
	changelog := eventlog.NewInMemoryEventLog("tab1-changelog", 1)
	st := getChangelogStore(t, changelog, false)
	old, err := st.PutIfAbsent(ctx, 1, "a")
	if err != nil {
		t.Fatalf("putIfAbsent err: %v", err)
	}
	if old.IsSome() {
		t.Errorf("expected no prior value, got %v", old)
	}
	old, err = st.PutIfAbsent(ctx, 1, "b")
	if err != nil {
		t.Fatalf("putIfAbsent err: %v", err)
	}
	if v, ok := old.Take(); !ok || v != "a" {
		t.Errorf("expected prior value a, got (%v, %v)", v, ok)
	}
}

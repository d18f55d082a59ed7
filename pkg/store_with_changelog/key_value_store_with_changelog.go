package store_with_changelog

import (
	"context"
	"os"

	"hiring-stream/pkg/common_errors"
	"hiring-stream/pkg/commtypes"
	"hiring-stream/pkg/debug"
	"hiring-stream/pkg/eventlog"
	"hiring-stream/pkg/hashfuncs"
	"hiring-stream/pkg/optional"
	"hiring-stream/pkg/store"
)

// KeyValueStoreWithChangelog derives a keyed table from an append-only
// changelog. Restart recovery is a replay of the changelog; nothing beyond
// the log needs to be durable.
//
// When the changelog is also the table's source topic (changelogIsSrc), the
// upsert stream already persists every change and Put only updates the
// in-memory store. Otherwise Put appends to the changelog first.
type KeyValueStoreWithChangelog[K, V any] struct {
	kvstore        store.CoreKeyValueStore[K, V]
	changelog      eventlog.EventLog
	msgSerde       commtypes.MessageSerde[K, V]
	hasher         hashfuncs.HashSum64[K]
	changelogIsSrc bool
}

var _ = store.CoreKeyValueStore[int, int](&KeyValueStoreWithChangelog[int, int]{})

func NewKeyValueStoreWithChangelog[K, V any](
	kvstore store.CoreKeyValueStore[K, V],
	changelog eventlog.EventLog,
	msgSerde commtypes.MessageSerde[K, V],
	hasher hashfuncs.HashSum64[K],
	changelogIsSrc bool,
) *KeyValueStoreWithChangelog[K, V] {
	return &KeyValueStoreWithChangelog[K, V]{
		kvstore:        kvstore,
		changelog:      changelog,
		msgSerde:       msgSerde,
		hasher:         hasher,
		changelogIsSrc: changelogIsSrc,
	}
}

func (st *KeyValueStoreWithChangelog[K, V]) Name() string {
	return st.kvstore.Name()
}

func (st *KeyValueStoreWithChangelog[K, V]) ChangelogTopicName() string {
	return st.changelog.TopicName()
}

func (st *KeyValueStoreWithChangelog[K, V]) Get(ctx context.Context, key K) (V, bool, error) {
	return st.kvstore.Get(ctx, key)
}

func (st *KeyValueStoreWithChangelog[K, V]) Put(ctx context.Context, key K, value optional.Option[V]) error {
	if !st.changelogIsSrc {
		msg := commtypes.Message[K, V]{Key: optional.Some(key), Value: value}
		payload, err := st.msgSerde.Encode(msg)
		if err != nil {
			return err
		}
		parNum := hashfuncs.PartitionFor(st.hasher.HashSum64(key), st.changelog.NumPartition())
		if _, err := st.changelog.Push(ctx, payload, parNum); err != nil {
			return err
		}
	}
	return st.kvstore.Put(ctx, key, value)
}

// PutWithoutPushToChangelog only updates the in-memory store; used while
// replaying the changelog.
func (st *KeyValueStoreWithChangelog[K, V]) PutWithoutPushToChangelog(ctx context.Context, key K, value optional.Option[V]) error {
	return st.kvstore.Put(ctx, key, value)
}

func (st *KeyValueStoreWithChangelog[K, V]) PutIfAbsent(ctx context.Context, key K, value V) (optional.Option[V], error) {
	old, found, err := st.kvstore.Get(ctx, key)
	if err != nil {
		return optional.None[V](), err
	}
	if found {
		return optional.Some(old), nil
	}
	err = st.Put(ctx, key, optional.Some(value))
	return optional.None[V](), err
}

func (st *KeyValueStoreWithChangelog[K, V]) Delete(ctx context.Context, key K) error {
	return st.Put(ctx, key, optional.None[V]())
}

func (st *KeyValueStoreWithChangelog[K, V]) ApproximateNumEntries() (uint64, error) {
	return st.kvstore.ApproximateNumEntries()
}

func (st *KeyValueStoreWithChangelog[K, V]) Range(ctx context.Context,
	from optional.Option[K], to optional.Option[K],
	iterFunc func(K, V) error,
) error {
	return st.kvstore.Range(ctx, from, to, iterFunc)
}

// RestoreFromChangelog rebuilds the in-memory table by replaying every
// partition of the changelog from the beginning.
func (st *KeyValueStoreWithChangelog[K, V]) RestoreFromChangelog(ctx context.Context) error {
	for parNum := uint8(0); parNum < st.changelog.NumPartition(); parNum++ {
		st.changelog.SetCursor(0, parNum)
		for {
			rawMsg, err := st.changelog.ReadNext(ctx, parNum)
			if common_errors.IsStreamEmptyError(err) {
				break
			}
			if err != nil {
				return err
			}
			msg, err := st.msgSerde.Decode(rawMsg.Payload)
			if err != nil {
				debug.Fprintf(os.Stderr, "%s restore: fail to decode changelog entry %d: %v\n",
					st.Name(), rawMsg.MsgSeqNum, err)
				debug.PrintByteSlice(rawMsg.Payload)
				return err
			}
			key, ok := msg.Key.Take()
			if !ok {
				continue
			}
			if err := st.kvstore.Put(ctx, key, msg.Value); err != nil {
				return err
			}
		}
	}
	return nil
}

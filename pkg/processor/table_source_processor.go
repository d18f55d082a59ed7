package processor

import (
	"context"

	"hiring-stream/pkg/commtypes"
	"hiring-stream/pkg/optional"
	"hiring-stream/pkg/store"

	"github.com/rs/zerolog/log"
)

// TableSourceProcessor materializes a changelog stream into a keyed table.
// Each upsert overwrites the row for its key and emits the old/new pair.
type TableSourceProcessor[K, V any] struct {
	store store.CoreKeyValueStore[K, commtypes.ValueTimestamp[V]]
	name  string
}

var _ = Processor[int, int, int, commtypes.Change[int]](&TableSourceProcessor[int, int]{})

func NewTableSourceProcessor[K, V any](tab store.CoreKeyValueStore[K, commtypes.ValueTimestamp[V]]) *TableSourceProcessor[K, V] {
	return &TableSourceProcessor[K, V]{
		name:  "toTable",
		store: tab,
	}
}

func (p *TableSourceProcessor[K, V]) Name() string {
	return p.name
}

func (p *TableSourceProcessor[K, V]) ProcessAndReturn(ctx context.Context,
	msg commtypes.Message[K, V],
) ([]commtypes.Message[K, commtypes.Change[V]], error) {
	key, ok := msg.Key.Take()
	if !ok {
		log.Warn().Msgf("Skipping record due to null key")
		return nil, nil
	}
	oldVal := optional.None[V]()
	v, found, err := p.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if found {
		oldVal = optional.Some(v.Value)
		if msg.TimestampMs < v.Timestamp {
			log.Warn().Msgf("Detected out-of-order table update for %s, old Ts=[%v] new Ts=[%v].",
				p.store.Name(), v.Timestamp, msg.TimestampMs)
		}
	}
	err = p.store.Put(ctx, key, commtypes.CreateValueTimestamp(msg.Value, msg.TimestampMs))
	if err != nil {
		return nil, err
	}
	change := commtypes.Change[V]{NewVal: msg.Value, OldVal: oldVal}
	return []commtypes.Message[K, commtypes.Change[V]]{
		{Key: msg.Key, Value: optional.Some(change), TimestampMs: msg.TimestampMs},
	}, nil
}

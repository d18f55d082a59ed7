package processor

import (
	"context"

	"hiring-stream/pkg/commtypes"
	"hiring-stream/pkg/store"

	"github.com/rs/zerolog/log"
)

// StreamTableJoinProcessor joins each stream record against the current row
// of a keyed table. The table lookup happens once, at processing time; a row
// created later does not retroactively join an already-dropped record.
type StreamTableJoinProcessor[K, V1, V2, VR any] struct {
	store    store.CoreKeyValueStore[K, commtypes.ValueTimestamp[V2]]
	joiner   ValueJoinerWithKey[K, V1, V2, VR]
	name     string
	leftJoin bool
}

var _ = Processor[int, int, int, int](&StreamTableJoinProcessor[int, int, int, int]{})

func NewStreamTableJoinProcessor[K, V1, V2, VR any](store store.CoreKeyValueStore[K, commtypes.ValueTimestamp[V2]],
	joiner ValueJoinerWithKey[K, V1, V2, VR],
) *StreamTableJoinProcessor[K, V1, V2, VR] {
	return &StreamTableJoinProcessor[K, V1, V2, VR]{
		joiner:   joiner,
		store:    store,
		name:     "streamTableJoin",
		leftJoin: false,
	}
}

func (p *StreamTableJoinProcessor[K, V1, V2, VR]) Name() string {
	return p.name
}

func (p *StreamTableJoinProcessor[K, V1, V2, VR]) ProcessAndReturn(ctx context.Context,
	msg commtypes.Message[K, V1],
) ([]commtypes.Message[K, VR], error) {
	if msg.Key.IsNone() || msg.Value.IsNone() {
		log.Warn().Msgf("Skipping record due to null join key or value. key=%v, val=%v", msg.Key, msg.Value)
		return nil, nil
	}
	key := msg.Key.Unwrap()
	msgVal := msg.Value.Unwrap()
	valAgg, ok, err := p.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if p.leftJoin || ok {
		joined := p.joiner.Apply(key, msgVal, valAgg.Value)
		newMsg := commtypes.Message[K, VR]{Key: msg.Key, Value: joined, TimestampMs: msg.TimestampMs}
		return []commtypes.Message[K, VR]{newMsg}, nil
	}
	return nil, nil
}

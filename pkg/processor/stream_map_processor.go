package processor

import (
	"context"

	"hiring-stream/pkg/commtypes"
	"hiring-stream/pkg/optional"

	"github.com/rs/zerolog/log"
)

type SelectKeyFunc[K, V, KR any] func(key K, value V) KR

// StreamSelectKeyProcessor re-keys a stream, e.g. ahead of a join whose join
// key differs from the message key.
type StreamSelectKeyProcessor[K, V, KR any] struct {
	selectKey SelectKeyFunc[K, V, KR]
	name      string
}

var _ = Processor[int, int, string, int](&StreamSelectKeyProcessor[int, int, string]{})

func NewStreamSelectKeyProcessor[K, V, KR any](name string, selectKey SelectKeyFunc[K, V, KR]) *StreamSelectKeyProcessor[K, V, KR] {
	return &StreamSelectKeyProcessor[K, V, KR]{
		selectKey: selectKey,
		name:      name,
	}
}

func (p *StreamSelectKeyProcessor[K, V, KR]) Name() string {
	return p.name
}

func (p *StreamSelectKeyProcessor[K, V, KR]) ProcessAndReturn(ctx context.Context,
	msg commtypes.Message[K, V],
) ([]commtypes.Message[KR, V], error) {
	if msg.Key.IsNone() || msg.Value.IsNone() {
		log.Warn().Msgf("Skipping record due to null key or value. key=%v, val=%v", msg.Key, msg.Value)
		return nil, nil
	}
	newKey := p.selectKey(msg.Key.Unwrap(), msg.Value.Unwrap())
	return []commtypes.Message[KR, V]{
		{Key: optional.Some(newKey), Value: msg.Value, TimestampMs: msg.TimestampMs},
	}, nil
}

package eventlog

import (
	"context"

	"hiring-stream/pkg/commtypes"
	"hiring-stream/pkg/hashfuncs"
)

// ShardedProducer encodes messages and pushes them onto the partition their
// key hashes to, so all events for one key stay strictly ordered relative to
// each other.
type ShardedProducer[K, V any] struct {
	log      EventLog
	msgSerde commtypes.MessageSerde[K, V]
	hasher   hashfuncs.HashSum64[K]
}

func NewShardedProducer[K, V any](log EventLog, msgSerde commtypes.MessageSerde[K, V],
	hasher hashfuncs.HashSum64[K],
) *ShardedProducer[K, V] {
	return &ShardedProducer[K, V]{
		log:      log,
		msgSerde: msgSerde,
		hasher:   hasher,
	}
}

func (p *ShardedProducer[K, V]) TopicName() string {
	return p.log.TopicName()
}

func (p *ShardedProducer[K, V]) Produce(ctx context.Context, msg commtypes.Message[K, V]) error {
	payload, err := p.msgSerde.Encode(msg)
	if err != nil {
		return err
	}
	parNum := uint8(0)
	if k, ok := msg.Key.Take(); ok {
		parNum = hashfuncs.PartitionFor(p.hasher.HashSum64(k), p.log.NumPartition())
	}
	_, err = p.log.Push(ctx, payload, parNum)
	return err
}

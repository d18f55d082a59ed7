package eventlog

import (
	"context"

	"hiring-stream/pkg/commtypes"
)

// ShardedConsumer decodes messages off one topic, one partition at a time.
type ShardedConsumer[K, V any] struct {
	log      EventLog
	msgSerde commtypes.MessageSerde[K, V]
}

func NewShardedConsumer[K, V any](log EventLog, msgSerde commtypes.MessageSerde[K, V]) *ShardedConsumer[K, V] {
	return &ShardedConsumer[K, V]{
		log:      log,
		msgSerde: msgSerde,
	}
}

func (c *ShardedConsumer[K, V]) TopicName() string {
	return c.log.TopicName()
}

func (c *ShardedConsumer[K, V]) NumPartition() uint8 {
	return c.log.NumPartition()
}

// Consume returns the next message of the partition, or
// common_errors.ErrStreamEmpty when caught up.
func (c *ShardedConsumer[K, V]) Consume(ctx context.Context, parNum uint8) (commtypes.Message[K, V], error) {
	rawMsg, err := c.log.ReadNext(ctx, parNum)
	if err != nil {
		return commtypes.Message[K, V]{}, err
	}
	return c.msgSerde.Decode(rawMsg.Payload)
}

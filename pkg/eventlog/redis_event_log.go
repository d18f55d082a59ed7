package eventlog

import (
	"context"
	"fmt"
	"time"

	"hiring-stream/pkg/common_errors"
	"hiring-stream/pkg/utils/syncutils"

	"github.com/go-redis/redis/v9"
)

const payloadField = "payload"

type redisPartition struct {
	mux       syncutils.Mutex
	lastID    string
	msgSeqNum uint64
}

// RedisEventLog stores each partition as one Redis Stream named
// "<topic>-<parNum>". XADD preserves per-partition order; the reader keeps
// its own cursor (last seen stream ID), so re-reads after a crash give
// at-least-once delivery.
type RedisEventLog struct {
	clients    []*redis.Client
	partitions []*redisPartition
	topicName  string
}

var _ = EventLog(&RedisEventLog{})

func NewRedisEventLog(topicName string, numPartition uint8, clients []*redis.Client) *RedisEventLog {
	partitions := make([]*redisPartition, numPartition)
	for i := range partitions {
		partitions[i] = &redisPartition{lastID: "0"}
	}
	return &RedisEventLog{
		topicName:  topicName,
		clients:    clients,
		partitions: partitions,
	}
}

func (l *RedisEventLog) TopicName() string {
	return l.topicName
}

func (l *RedisEventLog) NumPartition() uint8 {
	return uint8(len(l.partitions))
}

func (l *RedisEventLog) streamKey(parNum uint8) string {
	return fmt.Sprintf("%s-%d", l.topicName, parNum)
}

func (l *RedisEventLog) clientFor(parNum uint8) *redis.Client {
	return l.clients[int(parNum)%len(l.clients)]
}

func (l *RedisEventLog) Push(ctx context.Context, payload []byte, parNum uint8) (uint64, error) {
	if len(payload) == 0 {
		return 0, common_errors.ErrEmptyPayload
	}
	if int(parNum) >= len(l.partitions) {
		return 0, common_errors.ErrInvalidPartition
	}
	err := l.clientFor(parNum).XAdd(ctx, &redis.XAddArgs{
		Stream: l.streamKey(parNum),
		Values: map[string]interface{}{payloadField: payload},
	}).Err()
	if err != nil {
		return 0, err
	}
	return 0, nil
}

func (l *RedisEventLog) ReadNext(ctx context.Context, parNum uint8) (*RawMsg, error) {
	if int(parNum) >= len(l.partitions) {
		return nil, common_errors.ErrInvalidPartition
	}
	p := l.partitions[parNum]
	p.mux.Lock()
	defer p.mux.Unlock()
	streams, err := l.clientFor(parNum).XRead(ctx, &redis.XReadArgs{
		Streams: []string{l.streamKey(parNum), p.lastID},
		Count:   1,
		Block:   time.Millisecond,
	}).Result()
	if err == redis.Nil {
		return nil, common_errors.ErrStreamEmpty
	}
	if err != nil {
		return nil, err
	}
	if len(streams) == 0 || len(streams[0].Messages) == 0 {
		return nil, common_errors.ErrStreamEmpty
	}
	xmsg := streams[0].Messages[0]
	p.lastID = xmsg.ID
	payloadStr, ok := xmsg.Values[payloadField].(string)
	if !ok {
		return nil, common_errors.ErrEmptyPayload
	}
	seq := p.msgSeqNum
	p.msgSeqNum++
	return &RawMsg{Payload: []byte(payloadStr), MsgSeqNum: seq}, nil
}

// SetCursor rewinds the reader. Only a full rewind to the beginning is
// meaningful for Redis Streams; any other value restarts from the start too.
func (l *RedisEventLog) SetCursor(cursor uint64, parNum uint8) {
	if int(parNum) >= len(l.partitions) {
		return
	}
	p := l.partitions[parNum]
	p.mux.Lock()
	p.lastID = "0"
	p.msgSeqNum = 0
	p.mux.Unlock()
}

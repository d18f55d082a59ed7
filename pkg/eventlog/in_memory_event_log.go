package eventlog

import (
	"context"

	"hiring-stream/pkg/common_errors"
	"hiring-stream/pkg/utils/syncutils"

	"github.com/gammazero/deque"
)

type inMemPartition struct {
	mux     syncutils.Mutex
	entries deque.Deque[RawMsg]
	cursor  uint64
}

// InMemoryEventLog is a sharded in-process log used by tests and
// single-process runs. Entries are retained so a reader can rewind with
// SetCursor and replay, e.g. to restore a table from its changelog.
type InMemoryEventLog struct {
	partitions []*inMemPartition
	topicName  string
}

var _ = EventLog(&InMemoryEventLog{})

func NewInMemoryEventLog(topicName string, numPartition uint8) *InMemoryEventLog {
	partitions := make([]*inMemPartition, numPartition)
	for i := range partitions {
		partitions[i] = &inMemPartition{}
	}
	return &InMemoryEventLog{
		topicName:  topicName,
		partitions: partitions,
	}
}

func (l *InMemoryEventLog) TopicName() string {
	return l.topicName
}

func (l *InMemoryEventLog) NumPartition() uint8 {
	return uint8(len(l.partitions))
}

func (l *InMemoryEventLog) Push(ctx context.Context, payload []byte, parNum uint8) (uint64, error) {
	if len(payload) == 0 {
		return 0, common_errors.ErrEmptyPayload
	}
	if int(parNum) >= len(l.partitions) {
		return 0, common_errors.ErrInvalidPartition
	}
	p := l.partitions[parNum]
	p.mux.Lock()
	seq := uint64(p.entries.Len())
	p.entries.PushBack(RawMsg{Payload: payload, MsgSeqNum: seq})
	p.mux.Unlock()
	return seq, nil
}

func (l *InMemoryEventLog) ReadNext(ctx context.Context, parNum uint8) (*RawMsg, error) {
	if int(parNum) >= len(l.partitions) {
		return nil, common_errors.ErrInvalidPartition
	}
	p := l.partitions[parNum]
	p.mux.Lock()
	defer p.mux.Unlock()
	if p.cursor >= uint64(p.entries.Len()) {
		return nil, common_errors.ErrStreamEmpty
	}
	msg := p.entries.At(int(p.cursor))
	p.cursor++
	return &msg, nil
}

func (l *InMemoryEventLog) SetCursor(cursor uint64, parNum uint8) {
	if int(parNum) >= len(l.partitions) {
		return
	}
	p := l.partitions[parNum]
	p.mux.Lock()
	p.cursor = cursor
	p.mux.Unlock()
}

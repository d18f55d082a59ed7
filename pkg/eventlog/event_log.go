package eventlog

import (
	"context"
)

// RawMsg is one undecoded entry of an event log partition.
type RawMsg struct {
	Payload   []byte
	MsgSeqNum uint64
}

// EventLog is an ordered, partitioned, at-least-once append-only log.
// Within one partition entries are read back in the order they were pushed;
// nothing is guaranteed across partitions.
type EventLog interface {
	TopicName() string
	NumPartition() uint8
	Push(ctx context.Context, payload []byte, parNum uint8) (uint64, error)
	// ReadNext returns the next unread entry of the partition, or
	// common_errors.ErrStreamEmpty when the reader has caught up.
	ReadNext(ctx context.Context, parNum uint8) (*RawMsg, error)
	// SetCursor rewinds the partition's reader, e.g. to replay a changelog.
	SetCursor(cursor uint64, parNum uint8)
}

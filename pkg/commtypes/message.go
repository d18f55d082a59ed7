package commtypes

import (
	"fmt"

	"hiring-stream/pkg/optional"
)

// EventTimeExtractor pulls the logical event time out of a record value.
type EventTimeExtractor interface {
	ExtractEventTime() (int64, error)
}

type Message[K, V any] struct {
	Key         optional.Option[K]
	Value       optional.Option[V]
	TimestampMs int64
}

var _ = fmt.Stringer(Message[int, int]{})

func (m Message[K, V]) String() string {
	return fmt.Sprintf("Msg: {Key: %v, Value: %v, Ts: %d}", m.Key, m.Value, m.TimestampMs)
}

func (m *Message[K, V]) UpdateEventTime(ts int64) {
	m.TimestampMs = ts
}

// ExtractEventTimeFromVal sets the message timestamp from its value,
// which must implement EventTimeExtractor.
func (m *Message[K, V]) ExtractEventTimeFromVal() error {
	v, ok := m.Value.Take()
	if !ok {
		return nil
	}
	extractor, ok := any(v).(EventTimeExtractor)
	if !ok {
		return fmt.Errorf("value of type %T does not carry an event time", v)
	}
	ts, err := extractor.ExtractEventTime()
	if err != nil {
		return err
	}
	m.TimestampMs = ts
	return nil
}

package commtypes

import (
	"encoding/json"

	"hiring-stream/pkg/common_errors"
	"hiring-stream/pkg/optional"
)

// ValueTimestamp pairs a table value with the event time of the upsert
// that produced it.
type ValueTimestamp[V any] struct {
	Value     V
	Timestamp int64
}

func CreateValueTimestamp[V any](val optional.Option[V], ts int64) optional.Option[ValueTimestamp[V]] {
	if v, ok := val.Take(); ok {
		return optional.Some(ValueTimestamp[V]{Value: v, Timestamp: ts})
	}
	return optional.None[ValueTimestamp[V]]()
}

type ValueTimestampSerialized struct {
	ValueEnc  []byte `json:"venc,omitempty" msg:"venc,omitempty"`
	Timestamp int64  `json:"ts,omitempty" msg:"ts,omitempty"`
}

func valTsToValTsSer[V any](value ValueTimestamp[V], valSerde Serde[V]) (*ValueTimestampSerialized, error) {
	venc, err := valSerde.Encode(value.Value)
	if err != nil {
		return nil, err
	}
	return &ValueTimestampSerialized{ValueEnc: venc, Timestamp: value.Timestamp}, nil
}

func valTsSerToValTs[V any](vs *ValueTimestampSerialized, valSerde Serde[V]) (ValueTimestamp[V], error) {
	v, err := valSerde.Decode(vs.ValueEnc)
	if err != nil {
		return ValueTimestamp[V]{}, err
	}
	return ValueTimestamp[V]{Value: v, Timestamp: vs.Timestamp}, nil
}

type ValueTimestampJSONSerde[V any] struct {
	ValSerde Serde[V]
}

var _ = Serde[ValueTimestamp[int]](ValueTimestampJSONSerde[int]{})

func (s ValueTimestampJSONSerde[V]) Encode(value ValueTimestamp[V]) ([]byte, error) {
	vs, err := valTsToValTsSer(value, s.ValSerde)
	if err != nil {
		return nil, err
	}
	return json.Marshal(vs)
}

func (s ValueTimestampJSONSerde[V]) Decode(value []byte) (ValueTimestamp[V], error) {
	if value == nil {
		return ValueTimestamp[V]{}, common_errors.ErrEmptyPayload
	}
	vs := ValueTimestampSerialized{}
	if err := json.Unmarshal(value, &vs); err != nil {
		return ValueTimestamp[V]{}, err
	}
	return valTsSerToValTs(&vs, s.ValSerde)
}

type ValueTimestampMsgpSerde[V any] struct {
	ValSerde Serde[V]
}

var _ = Serde[ValueTimestamp[int]](ValueTimestampMsgpSerde[int]{})

func (s ValueTimestampMsgpSerde[V]) Encode(value ValueTimestamp[V]) ([]byte, error) {
	vs, err := valTsToValTsSer(value, s.ValSerde)
	if err != nil {
		return nil, err
	}
	return vs.MarshalMsg(nil)
}

func (s ValueTimestampMsgpSerde[V]) Decode(value []byte) (ValueTimestamp[V], error) {
	if value == nil {
		return ValueTimestamp[V]{}, common_errors.ErrEmptyPayload
	}
	vs := ValueTimestampSerialized{}
	if _, err := vs.UnmarshalMsg(value); err != nil {
		return ValueTimestamp[V]{}, err
	}
	return valTsSerToValTs(&vs, s.ValSerde)
}

func GetValueTsSerde[V any](serdeFormat SerdeFormat, valSerde Serde[V]) (Serde[ValueTimestamp[V]], error) {
	switch serdeFormat {
	case JSON:
		return ValueTimestampJSONSerde[V]{ValSerde: valSerde}, nil
	case MSGP:
		return ValueTimestampMsgpSerde[V]{ValSerde: valSerde}, nil
	default:
		return nil, common_errors.ErrUnrecognizedSerdeFormat
	}
}

package commtypes

import (
	"encoding/json"

	"hiring-stream/pkg/common_errors"
	"hiring-stream/pkg/optional"
)

// MessageSerialized is the wire envelope of a Message: key and value are
// already encoded by their own serdes. An empty key or value encodes an
// absent (None) side.
type MessageSerialized struct {
	KeyEnc      []byte `json:"key,omitempty" msg:"key,omitempty"`
	ValueEnc    []byte `json:"val,omitempty" msg:"val,omitempty"`
	TimestampMs int64  `json:"ts,omitempty" msg:"ts,omitempty"`
}

type MessageSerde[K, V any] interface {
	Serde[Message[K, V]]
	EncodeKey(key K) ([]byte, error)
	EncodeVal(val V) ([]byte, error)
	DecodeVal(value []byte) (V, error)
}

func msgToMsgSer[K, V any](value Message[K, V], keySerde Serde[K], valSerde Serde[V]) (*MessageSerialized, error) {
	var err error
	var kenc []byte
	if k, ok := value.Key.Take(); ok {
		kenc, err = keySerde.Encode(k)
		if err != nil {
			return nil, err
		}
	}
	var venc []byte
	if v, ok := value.Value.Take(); ok {
		venc, err = valSerde.Encode(v)
		if err != nil {
			return nil, err
		}
	}
	if kenc == nil && venc == nil {
		return nil, nil
	}
	return &MessageSerialized{
		KeyEnc:      kenc,
		ValueEnc:    venc,
		TimestampMs: value.TimestampMs,
	}, nil
}

func msgSerToMsg[K, V any](msgSer *MessageSerialized, keySerde Serde[K], valSerde Serde[V]) (Message[K, V], error) {
	key := optional.None[K]()
	if len(msgSer.KeyEnc) != 0 {
		k, err := keySerde.Decode(msgSer.KeyEnc)
		if err != nil {
			return Message[K, V]{}, err
		}
		key = optional.Some(k)
	}
	val := optional.None[V]()
	if len(msgSer.ValueEnc) != 0 {
		v, err := valSerde.Decode(msgSer.ValueEnc)
		if err != nil {
			return Message[K, V]{}, err
		}
		val = optional.Some(v)
	}
	return Message[K, V]{Key: key, Value: val, TimestampMs: msgSer.TimestampMs}, nil
}

type MessageJSONSerde[K, V any] struct {
	KeySerde Serde[K]
	ValSerde Serde[V]
}

var _ = MessageSerde[int, int](MessageJSONSerde[int, int]{})

func (s MessageJSONSerde[K, V]) Encode(value Message[K, V]) ([]byte, error) {
	msgSer, err := msgToMsgSer(value, s.KeySerde, s.ValSerde)
	if err != nil {
		return nil, err
	}
	if msgSer == nil {
		return nil, nil
	}
	return json.Marshal(msgSer)
}

func (s MessageJSONSerde[K, V]) Decode(value []byte) (Message[K, V], error) {
	if value == nil {
		return Message[K, V]{}, common_errors.ErrEmptyPayload
	}
	msgSer := MessageSerialized{}
	if err := json.Unmarshal(value, &msgSer); err != nil {
		return Message[K, V]{}, err
	}
	return msgSerToMsg(&msgSer, s.KeySerde, s.ValSerde)
}

func (s MessageJSONSerde[K, V]) EncodeKey(key K) ([]byte, error) {
	return s.KeySerde.Encode(key)
}

func (s MessageJSONSerde[K, V]) EncodeVal(val V) ([]byte, error) {
	return s.ValSerde.Encode(val)
}

func (s MessageJSONSerde[K, V]) DecodeVal(value []byte) (V, error) {
	return s.ValSerde.Decode(value)
}

type MessageMsgpSerde[K, V any] struct {
	KeySerde Serde[K]
	ValSerde Serde[V]
}

var _ = MessageSerde[int, int](MessageMsgpSerde[int, int]{})

func (s MessageMsgpSerde[K, V]) Encode(value Message[K, V]) ([]byte, error) {
	msgSer, err := msgToMsgSer(value, s.KeySerde, s.ValSerde)
	if err != nil {
		return nil, err
	}
	if msgSer == nil {
		return nil, nil
	}
	return msgSer.MarshalMsg(nil)
}

func (s MessageMsgpSerde[K, V]) Decode(value []byte) (Message[K, V], error) {
	if value == nil {
		return Message[K, V]{}, common_errors.ErrEmptyPayload
	}
	msgSer := MessageSerialized{}
	if _, err := msgSer.UnmarshalMsg(value); err != nil {
		return Message[K, V]{}, err
	}
	return msgSerToMsg(&msgSer, s.KeySerde, s.ValSerde)
}

func (s MessageMsgpSerde[K, V]) EncodeKey(key K) ([]byte, error) {
	return s.KeySerde.Encode(key)
}

func (s MessageMsgpSerde[K, V]) EncodeVal(val V) ([]byte, error) {
	return s.ValSerde.Encode(val)
}

func (s MessageMsgpSerde[K, V]) DecodeVal(value []byte) (V, error) {
	return s.ValSerde.Decode(value)
}

func GetMsgSerde[K, V any](serdeFormat SerdeFormat, keySerde Serde[K], valSerde Serde[V]) (MessageSerde[K, V], error) {
	switch serdeFormat {
	case JSON:
		return MessageJSONSerde[K, V]{KeySerde: keySerde, ValSerde: valSerde}, nil
	case MSGP:
		return MessageMsgpSerde[K, V]{KeySerde: keySerde, ValSerde: valSerde}, nil
	default:
		return nil, common_errors.ErrUnrecognizedSerdeFormat
	}
}

package commtypes

import (
	"encoding/binary"
	"math"

	"golang.org/x/xerrors"
)

var (
	sizeNot8 = xerrors.New("size of value to deserialize is not 8")
	sizeNot4 = xerrors.New("size of value to deserialize is not 4")
)

type SerdeFormat uint8

const (
	JSON SerdeFormat = 0
	MSGP SerdeFormat = 1
)

type Encoder[V any] interface {
	Encode(v V) ([]byte, error)
}

type EncoderFunc[V any] func(v V) ([]byte, error)

func (ef EncoderFunc[V]) Encode(v V) ([]byte, error) {
	return ef(v)
}

type Decoder[V any] interface {
	Decode([]byte) (V, error)
}

type DecoderFunc[V any] func([]byte) (V, error)

func (df DecoderFunc[V]) Decode(b []byte) (V, error) {
	return df(b)
}

type Serde[V any] interface {
	Encoder[V]
	Decoder[V]
}

type Uint64Encoder struct{}

var _ = Encoder[uint64](Uint64Encoder{})

func (e Uint64Encoder) Encode(value uint64) ([]byte, error) {
	bs := make([]byte, 8)
	binary.BigEndian.PutUint64(bs, value)
	return bs, nil
}

type Uint64Decoder struct{}

var _ = Decoder[uint64](Uint64Decoder{})

func (d Uint64Decoder) Decode(value []byte) (uint64, error) {
	if value == nil {
		return 0, nil
	}
	if len(value) != 8 {
		return 0, sizeNot8
	}
	return binary.BigEndian.Uint64(value), nil
}

type Uint64Serde struct {
	Uint64Encoder
	Uint64Decoder
}

var _ = Serde[uint64](Uint64Serde{})

type Float64Encoder struct{}

var _ = Encoder[float64](Float64Encoder{})

func (e Float64Encoder) Encode(value float64) ([]byte, error) {
	bits := math.Float64bits(value)
	bs := make([]byte, 8)
	binary.BigEndian.PutUint64(bs, bits)
	return bs, nil
}

type Float64Decoder struct{}

var _ = Decoder[float64](Float64Decoder{})

func (d Float64Decoder) Decode(value []byte) (float64, error) {
	if value == nil {
		return 0, nil
	}
	if len(value) != 8 {
		return 0, sizeNot8
	}
	bits := binary.BigEndian.Uint64(value)
	return math.Float64frombits(bits), nil
}

type Float64Serde struct {
	Float64Encoder
	Float64Decoder
}

var _ = Serde[float64](Float64Serde{})

type Float32Encoder struct{}

var _ = Encoder[float32](Float32Encoder{})

func (e Float32Encoder) Encode(value float32) ([]byte, error) {
	bits := math.Float32bits(value)
	bs := make([]byte, 4)
	binary.BigEndian.PutUint32(bs, bits)
	return bs, nil
}

type Float32Decoder struct{}

var _ = Decoder[float32](Float32Decoder{})

func (d Float32Decoder) Decode(value []byte) (float32, error) {
	if value == nil {
		return 0, nil
	}
	if len(value) != 4 {
		return 0, sizeNot4
	}
	bits := binary.BigEndian.Uint32(value)
	return math.Float32frombits(bits), nil
}

type Float32Serde struct {
	Float32Encoder
	Float32Decoder
}

var _ = Serde[float32](Float32Serde{})

type StringEncoder struct{}

var _ = Encoder[string](StringEncoder{})

func (e StringEncoder) Encode(value string) ([]byte, error) {
	return []byte(value), nil
}

type StringDecoder struct{}

var _ = Decoder[string](StringDecoder{})

func (d StringDecoder) Decode(value []byte) (string, error) {
	return string(value), nil
}

type StringSerde struct {
	StringEncoder
	StringDecoder
}

var _ = Serde[string](StringSerde{})

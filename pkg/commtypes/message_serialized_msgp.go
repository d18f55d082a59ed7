package commtypes

import (
	"github.com/tinylib/msgp/msgp"
)

// MarshalMsg implements msgp.Marshaler
func (z *MessageSerialized) MarshalMsg(b []byte) (o []byte, err error) {
	o = msgp.Require(b, z.Msgsize())
	// map header, size 3
	o = append(o, 0x83)
	// string "key"
	o = append(o, 0xa3, 0x6b, 0x65, 0x79)
	o = msgp.AppendBytes(o, z.KeyEnc)
	// string "val"
	o = append(o, 0xa3, 0x76, 0x61, 0x6c)
	o = msgp.AppendBytes(o, z.ValueEnc)
	// string "ts"
	o = append(o, 0xa2, 0x74, 0x73)
	o = msgp.AppendInt64(o, z.TimestampMs)
	return
}

// UnmarshalMsg implements msgp.Unmarshaler
func (z *MessageSerialized) UnmarshalMsg(bts []byte) (o []byte, err error) {
	var field []byte
	var zb0001 uint32
	zb0001, bts, err = msgp.ReadMapHeaderBytes(bts)
	if err != nil {
		err = msgp.WrapError(err)
		return
	}
	for zb0001 > 0 {
		zb0001--
		field, bts, err = msgp.ReadMapKeyZC(bts)
		if err != nil {
			err = msgp.WrapError(err)
			return
		}
		switch msgp.UnsafeString(field) {
		case "key":
			z.KeyEnc, bts, err = msgp.ReadBytesBytes(bts, z.KeyEnc)
			if err != nil {
				err = msgp.WrapError(err, "KeyEnc")
				return
			}
		case "val":
			z.ValueEnc, bts, err = msgp.ReadBytesBytes(bts, z.ValueEnc)
			if err != nil {
				err = msgp.WrapError(err, "ValueEnc")
				return
			}
		case "ts":
			z.TimestampMs, bts, err = msgp.ReadInt64Bytes(bts)
			if err != nil {
				err = msgp.WrapError(err, "TimestampMs")
				return
			}
		default:
			bts, err = msgp.Skip(bts)
			if err != nil {
				err = msgp.WrapError(err)
				return
			}
		}
	}
	o = bts
	return
}

// Msgsize returns an upper bound estimate of the number of bytes occupied by the serialized message
func (z *MessageSerialized) Msgsize() (s int) {
	s = 1 + 4 + msgp.BytesPrefixSize + len(z.KeyEnc) + 4 + msgp.BytesPrefixSize + len(z.ValueEnc) + 3 + msgp.Int64Size
	return
}

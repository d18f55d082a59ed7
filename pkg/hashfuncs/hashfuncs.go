package hashfuncs

import (
	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
	"golang.org/x/exp/constraints"
)

type HashSum64[K any] interface {
	HashSum64(k K) uint64
}

type IntegerHasher[K constraints.Integer] struct{}

func (h IntegerHasher[K]) HashSum64(k K) uint64 {
	return uint64(k)
}

type ByteHasher struct{}

func (h ByteHasher) HashSum64(k byte) uint64 {
	return uint64(k)
}

type StringHasher struct{}

func (sh StringHasher) HashSum64(k string) uint64 {
	return xxhash.Sum64String(k)
}

type ByteSliceHasher struct{}

func (sh ByteSliceHasher) HashSum64(k []byte) uint64 {
	return xxhash.Sum64(k)
}

type Murmur3ByteSliceHasher struct{}

func (sh Murmur3ByteSliceHasher) HashSum64(k []byte) uint64 {
	return murmur3.Sum64(k)
}

type Murmur3StringHasher struct{}

func (sh Murmur3StringHasher) HashSum64(k string) uint64 {
	return murmur3.Sum64([]byte(k))
}

// PartitionFor maps a key's hash onto one of numPartition substreams.
// Events hashing to the same value stay on the same substream so that
// records for one key are consumed in arrival order.
func PartitionFor(hash uint64, numPartition uint8) uint8 {
	return uint8(hash % uint64(numPartition))
}

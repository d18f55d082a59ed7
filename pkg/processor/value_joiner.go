package processor

import "hiring-stream/pkg/optional"

type ValueJoinerWithKey[K, V1, V2, VR any] interface {
	Apply(readOnlyKey K, value1 V1, value2 V2) optional.Option[VR]
}

type ValueJoinerWithKeyFunc[K, V1, V2, VR any] func(readOnlyKey K, value1 V1, value2 V2) optional.Option[VR]

func (fn ValueJoinerWithKeyFunc[K, V1, V2, VR]) Apply(readOnlyKey K, value1 V1, value2 V2) optional.Option[VR] {
	return fn(readOnlyKey, value1, value2)
}

func ReverseValueJoinerWithKey[K, V1, V2, VR any](f ValueJoinerWithKeyFunc[K, V1, V2, VR]) ValueJoinerWithKeyFunc[K, V2, V1, VR] {
	return func(readOnlyKey K, value2 V2, value1 V1) optional.Option[VR] {
		return f(readOnlyKey, value1, value2)
	}
}

// ValueJoinerWithKeyTs joins a left value with an optional right value; the
// right side is None when the join emits before (or without) a right match.
type ValueJoinerWithKeyTs[K, V1, V2, VR any] interface {
	Apply(readOnlyKey K, value1 V1, value2 optional.Option[V2], leftTs int64, otherTs int64) VR
}

type ValueJoinerWithKeyTsFunc[K, V1, V2, VR any] func(readOnlyKey K, value1 V1, value2 optional.Option[V2],
	leftTs int64, otherTs int64) VR

func (fn ValueJoinerWithKeyTsFunc[K, V1, V2, VR]) Apply(readOnlyKey K, value1 V1, value2 optional.Option[V2],
	leftTs int64, otherTs int64,
) VR {
	return fn(readOnlyKey, value1, value2, leftTs, otherTs)
}

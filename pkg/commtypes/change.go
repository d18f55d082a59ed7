package commtypes

import (
	"hiring-stream/pkg/optional"
)

// Change carries the old and new value of a table update downstream.
type Change[V any] struct {
	NewVal optional.Option[V]
	OldVal optional.Option[V]
}

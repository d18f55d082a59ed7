package processor

import (
	"context"

	"hiring-stream/pkg/commtypes"
)

type Processor[KIn, VIn, KOut, VOut any] interface {
	Name() string
	// ProcessAndReturn processes one input message and returns the resulting
	// downstream messages, possibly none.
	ProcessAndReturn(ctx context.Context, msg commtypes.Message[KIn, VIn]) ([]commtypes.Message[KOut, VOut], error)
}

type ProcessAndReturnFunc[KIn, VIn, KOut, VOut any] func(ctx context.Context,
	msg commtypes.Message[KIn, VIn]) ([]commtypes.Message[KOut, VOut], error)

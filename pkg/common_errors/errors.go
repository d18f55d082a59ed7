package common_errors

import (
	"golang.org/x/xerrors"
)

var (
	ErrEmptyPayload            = xerrors.New("payload cannot be empty")
	ErrStreamEmpty             = xerrors.New("stream empty")
	ErrStreamTimeout           = xerrors.New("blocking read timeout")
	ErrInvalidStateTransition  = xerrors.New("invalid state transition")
	ErrUnrecognizedSerdeFormat = xerrors.New("unrecognized serde format")
	ErrWindowSizeLeqZero       = xerrors.New("window size should be larger than zero")
	ErrGraceLessThanZero       = xerrors.New("grace period should not be negative")
	ErrInvalidPartition        = xerrors.New("partition out of range")
	ErrAlreadyRunning          = xerrors.New("pipeline is already running")
)

func IsStreamEmptyError(err error) bool {
	return err == ErrStreamEmpty
}

func IsStreamTimeoutError(err error) bool {
	return err == ErrStreamTimeout
}

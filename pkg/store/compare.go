package store

import (
	"golang.org/x/exp/constraints"
)

// CompareFunc returns negative when a < b, zero when equal, positive when a > b.
type CompareFunc[K any] func(a, b K) int

type LessFunc[K any] func(a, b K) bool

func IntegerCompare[K constraints.Integer](a, b K) int {
	if a < b {
		return -1
	} else if a == b {
		return 0
	}
	return 1
}

func OrderedCompare[K constraints.Ordered](a, b K) int {
	if a < b {
		return -1
	} else if a == b {
		return 0
	}
	return 1
}

func IntegerLessFunc[K constraints.Integer](a, b K) bool {
	return a < b
}

func OrderedLessFunc[K constraints.Ordered](a, b K) bool {
	return a < b
}

package optional

// Option holds a value of type T or nothing. The zero value is None.
type Option[T any] struct {
	value T
	some  bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) IsSome() bool {
	return o.some
}

func (o Option[T]) IsNone() bool {
	return !o.some
}

// Unwrap returns the contained value; the zero value of T when none.
func (o Option[T]) Unwrap() T {
	return o.value
}

func (o Option[T]) Take() (T, bool) {
	return o.value, o.some
}

func (o Option[T]) TakeOr(fallback T) T {
	if o.some {
		return o.value
	}
	return fallback
}

func (o Option[T]) TakeOrElse(fallback func() T) T {
	if o.some {
		return o.value
	}
	return fallback()
}

func Map[T, U any](o Option[T], mapper func(T) U) Option[U] {
	if o.some {
		return Some(mapper(o.value))
	}
	return None[U]()
}

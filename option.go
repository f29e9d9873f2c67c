package arena

import "fmt"

// Option holds an optional value. The zero value is an empty option.
type Option[T any] struct {
	value T
	ok    bool
}

// Some creates an option holding the given value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, ok: true}
}

// None creates an empty option.
func None[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

func (o Option[T]) IsSome() bool {
	return o.ok
}

func (o Option[T]) OrValue(fallback T) T {
	if o.ok {
		return o.value
	}

	return fallback
}

func (o Option[T]) OrDefault() T {
	var tZero T
	return o.OrValue(tZero)
}

func (o Option[T]) String() string {
	if !o.ok {
		return "None"
	}

	return fmt.Sprintf("Some(%v)", o.value)
}

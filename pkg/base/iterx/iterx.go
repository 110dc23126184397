package iterx

import "iter"

// Iterator walks a sequence once. Next returns false once the sequence is
// exhausted and keeps returning false afterwards.
type Iterator[T any] interface {
	Next() (T, bool)
}

type empty[T any] struct{}

func (empty[T]) Next() (T, bool) {
	var zero T
	return zero, false
}

// Empty returns an iterator with no elements.
func Empty[T any]() Iterator[T] {
	return empty[T]{}
}

type single[T any] struct {
	value T
	done  bool
}

func (s *single[T]) Next() (T, bool) {
	if s.done {
		var zero T
		return zero, false
	}
	s.done = true
	return s.value, true
}

// Single returns an iterator yielding v exactly once.
func Single[T any](v T) Iterator[T] {
	return &single[T]{value: v}
}

// Seq drains it into a range-over-func sequence.
func Seq[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Collect drains it into a slice.
func Collect[T any](it Iterator[T]) []T {
	res := make([]T, 0)
	for v := range Seq(it) {
		res = append(res, v)
	}
	return res
}

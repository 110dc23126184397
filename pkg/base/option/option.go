package option

import (
	"fmt"
	"iter"

	"github.com/ib-77/baselib/pkg/base"
	"github.com/ib-77/baselib/pkg/base/iterx"
)

// Option holds a value of type T or nothing. The zero value is None.
type Option[T any] struct {
	value T
	ok    bool
}

// Some wraps v. It panics if v is nil.
func Some[T any](v T) Option[T] {
	base.MustNotNil(v, "Some")
	return Option[T]{value: v, ok: true}
}

// None returns the empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Of returns None for a nil v and Some(v) otherwise.
func Of[T any](v T) Option[T] {
	if base.IsNil(v) {
		return None[T]()
	}
	return Some(v)
}

// FromPtr returns None for a nil pointer and Some of the pointee otherwise.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Of(*p)
}

// FromOk adapts the comma-ok idiom.
func FromOk[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Of(v)
}

// Try calls f and returns Some of its result. A returned error or a panic
// yields None.
func Try[T any](f func() (T, error)) Option[T] {
	v, err := base.Capture(f)
	if err != nil {
		return None[T]()
	}
	return Of(v)
}

func (o Option[T]) IsDefined() bool {
	return o.ok
}

func (o Option[T]) IsEmpty() bool {
	return !o.ok
}

// Get returns the held value and whether there was one.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// OrNil returns a pointer to a copy of the held value, or nil for None.
func (o Option[T]) OrNil() *T {
	if !o.ok {
		return nil
	}
	v := o.value
	return &v
}

func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.ok && pred(o.value) {
		return o
	}
	return None[T]()
}

func (o Option[T]) FilterNot(pred func(T) bool) Option[T] {
	if o.ok && !pred(o.value) {
		return o
	}
	return None[T]()
}

func (o Option[T]) Exists(pred func(T) bool) bool {
	return o.ok && pred(o.value)
}

// GetOrElse returns the held value or v.
func (o Option[T]) GetOrElse(v T) T {
	if o.ok {
		return o.value
	}
	return v
}

// GetOrElseFunc returns the held value, calling f only for None.
func (o Option[T]) GetOrElseFunc(f func() T) T {
	if o.ok {
		return o.value
	}
	return f()
}

// OrElse returns o if it is defined, otherwise Some(v).
func (o Option[T]) OrElse(v T) Option[T] {
	if o.ok {
		return o
	}
	return Some(v)
}

// OrElseFunc returns o if it is defined, otherwise Some(f()).
func (o Option[T]) OrElseFunc(f func() T) Option[T] {
	if o.ok {
		return o
	}
	return Some(f())
}

func (o Option[T]) Size() int {
	if o.ok {
		return 1
	}
	return 0
}

func (o Option[T]) Contains(v T) bool {
	return o.ok && base.Equal(o.value, v)
}

// ContainsAll reports whether every element of vs equals the held value. It
// is true for an empty vs.
func (o Option[T]) ContainsAll(vs ...T) bool {
	for _, v := range vs {
		if !o.Contains(v) {
			return false
		}
	}
	return true
}

func (o Option[T]) Iterator() iterx.Iterator[T] {
	if o.ok {
		return iterx.Single(o.value)
	}
	return iterx.Empty[T]()
}

func (o Option[T]) All() iter.Seq[T] {
	return iterx.Seq(o.Iterator())
}

func (o Option[T]) Equal(other Option[T]) bool {
	if o.ok != other.ok {
		return false
	}
	return !o.ok || base.Equal(o.value, other.value)
}

func (o Option[T]) String() string {
	if o.ok {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

package either

import (
	"iter"

	"github.com/ib-77/baselib/pkg/base"
	"github.com/ib-77/baselib/pkg/base/iterx"
	"github.com/ib-77/baselib/pkg/base/option"
)

// LeftView sees an Either as a container of zero or one left values. It is
// empty when the source holds a Right.
type LeftView[L, R any] struct {
	source Either[L, R]
}

func (v LeftView[L, R]) on() bool {
	return !v.source.isRight
}

func (v LeftView[L, R]) Exists(pred func(L) bool) bool {
	return v.on() && pred(v.source.left)
}

// Filter returns the source Either when it holds a left value matching pred.
func (v LeftView[L, R]) Filter(pred func(L) bool) option.Option[Either[L, R]] {
	if v.Exists(pred) {
		return option.Some(v.source)
	}
	return option.None[Either[L, R]]()
}

func (v LeftView[L, R]) ToOption() option.Option[L] {
	return v.source.AsLeft()
}

func (v LeftView[L, R]) GetOrElse(def L) L {
	if v.on() {
		return v.source.left
	}
	return def
}

// GetOrElseFunc returns the left value, calling def only when there is none.
func (v LeftView[L, R]) GetOrElseFunc(def func() L) L {
	if v.on() {
		return v.source.left
	}
	return def()
}

func (v LeftView[L, R]) Size() int {
	if v.on() {
		return 1
	}
	return 0
}

func (v LeftView[L, R]) IsEmpty() bool {
	return !v.on()
}

func (v LeftView[L, R]) Contains(x L) bool {
	return v.on() && base.Equal(v.source.left, x)
}

func (v LeftView[L, R]) ContainsAll(xs ...L) bool {
	for _, x := range xs {
		if !v.Contains(x) {
			return false
		}
	}
	return true
}

func (v LeftView[L, R]) Iterator() iterx.Iterator[L] {
	if v.on() {
		return iterx.Single(v.source.left)
	}
	return iterx.Empty[L]()
}

func (v LeftView[L, R]) All() iter.Seq[L] {
	return iterx.Seq(v.Iterator())
}

// RightView sees an Either as a container of zero or one right values. It is
// empty when the source holds a Left.
type RightView[L, R any] struct {
	source Either[L, R]
}

func (v RightView[L, R]) on() bool {
	return v.source.isRight
}

func (v RightView[L, R]) Exists(pred func(R) bool) bool {
	return v.on() && pred(v.source.right)
}

// Filter returns the source Either when it holds a right value matching pred.
func (v RightView[L, R]) Filter(pred func(R) bool) option.Option[Either[L, R]] {
	if v.Exists(pred) {
		return option.Some(v.source)
	}
	return option.None[Either[L, R]]()
}

func (v RightView[L, R]) ToOption() option.Option[R] {
	return v.source.AsRight()
}

func (v RightView[L, R]) GetOrElse(def R) R {
	if v.on() {
		return v.source.right
	}
	return def
}

// GetOrElseFunc returns the right value, calling def only when there is none.
func (v RightView[L, R]) GetOrElseFunc(def func() R) R {
	if v.on() {
		return v.source.right
	}
	return def()
}

func (v RightView[L, R]) Size() int {
	if v.on() {
		return 1
	}
	return 0
}

func (v RightView[L, R]) IsEmpty() bool {
	return !v.on()
}

func (v RightView[L, R]) Contains(x R) bool {
	return v.on() && base.Equal(v.source.right, x)
}

func (v RightView[L, R]) ContainsAll(xs ...R) bool {
	for _, x := range xs {
		if !v.Contains(x) {
			return false
		}
	}
	return true
}

func (v RightView[L, R]) Iterator() iterx.Iterator[R] {
	if v.on() {
		return iterx.Single(v.source.right)
	}
	return iterx.Empty[R]()
}

func (v RightView[L, R]) All() iter.Seq[R] {
	return iterx.Seq(v.Iterator())
}

// FlatMapLeft continues with f on a left value. A right value is carried
// over unchanged and f is not called.
func FlatMapLeft[L, R, T any](v LeftView[L, R], f func(L) Either[T, R]) Either[T, R] {
	if v.on() {
		return f(v.source.left)
	}
	return Right[T](v.source.right)
}

// MapLeft transforms a left value, keeping a right value as is.
func MapLeft[L, R, T any](v LeftView[L, R], f func(L) T) Either[T, R] {
	return FlatMapLeft(v, func(l L) Either[T, R] {
		return Left[T, R](f(l))
	})
}

// MapLeft2 combines the left values of v and p. The result is a Right as soon
// as either of them holds a right value.
func MapLeft2[L, R, P, Q any](v LeftView[L, R], p Either[P, R],
	f func(L, P) Q) Either[Q, R] {

	return FlatMapLeft(v, func(l L) Either[Q, R] {
		return MapLeft(p.Left(), func(pp P) Q { return f(l, pp) })
	})
}

// FlatMapRight continues with f on a right value. A left value is carried
// over unchanged and f is not called.
func FlatMapRight[L, R, T any](v RightView[L, R], f func(R) Either[L, T]) Either[L, T] {
	if v.on() {
		return f(v.source.right)
	}
	return Left[L, T](v.source.left)
}

// MapRight transforms a right value, keeping a left value as is.
func MapRight[L, R, T any](v RightView[L, R], f func(R) T) Either[L, T] {
	return FlatMapRight(v, func(r R) Either[L, T] {
		return Right[L](f(r))
	})
}

// MapRight2 combines the right values of p and v, passing p's value first.
// The result is a Left as soon as either of them holds a left value.
func MapRight2[L, R, P, Q any](v RightView[L, R], p Either[L, P],
	f func(P, R) Q) Either[L, Q] {

	return FlatMapRight(v, func(r R) Either[L, Q] {
		return MapRight(p.Right(), func(pp P) Q { return f(pp, r) })
	})
}

package either

import (
	"fmt"

	"github.com/ib-77/baselib/pkg/base"
	"github.com/ib-77/baselib/pkg/base/option"
)

// Either holds exactly one of a left value or a right value. Build it with
// Left or Right.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left returns an Either holding the left value v.
func Left[L, R any](v L) Either[L, R] {
	return Either[L, R]{left: v}
}

// Right returns an Either holding the right value v.
func Right[L, R any](v R) Either[L, R] {
	return Either[L, R]{right: v, isRight: true}
}

// Try calls f and returns its result as a Right. A returned error or a panic
// becomes a Left.
func Try[T any](f func() (T, error)) Either[error, T] {
	v, err := base.Capture(f)
	if err != nil {
		return Left[error, T](err)
	}
	return Right[error](v)
}

func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// AsLeft returns the left value as an Option. A nil left value is None.
func (e Either[L, R]) AsLeft() option.Option[L] {
	if e.isRight {
		return option.None[L]()
	}
	return option.Of(e.left)
}

// AsRight returns the right value as an Option. A nil right value is None.
func (e Either[L, R]) AsRight() option.Option[R] {
	if e.isRight {
		return option.Of(e.right)
	}
	return option.None[R]()
}

// Unpack splits e into both sides, exactly one of which is defined.
func (e Either[L, R]) Unpack() (option.Option[L], option.Option[R]) {
	return e.AsLeft(), e.AsRight()
}

func (e Either[L, R]) Swap() Either[R, L] {
	if e.isRight {
		return Left[R, L](e.right)
	}
	return Right[R, L](e.left)
}

// Left projects e onto its left side.
func (e Either[L, R]) Left() LeftView[L, R] {
	return LeftView[L, R]{source: e}
}

// Right projects e onto its right side.
func (e Either[L, R]) Right() RightView[L, R] {
	return RightView[L, R]{source: e}
}

func (e Either[L, R]) Equal(other Either[L, R]) bool {
	if e.isRight != other.isRight {
		return false
	}
	if e.isRight {
		return base.Equal(e.right, other.right)
	}
	return base.Equal(e.left, other.left)
}

func (e Either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}

// Fold calls onLeft or onRight depending on which side e holds.
func Fold[L, R, T any](e Either[L, R], onLeft func(L) T, onRight func(R) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// Merge returns the value of an Either whose sides share a type.
func Merge[T any](e Either[T, T]) T {
	if e.isRight {
		return e.right
	}
	return e.left
}

// Pair can be turned into an Either holding either of its elements.
type Pair[L, R any] struct {
	First  L
	Second R
}

// ToLeft returns Left(p.First).
func (p Pair[L, R]) ToLeft() Either[L, R] {
	return Left[L, R](p.First)
}

// ToRight returns Right(p.Second).
func (p Pair[L, R]) ToRight() Either[L, R] {
	return Right[L](p.Second)
}

package chain

import (
	"errors"

	"github.com/ib-77/baselib/pkg/base/either"
)

type Chain[T any] struct {
	res either.Either[error, T]
}

func Start[T any](res either.Either[error, T]) Chain[T] {
	return Chain[T]{res: res}
}

func FromValue[T any](v T) Chain[T] {
	return Start(either.Right[error](v))
}

func Failed[T any](err error) Chain[T] {
	return Start(either.Left[error, T](err))
}

func (c Chain[T]) Result() either.Either[error, T] {
	return c.res
}

func (c Chain[T]) Err() error {
	return c.res.Left().GetOrElse(nil)
}

// Then composes functions that already return Either[error, T]
func (c Chain[T]) Then(onSuccess func(t T) either.Either[error, T]) Chain[T] {
	return Chain[T]{res: either.FlatMapRight(c.res.Right(), onSuccess)}
}

// ThenTry composes functions that return (T, error). Panics become failures.
func (c Chain[T]) ThenTry(try func(t T) (T, error)) Chain[T] {
	return To(c, func(t T) either.Either[error, T] {
		return either.Try(func() (T, error) { return try(t) })
	})
}

func (c Chain[T]) Map(onSuccess func(t T) T) Chain[T] {
	return Chain[T]{res: either.MapRight(c.res.Right(), onSuccess)}
}

// Validate fails the chain with errMsg when valid rejects the value.
func (c Chain[T]) Validate(valid func(t T) bool, errMsg string) Chain[T] {
	return c.Then(func(t T) either.Either[error, T] {
		if valid(t) {
			return either.Right[error](t)
		}
		return either.Left[error, T](errors.New(errMsg))
	})
}

// While repeats onSuccess as long as cond holds and no step failed.
func (c Chain[T]) While(onSuccess func(t T) either.Either[error, T], cond func(t T) bool) Chain[T] {
	for c.res.Right().Exists(cond) {
		c = c.Then(onSuccess)
	}
	return c
}

// Or returns the first successful chain, or c itself when none succeeded.
func (c Chain[T]) Or(alternatives ...Chain[T]) Chain[T] {
	if c.res.IsRight() {
		return c
	}
	for _, alt := range alternatives {
		if alt.res.IsRight() {
			return alt
		}
	}
	return c
}

// And returns the first failed chain, or the last one when all succeeded.
func (c Chain[T]) And(required ...Chain[T]) Chain[T] {
	last := c
	for _, ch := range append([]Chain[T]{c}, required...) {
		if ch.res.IsLeft() {
			return ch
		}
		last = ch
	}
	return last
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T]) Ensure(onSuccess func(T), onFailure func(error)) Chain[T] {
	either.Fold(c.res,
		func(err error) struct{} {
			if onFailure != nil {
				onFailure(err)
			}
			return struct{}{}
		},
		func(t T) struct{} {
			if onSuccess != nil {
				onSuccess(t)
			}
			return struct{}{}
		})
	return c
}

// To switches the chain to a new value type.
func To[T, U any](c Chain[T], onSuccess func(t T) either.Either[error, U]) Chain[U] {
	return Chain[U]{res: either.FlatMapRight(c.res.Right(), onSuccess)}
}

// Finally collapses the chain to a final value.
func Finally[T, U any](c Chain[T], onSuccess func(T) U, onFailure func(error) U) U {
	return either.Fold(c.res, onFailure, onSuccess)
}

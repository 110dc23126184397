package option

// Map applies f to the held value. f is not called for None.
func Map[T, R any](o Option[T], f func(T) R) Option[R] {
	if o.ok {
		return Some(f(o.value))
	}
	return None[R]()
}

// FlatMap returns f's result for Some and None otherwise.
func FlatMap[T, R any](o Option[T], f func(T) Option[R]) Option[R] {
	if o.ok {
		return f(o.value)
	}
	return None[R]()
}

// Flatten removes one level of nesting.
func Flatten[T any](oo Option[Option[T]]) Option[T] {
	return FlatMap(oo, func(o Option[T]) Option[T] { return o })
}

// Fold calls onNone for None and onSome with the held value otherwise.
func Fold[T, R any](o Option[T], onNone func() R, onSome func(T) R) R {
	if o.ok {
		return onSome(o.value)
	}
	return onNone()
}

// FoldValue is Fold with an eagerly supplied default.
func FoldValue[T, R any](o Option[T], def R, onSome func(T) R) R {
	if o.ok {
		return onSome(o.value)
	}
	return def
}

// Map2 combines two options; the result is present only if both are.
func Map2[T, P, R any](o Option[T], p Option[P], f func(T, P) R) Option[R] {
	return FlatMap(o, func(t T) Option[R] {
		return Map(p, func(pp P) R { return f(t, pp) })
	})
}

// Map3 combines three options, stopping at the first None from the left.
func Map3[T, P, Q, R any](o Option[T], p Option[P], q Option[Q],
	f func(T, P, Q) R) Option[R] {

	return FlatMap(o, func(t T) Option[R] {
		return FlatMap(p, func(pp P) Option[R] {
			return Map(q, func(qq Q) R { return f(t, pp, qq) })
		})
	})
}

package option

// Getter wraps a key lookup.
type Getter[K comparable, V any] struct {
	get func(K) V
}

// NewGetter builds a Getter from a lookup function.
func NewGetter[K comparable, V any](get func(K) V) Getter[K, V] {
	return Getter[K, V]{get: get}
}

func (g Getter[K, V]) Get(key K) V {
	return g.get(key)
}

// OfMap returns a view of m whose lookups yield None for missing keys and
// for keys holding a nil value.
func OfMap[K comparable, V any](m map[K]V) Getter[K, Option[V]] {
	return NewGetter(func(k K) Option[V] {
		return Lookup(m, k)
	})
}

// Lookup reads m[k] as an Option.
func Lookup[K comparable, V any](m map[K]V, k K) Option[V] {
	v, ok := m[k]
	return FromOk(v, ok)
}

package either

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/ib-77/baselib/pkg/base/option"
)

func drawEither(t *rapid.T, label string) Either[string, int] {
	if rapid.Bool().Draw(t, label+"_right") {
		return Right[string](rapid.Int().Draw(t, label))
	}
	return Left[string, int](rapid.String().Draw(t, label))
}

func TestLeftView_OnSide(t *testing.T) {
	t.Parallel()

	e := Left[string, int]("abc")
	v := e.Left()

	assert.Equal(t, 1, v.Size())
	assert.False(t, v.IsEmpty())
	assert.True(t, v.Exists(func(s string) bool { return len(s) == 3 }))
	assert.Equal(t, option.Some(e), v.Filter(func(s string) bool { return s == "abc" }))
	assert.Equal(t, option.None[Either[string, int]](), v.Filter(func(s string) bool { return s == "x" }))
	assert.Equal(t, option.Some("abc"), v.ToOption())
	assert.True(t, v.Contains("abc"))
	assert.True(t, v.ContainsAll("abc", "abc"))
	assert.False(t, v.ContainsAll("abc", "x"))

	called := false
	got := v.GetOrElseFunc(func() string {
		called = true
		return "def"
	})
	assert.Equal(t, "abc", got)
	assert.False(t, called)
	assert.Equal(t, "abc", v.GetOrElse("def"))

	var seen []string
	for s := range v.All() {
		seen = append(seen, s)
	}
	assert.Equal(t, []string{"abc"}, seen)
}

func TestLeftView_OffSide(t *testing.T) {
	t.Parallel()

	v := Right[string](5).Left()

	calls := 0
	spy := func(string) bool {
		calls++
		return true
	}

	assert.Equal(t, 0, v.Size())
	assert.True(t, v.IsEmpty())
	assert.False(t, v.Exists(spy))
	assert.Equal(t, option.None[Either[string, int]](), v.Filter(spy))
	assert.Zero(t, calls)
	assert.Equal(t, option.None[string](), v.ToOption())
	assert.False(t, v.Contains(""))
	assert.True(t, v.ContainsAll())
	assert.False(t, v.ContainsAll("a"))
	assert.Equal(t, "def", v.GetOrElseFunc(func() string { return "def" }))
	assert.Equal(t, "def", v.GetOrElse("def"))

	_, ok := v.Iterator().Next()
	assert.False(t, ok)
}

func TestRightView_OnSide(t *testing.T) {
	t.Parallel()

	e := Right[string](4)
	v := e.Right()

	assert.Equal(t, 1, v.Size())
	assert.False(t, v.IsEmpty())
	assert.True(t, v.Exists(func(i int) bool { return i == 4 }))
	assert.Equal(t, option.Some(e), v.Filter(func(i int) bool { return i > 0 }))
	assert.Equal(t, option.None[Either[string, int]](), v.Filter(func(i int) bool { return i < 0 }))
	assert.Equal(t, option.Some(4), v.ToOption())
	assert.True(t, v.Contains(4))
	assert.Equal(t, 4, v.GetOrElseFunc(func() int { return -1 }))

	it := v.Iterator()
	x, ok := it.Next()
	require.True(t, ok)
	require.Equal(t, 4, x)
	_, ok = it.Next()
	require.False(t, ok)
}

func TestRightView_OffSide(t *testing.T) {
	t.Parallel()

	v := Left[string, int]("err").Right()

	assert.Equal(t, 0, v.Size())
	assert.True(t, v.IsEmpty())
	assert.False(t, v.Exists(func(int) bool { return true }))
	assert.Equal(t, option.None[Either[string, int]](), v.Filter(func(int) bool { return true }))
	assert.Equal(t, option.None[int](), v.ToOption())
	assert.False(t, v.Contains(0))
	assert.Equal(t, -1, v.GetOrElseFunc(func() int { return -1 }))
	assert.Equal(t, -1, v.GetOrElse(-1))

	for range v.All() {
		t.Fatalf("off-side view should not yield")
	}
}

func TestFlatMapLeft(t *testing.T) {
	t.Parallel()

	toLen := func(s string) Either[int, int] { return Left[int, int](len(s)) }

	assert.Equal(t, Left[int, int](3), FlatMapLeft(Left[string, int]("abc").Left(), toLen))

	called := false
	out := FlatMapLeft(Right[string](9).Left(), func(s string) Either[int, int] {
		called = true
		return toLen(s)
	})
	assert.False(t, called)
	assert.Equal(t, Right[int](9), out)
}

func TestFlatMapRight(t *testing.T) {
	t.Parallel()

	parse := func(s string) Either[error, int] {
		return Try(func() (int, error) { return strconv.Atoi(s) })
	}

	assert.Equal(t, Right[error](12), FlatMapRight(Right[error]("12").Right(), parse))
	assert.True(t, FlatMapRight(Right[error]("x").Right(), parse).IsLeft())

	called := false
	out := FlatMapRight(Left[string, int]("err").Right(), func(i int) Either[string, string] {
		called = true
		return Right[string](strconv.Itoa(i))
	})
	assert.False(t, called)
	assert.Equal(t, Left[string, string]("err"), out)
}

func TestMapLeftAndRight(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Left[int, int](3), MapLeft(Left[string, int]("abc").Left(), func(s string) int { return len(s) }))
	assert.Equal(t, Right[int](1), MapLeft(Right[string](1).Left(), func(s string) int { return len(s) }))

	assert.Equal(t, Right[string]("1"), MapRight(Right[string](1).Right(), strconv.Itoa))
	assert.Equal(t, Left[string, string]("e"), MapRight(Left[string, int]("e").Right(), strconv.Itoa))
}

func TestMapLeft2(t *testing.T) {
	t.Parallel()

	concat := func(a string, b int) string { return a + strconv.Itoa(b) }

	assert.Equal(t, Left[string, bool]("a1"),
		MapLeft2(Left[string, bool]("a").Left(), Left[int, bool](1), concat))
	assert.Equal(t, Right[string](true),
		MapLeft2(Right[string](true).Left(), Left[int, bool](1), concat))
	assert.Equal(t, Right[string](false),
		MapLeft2(Left[string, bool]("a").Left(), Right[int](false), concat))
}

func TestMapRight2(t *testing.T) {
	t.Parallel()

	// the other Either's value comes first
	sub := func(p, r int) int { return p - r }

	assert.Equal(t, Right[string](7), MapRight2(Right[string](3).Right(), Right[string](10), sub))
	assert.Equal(t, Left[string, int]("a"), MapRight2(Left[string, int]("a").Right(), Right[string](10), sub))
	assert.Equal(t, Left[string, int]("b"), MapRight2(Right[string](3).Right(), Left[string, int]("b"), sub))
}

func TestProp_SwapInvolution(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		e := drawEither(t, "e")
		if e.Swap().Swap() != e {
			t.Fatalf("swap twice changed %v", e)
		}
		if e.Swap().IsLeft() != e.IsRight() {
			t.Fatalf("swap kept the side of %v", e)
		}
	})
}

func TestProp_ExactlyOneSide(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		e := drawEither(t, "e")
		if e.Left().Size()+e.Right().Size() != 1 {
			t.Fatalf("%v must populate exactly one side", e)
		}
		if e.IsLeft() == e.IsRight() {
			t.Fatalf("IsLeft and IsRight must be exclusive for %v", e)
		}
	})
}

func TestProp_MergeOfSameTypes(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		x := rapid.Int().Draw(t, "x")
		if Merge(Left[int, int](x)) != x || Merge(Right[int](x)) != x {
			t.Fatalf("merge lost %d", x)
		}
	})
}

func TestProp_RightMonadLaws(t *testing.T) {
	f := func(i int) Either[string, int] {
		if i%3 == 0 {
			return Left[string, int]("f")
		}
		return Right[string](i + 1)
	}
	g := func(i int) Either[string, int] {
		if i%2 == 0 {
			return Left[string, int]("g")
		}
		return Right[string](i * 2)
	}

	rapid.Check(t, func(t *rapid.T) {
		v := rapid.Int().Draw(t, "v")
		e := drawEither(t, "e")

		if FlatMapRight(Right[string](v).Right(), f) != f(v) {
			t.Fatalf("left identity failed for %d", v)
		}
		if FlatMapRight(e.Right(), Right[string, int]) != e {
			t.Fatalf("right identity failed for %v", e)
		}

		chained := FlatMapRight(FlatMapRight(e.Right(), f).Right(), g)
		nested := FlatMapRight(e.Right(), func(x int) Either[string, int] {
			return FlatMapRight(f(x).Right(), g)
		})
		if chained != nested {
			t.Fatalf("associativity failed for %v: %v != %v", e, chained, nested)
		}
	})
}

func TestProp_LeftMonadLaws(t *testing.T) {
	f := func(s string) Either[string, int] {
		if len(s)%2 == 0 {
			return Right[string](len(s))
		}
		return Left[string, int](s + "f")
	}
	g := func(s string) Either[string, int] {
		if len(s) > 4 {
			return Right[string](-1)
		}
		return Left[string, int]("g" + s)
	}

	rapid.Check(t, func(t *rapid.T) {
		s := rapid.String().Draw(t, "s")
		e := drawEither(t, "e")

		if FlatMapLeft(Left[string, int](s).Left(), f) != f(s) {
			t.Fatalf("left identity failed for %q", s)
		}
		if FlatMapLeft(e.Left(), Left[string, int]) != e {
			t.Fatalf("right identity failed for %v", e)
		}

		chained := FlatMapLeft(FlatMapLeft(e.Left(), f).Left(), g)
		nested := FlatMapLeft(e.Left(), func(x string) Either[string, int] {
			return FlatMapLeft(f(x).Left(), g)
		})
		if chained != nested {
			t.Fatalf("associativity failed for %v: %v != %v", e, chained, nested)
		}
	})
}

func TestProp_OffSidePassesThrough(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		x := rapid.Int().Draw(t, "x")
		called := false
		out := FlatMapLeft(Right[string](x).Left(), func(s string) Either[bool, int] {
			called = true
			return Left[bool, int](true)
		})
		if called || out != Right[bool](x) {
			t.Fatalf("right value %d was not passed through: %v", x, out)
		}
	})
}

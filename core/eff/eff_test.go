package eff_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codewandler/actio-go/core/actor"
	"github.com/codewandler/actio-go/core/eff"
)

// run drives m on a fresh runtime and requires it to terminate.
func run[E, A any](t *testing.T, m eff.IO[E, A]) eff.Result[E, A] {
	t.Helper()
	rt := actor.NewRuntime(actor.Options{})
	r, done := actor.Exec(rt, m)
	require.True(t, done)
	return r
}

func TestReturn(t *testing.T) {
	r := run(t, eff.Return[string](42))
	v, ok := r.Success()
	require.True(t, ok)
	assert.Equal(t, 42, v)
}

func TestFail(t *testing.T) {
	r := run(t, eff.Fail[string, int]("boom"))
	e, failed := r.Failure()
	require.True(t, failed)
	assert.Equal(t, "boom", e)
}

func TestAndThen(t *testing.T) {
	m := eff.AndThen(eff.Return[string](2), func(a int) eff.IO[string, int] {
		return eff.Return[string](a * 3)
	})
	v, ok := run(t, m).Success()
	require.True(t, ok)
	assert.Equal(t, 6, v)
}

func TestAndThen_ShortCircuit(t *testing.T) {
	ran := false
	m := eff.AndThen(eff.Fail[string, int]("boom"), func(int) eff.IO[string, int] {
		ran = true
		return eff.Return[string](0)
	})
	e, failed := run(t, m).Failure()
	require.True(t, failed)
	assert.Equal(t, "boom", e)
	assert.False(t, ran)
}

func TestMap(t *testing.T) {
	m := eff.Map(eff.Return[string](21), func(a int) int { return a * 2 })
	v, _ := run(t, m).Success()
	assert.Equal(t, 42, v)

	// errors pass through
	r := run(t, eff.Map(eff.Fail[string, int]("e"), func(a int) int { return a }))
	assert.True(t, r.IsErr())
}

func TestRecover(t *testing.T) {
	m := eff.Recover(eff.Fail[string, int]("boom"), func(e string) eff.IO[int, int] {
		return eff.Return[int](len(e))
	})
	v, ok := run(t, m).Success()
	require.True(t, ok)
	assert.Equal(t, 4, v)

	// a success skips the handler
	ran := false
	n := eff.Recover(eff.Return[string](1), func(string) eff.IO[int, int] {
		ran = true
		return eff.Return[int](0)
	})
	v, _ = run(t, n).Success()
	assert.Equal(t, 1, v)
	assert.False(t, ran)
}

func TestMapError(t *testing.T) {
	m := eff.MapError(eff.Fail[string, int]("boom"), func(e string) int { return len(e) })
	e, failed := run(t, m).Failure()
	require.True(t, failed)
	assert.Equal(t, 4, e)
}

func TestThenKeep(t *testing.T) {
	v, _ := run(t, eff.Then(eff.Return[string]("x"), eff.Return[string](2))).Success()
	assert.Equal(t, 2, v)

	s, _ := run(t, eff.Keep(eff.Return[string]("x"), eff.Return[string](2))).Success()
	assert.Equal(t, "x", s)
}

// effect appends tag to log when run, then succeeds with v.
func effect[A any](log *[]string, tag string, v A) eff.IO[string, A] {
	return eff.Suspend(func(_ eff.Executor, k func(eff.Result[string, A])) {
		*log = append(*log, tag)
		k(eff.Ok[string](v))
	})
}

func TestMap2_SequentialLeftToRight(t *testing.T) {
	var log []string
	m := eff.Map2(
		func(a, b int) int { return a + b },
		effect(&log, "a", 1),
		effect(&log, "b", 2),
	)
	v, _ := run(t, m).Success()
	assert.Equal(t, 3, v)
	assert.Equal(t, []string{"a", "b"}, log)
}

func TestMap3Map4(t *testing.T) {
	var log []string
	m3 := eff.Map3(
		func(a, b, c int) int { return a + b + c },
		effect(&log, "a", 1), effect(&log, "b", 2), effect(&log, "c", 3),
	)
	v, _ := run(t, m3).Success()
	assert.Equal(t, 6, v)
	assert.Equal(t, []string{"a", "b", "c"}, log)

	log = nil
	m4 := eff.Map4(
		func(a, b, c, d int) int { return a + b + c + d },
		effect(&log, "a", 1), effect(&log, "b", 2), effect(&log, "c", 3), effect(&log, "d", 4),
	)
	v, _ = run(t, m4).Success()
	assert.Equal(t, 10, v)
	assert.Equal(t, []string{"a", "b", "c", "d"}, log)
}

func TestAndMap(t *testing.T) {
	mf := eff.Return[string](func(a int) int { return a + 1 })
	v, _ := run(t, eff.AndMap(mf, eff.Return[string](41))).Success()
	assert.Equal(t, 42, v)
}

func TestSequence(t *testing.T) {
	var log []string
	ms := []eff.IO[string, int]{
		effect(&log, "a", 1),
		effect(&log, "b", 2),
		effect(&log, "c", 3),
	}
	vs, ok := run(t, eff.Sequence(ms)).Success()
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 3}, vs)
	assert.Equal(t, []string{"a", "b", "c"}, log)
}

func TestSequence_ShortCircuit(t *testing.T) {
	var log []string
	ms := []eff.IO[string, int]{
		effect(&log, "a", 1),
		eff.Fail[string, int]("boom"),
		effect(&log, "c", 3),
	}
	e, failed := run(t, eff.Sequence(ms)).Failure()
	require.True(t, failed)
	assert.Equal(t, "boom", e)
	assert.Equal(t, []string{"a"}, log)
}

func TestSequence_Empty(t *testing.T) {
	vs, ok := run(t, eff.Sequence([]eff.IO[string, int]{})).Success()
	require.True(t, ok)
	assert.Empty(t, vs)
}

func TestBatch(t *testing.T) {
	var log []string
	ms := []eff.IO[string, int]{
		effect(&log, "a", 1),
		effect(&log, "b", 2),
	}
	r := run(t, eff.Batch(ms))
	assert.True(t, r.IsOk())
	assert.Equal(t, []string{"a", "b"}, log)

	r = run(t, eff.Batch([]eff.IO[string, int]{}))
	assert.True(t, r.IsOk())
}

func TestBatch_LongListHoldsConstantStack(t *testing.T) {
	n := 0
	ms := make([]eff.IO[string, eff.Unit], 200_000)
	for i := range ms {
		ms[i] = eff.Suspend(func(_ eff.Executor, k func(eff.Result[string, eff.Unit])) {
			n++
			k(eff.Ok[string](eff.UnitValue))
		})
	}
	r := run(t, eff.Batch(ms))
	require.True(t, r.IsOk())
	assert.Equal(t, 200_000, n)
}

func TestPrint(t *testing.T) {
	var out bytes.Buffer
	rt := actor.NewRuntime(actor.Options{Stdout: &out})
	r, done := actor.Exec(rt, eff.Print[string]("hello"))
	require.True(t, done)
	require.True(t, r.IsOk())
	assert.Equal(t, "hello\n", out.String())
}

func TestSleep(t *testing.T) {
	start := time.Now()
	r := run(t, eff.Sleep[string](20*time.Millisecond))
	require.True(t, r.IsOk())
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestSleep_Ordering(t *testing.T) {
	var log []string
	rt := actor.NewRuntime(actor.Options{})
	m := eff.Batch([]eff.IO[string, eff.Unit]{
		eff.Then(eff.Sleep[string](15*time.Millisecond), effect(&log, "slow", eff.UnitValue)),
	})
	rt.Enqueue(func() {
		eff.Then(eff.Sleep[string](1*time.Millisecond), effect(&log, "fast", eff.UnitValue))(rt, func(eff.Result[string, eff.Unit]) {})
	})
	_, done := actor.Exec(rt, m)
	require.True(t, done)
	assert.Equal(t, []string{"fast", "slow"}, log)
}

func TestYield(t *testing.T) {
	var log []string
	rt := actor.NewRuntime(actor.Options{})
	rt.Enqueue(func() {
		eff.Then(eff.Yield[string](), effect(&log, "yielded", eff.UnitValue))(rt, func(eff.Result[string, eff.Unit]) {})
	})
	rt.Enqueue(func() { log = append(log, "peer") })
	rt.Run()
	assert.Equal(t, []string{"peer", "yielded"}, log)
}

func TestExit(t *testing.T) {
	status := -100
	rt := actor.NewRuntime(actor.Options{
		Exit: func(s int) { status = s },
	})
	_, done := actor.Exec(rt, eff.Exit[string, int](3))
	assert.False(t, done)
	assert.Equal(t, 3, status)
}

func TestFromResult(t *testing.T) {
	v, ok := run(t, eff.FromResult(eff.Ok[string](5))).Success()
	require.True(t, ok)
	assert.Equal(t, 5, v)

	e, failed := run(t, eff.FromResult(eff.Err[string, int]("nope"))).Failure()
	require.True(t, failed)
	assert.Equal(t, "nope", e)
}

func TestAlgebraicLaws(t *testing.T) {
	io := eff.Return[string](10)

	// andThen(m, Return) behaves as m
	lhs, _ := run(t, eff.AndThen(io, eff.Return[string, int])).Success()
	rhs, _ := run(t, io).Success()
	assert.Equal(t, rhs, lhs)

	// recover never runs on success
	v, _ := run(t, eff.Recover(io, func(string) eff.IO[string, int] {
		t.Fatal("handler must not run")
		return io
	})).Success()
	assert.Equal(t, 10, v)

	// recover(h, fail(e)) behaves as h(e)
	e, _ := run(t, eff.Recover(eff.Fail[string, int]("e"), func(s string) eff.IO[string, int] {
		return eff.Return[string](len(s))
	})).Success()
	assert.Equal(t, 1, e)

	// map(f, m) behaves as andThen(m, x -> return f(x))
	double := func(x int) int { return x * 2 }
	m1, _ := run(t, eff.Map(io, double)).Success()
	m2, _ := run(t, eff.AndThen(io, func(x int) eff.IO[string, int] {
		return eff.Return[string](double(x))
	})).Success()
	assert.Equal(t, m2, m1)
}

func TestResultString(t *testing.T) {
	assert.Equal(t, "Ok(1)", eff.Ok[string](1).String())
	assert.Equal(t, "Err(boom)", eff.Err[string, int]("boom").String())
}

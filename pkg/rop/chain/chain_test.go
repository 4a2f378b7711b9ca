package chain

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/result/pkg/rop"
)

type person struct {
	FirstName string
	LastName  string
}

func TestStart_Result_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c := Start(ctx, rop.Success(10))
	if out := c.Result(); !out.IsSuccess() || out.String() != "10" {
		t.Fatalf("expected success with 10, got success=%v, res=%v", out.IsSuccess(), out)
	}
}

func TestFromValue_Success(t *testing.T) {
	t.Parallel()
	c := FromValue(context.Background(), 7)
	if out := c.Result(); !out.IsSuccess() || c.String() != "7" {
		t.Fatalf("expected success with 7, got success=%v, res=%v", out.IsSuccess(), out)
	}
}

func TestThen_ShortCircuitOnFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c := Start(ctx, rop.Fail[int](errors.New("boom")))
	called := false
	c2 := Then(c, func(ctx context.Context, v int) rop.Result[string] {
		called = true
		return rop.Success("ok")
	})
	if out := c2.Result(); out.IsSuccess() || out.String() != "boom" {
		t.Fatalf("expected failure 'boom', got success=%v res=%v", out.IsSuccess(), out)
	}
	if called {
		t.Fatalf("Then onSuccess must not be called on failure input")
	}
}

func TestThenTry_SuccessAndError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// success path
	c2 := ThenTry(FromValue(ctx, 3), func(ctx context.Context, v int) (string, error) {
		return "val_" + strconv.Itoa(v), nil
	})
	if out := c2.Result(); !out.IsSuccess() || out.String() != "val_3" {
		t.Fatalf("expected success 'val_3', got success=%v res=%v", out.IsSuccess(), out)
	}

	// error path
	c4 := ThenTry(FromValue(ctx, 9), func(ctx context.Context, v int) (string, error) {
		return "", errors.New("try-error")
	})
	if out := c4.Result(); out.IsSuccess() || out.String() != "try-error" {
		t.Fatalf("expected failure 'try-error', got success=%v res=%v", out.IsSuccess(), out)
	}

	// short-circuit on failure input
	c6 := ThenTry(Start(ctx, rop.Fail[int](errors.New("bad"))), func(ctx context.Context, v int) (string, error) {
		return "ignored", nil
	})
	if out := c6.Result(); out.IsSuccess() || out.String() != "bad" {
		t.Fatalf("expected failure 'bad', got success=%v res=%v", out.IsSuccess(), out)
	}
}

func TestMap_SuccessAndFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c2 := Map(FromValue(ctx, 5), func(ctx context.Context, v int) string { return "n:" + strconv.Itoa(v) })
	if out := c2.Result(); !out.IsSuccess() || out.String() != "n:5" {
		t.Fatalf("expected success 'n:5', got success=%v res=%v", out.IsSuccess(), out)
	}

	c4 := Map(Start(ctx, rop.Fail[int](errors.New("oops"))), func(ctx context.Context, v int) string { return "ignored" })
	if out := c4.Result(); out.IsSuccess() || out.String() != "oops" {
		t.Fatalf("expected failure 'oops', got success=%v res=%v", out.IsSuccess(), out)
	}
}

func TestMap_ChainedProjections(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	first := Map(FromValue(ctx, person{FirstName: "Joe", LastName: "Smith"}),
		func(_ context.Context, p person) string { return p.FirstName })
	arrow := Map(first, func(_ context.Context, x string) string { return x + " => " })
	wins := Map(arrow, func(_ context.Context, x string) string { return x + "Wins." })

	name := Finally(wins,
		func(_ context.Context, x string) string { return x },
		func(_ context.Context, err error) string { return err.Error() })
	if name != "Joe => Wins." {
		t.Fatalf("expected 'Joe => Wins.', got %q", name)
	}
}

func TestEnsure_SideEffectCalledOnSuccess(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	called := false
	c := FromValue(ctx, 11).Ensure(func(ctx context.Context, v int) { called = true })
	if out := c.Result(); !out.IsSuccess() || out.String() != "11" {
		t.Fatalf("expected success with 11, got success=%v res=%v", out.IsSuccess(), out)
	}
	if !called {
		t.Fatalf("expected Ensure to invoke onSuccess for success result")
	}

	// failure path should not call onSuccess
	called = false
	c2 := Start(ctx, rop.Fail[int](errors.New("x"))).Ensure(func(ctx context.Context, v int) { called = true })
	if out := c2.Result(); out.IsSuccess() || out.String() != "x" {
		t.Fatalf("expected failure 'x', got success=%v res=%v", out.IsSuccess(), out)
	}
	if called {
		t.Fatalf("Ensure onSuccess must not be called for failure result")
	}
}

func TestOnFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var got error
	FromValue(ctx, 1).OnFailure(func(_ context.Context, err error) { got = err })
	if got != nil {
		t.Fatalf("OnFailure must not be called for success result, got %v", got)
	}

	want := rop.NewError("bad")
	Start(ctx, rop.Fail[int](want)).OnFailure(func(_ context.Context, err error) { got = err })
	if !errors.Is(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestOr(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	failA := Start(ctx, rop.Fail[int](errors.New("a")))
	failB := Start(ctx, rop.Fail[int](errors.New("b")))
	ok := FromValue(ctx, 3)

	if got := failA.Or(failB, ok); got != ok {
		t.Fatalf("expected the successful alternative, got %v", got)
	}
	if got := failA.Or(failB); got != failA {
		t.Fatalf("expected the first failure, got %v", got)
	}
	if got := ok.Or(failA); got != ok {
		t.Fatalf("expected receiver when it succeeded, got %v", got)
	}
}

func TestAnd(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	one, two := FromValue(ctx, 1), FromValue(ctx, 2)
	fail := Start(ctx, rop.Fail[int](errors.New("f")))

	if got := one.And(two); got != two {
		t.Fatalf("expected the last chain, got %v", got)
	}
	if got := one.And(fail, two); got != fail {
		t.Fatalf("expected the failed chain, got %v", got)
	}
	if got := one.And(); got != one {
		t.Fatalf("expected the receiver, got %v", got)
	}
}

func TestFinally_SuccessFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	onSuccess := func(ctx context.Context, v int) string { return "ok" }
	onFailure := func(ctx context.Context, err error) string { return "fail" }

	if s := Finally(FromValue(ctx, 2), onSuccess, onFailure); s != "ok" {
		t.Fatalf("expected 'ok', got %q", s)
	}
	if s := Finally(Start(ctx, rop.Fail[int](errors.New("e"))), onSuccess, onFailure); s != "fail" {
		t.Fatalf("expected 'fail', got %q", s)
	}
}

type ctxKey struct{}

func TestSteps_ReceiveChainContext(t *testing.T) {
	t.Parallel()
	ctx := context.WithValue(context.Background(), ctxKey{}, "req-1")

	var seen []any
	record := func(ctx context.Context) { seen = append(seen, ctx.Value(ctxKey{})) }

	c := Then(FromValue(ctx, 2), func(ctx context.Context, v int) rop.Result[int] {
		record(ctx)
		return rop.Success(v + 1)
	})
	c2 := ThenTry(c, func(ctx context.Context, v int) (string, error) {
		record(ctx)
		return strconv.Itoa(v), nil
	})
	c3 := Map(c2, func(ctx context.Context, s string) string {
		record(ctx)
		return s + "!"
	})

	if c3.String() != "3!" {
		t.Fatalf("expected '3!', got %v", c3)
	}
	if len(seen) != 3 {
		t.Fatalf("expected 3 steps to run, got %d", len(seen))
	}
	for i, v := range seen {
		if v != "req-1" {
			t.Fatalf("step %d did not receive the chain context, got %v", i, v)
		}
	}
}

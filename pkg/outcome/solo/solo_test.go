package solo

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/outcome/pkg/outcome"
)

func TestMap_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	got := Map(ctx, Succeed[int, string](5),
		func(_ context.Context, v int) int { return v * 2 })

	if !got.Equals(outcome.Ok[int, string](10)) {
		t.Fatalf("expected Success(10), got %v", got)
	}
}

func TestMap_FailurePassesThrough(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	calls := 0
	in := outcome.Err[int, string]("bad")
	got := Map(ctx, in, func(_ context.Context, v int) int {
		calls++
		return v
	})

	if !got.Equals(outcome.Err[int, string]("bad")) {
		t.Fatalf("expected Failure(bad), got %v", got)
	}
	if calls != 0 {
		t.Fatalf("onSuccess should not run on failure, ran %d times", calls)
	}
}

func TestMap_ChangesType(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	got := Map(ctx, outcome.Ok[int, error](42),
		func(_ context.Context, v int) string { return strconv.Itoa(v) })

	if !got.IsSuccess() || got.Value() != "42" {
		t.Fatalf("expected Success(42), got %v", got)
	}
}

func TestBind_FlattensResult(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	got := Bind(ctx, outcome.Ok[int, string](5),
		func(_ context.Context, v int) outcome.Outcome[int, string] {
			return outcome.Ok[int, string](v + 1)
		})
	if !got.Equals(outcome.Ok[int, string](6)) {
		t.Fatalf("expected Success(6), got %v", got)
	}

	failed := Bind(ctx, outcome.Ok[int, string](5),
		func(_ context.Context, v int) outcome.Outcome[int, string] {
			return outcome.Err[int, string]("downstream")
		})
	if !failed.Equals(outcome.Err[int, string]("downstream")) {
		t.Fatalf("expected Failure(downstream), got %v", failed)
	}
}

func TestBind_ShortCircuit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	calls := 0
	got := Bind(ctx, Fail[int, string]("err"),
		func(_ context.Context, v int) outcome.Outcome[int, string] {
			calls++
			return outcome.Ok[int, string](v)
		})

	if !got.Equals(outcome.Err[int, string]("err")) {
		t.Fatalf("expected Failure(err), got %v", got)
	}
	if calls != 0 {
		t.Fatalf("onSuccess should not run on failure, ran %d times", calls)
	}
}

func TestMapError_TransformsFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	got := MapError(ctx, outcome.Err[int, error](errors.New("raw")),
		func(_ context.Context, e error) string { return "wrapped: " + e.Error() })

	if !got.Equals(outcome.Err[int, string]("wrapped: raw")) {
		t.Fatalf("expected Failure(wrapped: raw), got %v", got)
	}
}

func TestMapError_SuccessUntouched(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	calls := 0
	got := MapError(ctx, outcome.Ok[int, error](3),
		func(_ context.Context, e error) string {
			calls++
			return e.Error()
		})

	if !got.IsSuccess() || got.Value() != 3 {
		t.Fatalf("expected Success(3), got %v", got)
	}
	if calls != 0 {
		t.Fatalf("onFailure should not run on success, ran %d times", calls)
	}
}

func TestMatch_Totality(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	sCalls, fCalls := 0, 0
	onS := func(_ context.Context, v int) string { sCalls++; return "s:" + strconv.Itoa(v) }
	onF := func(_ context.Context, e string) string { fCalls++; return "f:" + e }

	if got := Match(ctx, outcome.Ok[int, string](7), onS, onF); got != "s:7" {
		t.Fatalf("expected s:7, got %q", got)
	}
	if sCalls != 1 || fCalls != 0 {
		t.Fatalf("expected exactly one success handler call, got s=%d f=%d", sCalls, fCalls)
	}

	sCalls, fCalls = 0, 0
	if got := Match(ctx, outcome.Err[int, string]("e"), onS, onF); got != "f:e" {
		t.Fatalf("expected f:e, got %q", got)
	}
	if sCalls != 0 || fCalls != 1 {
		t.Fatalf("expected exactly one failure handler call, got s=%d f=%d", sCalls, fCalls)
	}
}

func TestBindIf_TrueBranch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	got := BindIf(ctx, outcome.Ok[int, string](10),
		func(_ context.Context, v int) bool { return v > 5 },
		func(_ context.Context, v int) outcome.Outcome[int, string] {
			return outcome.Ok[int, string](v * 2)
		})

	if !got.Equals(outcome.Ok[int, string](20)) {
		t.Fatalf("expected Success(20), got %v", got)
	}
}

func TestBindIf_FalseBranchKeepsOriginal(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	contCalls := 0
	got := BindIf(ctx, outcome.Ok[int, string](3),
		func(_ context.Context, v int) bool { return v > 5 },
		func(_ context.Context, v int) outcome.Outcome[int, string] {
			contCalls++
			return outcome.Ok[int, string](v * 2)
		})

	if !got.Equals(outcome.Ok[int, string](3)) {
		t.Fatalf("expected Success(3), got %v", got)
	}
	if contCalls != 0 {
		t.Fatalf("continuation should not run when predicate is false, ran %d times", contCalls)
	}
}

func TestBindIf_FailureSkipsPredicate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	predCalls, contCalls := 0, 0
	got := BindIf(ctx, outcome.Err[int, string]("e"),
		func(_ context.Context, v int) bool { predCalls++; return true },
		func(_ context.Context, v int) outcome.Outcome[int, string] {
			contCalls++
			return outcome.Ok[int, string](v)
		})

	if !got.Equals(outcome.Err[int, string]("e")) {
		t.Fatalf("expected Failure(e), got %v", got)
	}
	if predCalls != 0 || contCalls != 0 {
		t.Fatalf("nothing should run on failure, got pred=%d cont=%d", predCalls, contCalls)
	}
}

func TestBindIf_ContinuationMayFail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	got := BindIf(ctx, outcome.Ok[int, string](10),
		func(_ context.Context, v int) bool { return true },
		func(_ context.Context, v int) outcome.Outcome[int, string] {
			return outcome.Err[int, string]("replaced")
		})

	if !got.Equals(outcome.Err[int, string]("replaced")) {
		t.Fatalf("continuation result should replace the chain outcome, got %v", got)
	}
}

func TestEnsure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	positive := func(_ context.Context, v int) bool { return v > 0 }
	onInvalid := func(_ context.Context, v int) string { return "not positive" }

	if got := Ensure(ctx, outcome.Ok[int, string](4), positive, onInvalid); !got.Equals(outcome.Ok[int, string](4)) {
		t.Fatalf("valid value should pass, got %v", got)
	}
	if got := Ensure(ctx, outcome.Ok[int, string](-1), positive, onInvalid); !got.Equals(outcome.Err[int, string]("not positive")) {
		t.Fatalf("invalid value should fail, got %v", got)
	}
	if got := Ensure(ctx, outcome.Err[int, string]("prior"), positive, onInvalid); !got.Equals(outcome.Err[int, string]("prior")) {
		t.Fatalf("failure should pass through, got %v", got)
	}
}

func TestTap_ObservesWithoutChanging(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var seen int
	in := outcome.Ok[int, string](5)
	got := Tap(ctx, in, func(_ context.Context, v int) { seen = v })

	if seen != 5 {
		t.Fatalf("expected action to see 5, saw %d", seen)
	}
	if !got.Equals(in) || got.ID() != in.ID() {
		t.Fatalf("Tap should return the original outcome unchanged")
	}

	calls := 0
	fail := outcome.Err[int, string]("e")
	got = Tap(ctx, fail, func(_ context.Context, v int) { calls++ })
	if calls != 0 || !got.Equals(fail) {
		t.Fatalf("Tap should not fire on failure")
	}
}

func TestTapError_ObservesFailureOnly(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var seen string
	fail := outcome.Err[int, string]("bad")
	got := TapError(ctx, fail, func(_ context.Context, e string) { seen = e })

	if seen != "bad" {
		t.Fatalf("expected action to see bad, saw %q", seen)
	}
	if !got.Equals(fail) || got.ID() != fail.ID() {
		t.Fatalf("TapError should return the original outcome unchanged")
	}

	calls := 0
	TapError(ctx, outcome.Ok[int, string](1), func(_ context.Context, e string) { calls++ })
	if calls != 0 {
		t.Fatalf("TapError should not fire on success")
	}
}

func TestDo_Exclusivity(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	sCalls, fCalls := 0, 0
	var seen int
	got := Do(ctx, outcome.Ok[int, string](5),
		func(_ context.Context, v int) { sCalls++; seen = v },
		func(_ context.Context, e string) { fCalls++ })

	if sCalls != 1 || fCalls != 0 || seen != 5 {
		t.Fatalf("expected onSuccess once with 5, got s=%d f=%d seen=%d", sCalls, fCalls, seen)
	}
	if !got.Equals(outcome.Ok[int, string](5)) {
		t.Fatalf("Do should return the original outcome, got %v", got)
	}

	sCalls, fCalls = 0, 0
	var seenErr string
	got = Do(ctx, outcome.Err[int, string]("e"),
		func(_ context.Context, v int) { sCalls++ },
		func(_ context.Context, e string) { fCalls++; seenErr = e })

	if sCalls != 0 || fCalls != 1 || seenErr != "e" {
		t.Fatalf("expected onFailure once with e, got s=%d f=%d seen=%q", sCalls, fCalls, seenErr)
	}
	if !got.Equals(outcome.Err[int, string]("e")) {
		t.Fatalf("Do should return the original outcome, got %v", got)
	}
}

package faults

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestClosedSetClassification(t *testing.T) {
	t.Parallel()

	var err error = &Network{Op: "dial", Err: errors.New("refused")}

	var netErr *Network
	if !errors.As(err, &netErr) || netErr.Op != "dial" {
		t.Fatalf("expected *Network with dial, got %v", err)
	}

	var timeoutErr *Timeout
	if errors.As(err, &timeoutErr) {
		t.Fatalf("network error should not match *Timeout")
	}
}

func TestUnwrap(t *testing.T) {
	t.Parallel()

	inner := errors.New("refused")
	err := &Network{Op: "dial", Err: inner}
	if !errors.Is(err, inner) {
		t.Fatalf("expected wrapped error to match")
	}

	parse := &Parse{Input: "x=", Err: inner}
	if !errors.Is(parse, inner) {
		t.Fatalf("expected wrapped parse error to match")
	}
}

func TestTimeoutError(t *testing.T) {
	t.Parallel()

	err := &Timeout{Op: "fetch", After: 2 * time.Second}
	if err.Error() != "timeout: fetch after 2s" {
		t.Fatalf("unexpected rendering: %q", err.Error())
	}
}

func TestFromPanic(t *testing.T) {
	t.Parallel()

	p := FromPanic("boom")
	if p.Value != "boom" || len(p.Stack) == 0 {
		t.Fatalf("expected captured value and stack, got %+v", p)
	}

	// Re-panicked values keep their original capture.
	if again := FromPanic(p); again != p {
		t.Fatalf("expected the same *Panic back")
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	if _, ok := Classify("op", context.DeadlineExceeded).(*Timeout); !ok {
		t.Fatalf("deadline errors should classify as *Timeout")
	}
	if _, ok := Classify("op", context.Canceled).(*Timeout); !ok {
		t.Fatalf("cancellation should classify as *Timeout")
	}

	plain := errors.New("other")
	if got := Classify("op", plain); got != plain {
		t.Fatalf("other errors should pass through, got %v", got)
	}
}

package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"dynamic_shipping/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func testPolicy(slept *[]time.Duration) retryPolicy {
	return retryPolicy{
		attempts:       3,
		baseDelay:      time.Millisecond,
		attemptTimeout: 50 * time.Millisecond,
		sleep: func(d time.Duration) {
			*slept = append(*slept, d)
		},
	}
}

func TestRetryPolicy_ExhaustionSurfacesUnavailable(t *testing.T) {
	var slept []time.Duration
	p := testPolicy(&slept)

	calls := 0
	err := p.do(context.Background(), func(ctx context.Context) error {
		calls++
		return errors.New("connection reset")
	})

	if calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", calls)
	}
	if !errors.Is(err, interfaces.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestRetryPolicy_LinearBackoff(t *testing.T) {
	var slept []time.Duration
	p := testPolicy(&slept)

	_ = p.do(context.Background(), func(ctx context.Context) error {
		return errors.New("timeout")
	})

	// attempt x base delay, no sleep after the last attempt
	want := []time.Duration{1 * time.Millisecond, 2 * time.Millisecond}
	if len(slept) != len(want) {
		t.Fatalf("expected %d sleeps, got %d", len(want), len(slept))
	}
	for i := range want {
		if slept[i] != want[i] {
			t.Fatalf("sleep %d: expected %v, got %v", i, want[i], slept[i])
		}
	}
}

func TestRetryPolicy_SucceedsMidway(t *testing.T) {
	var slept []time.Duration
	p := testPolicy(&slept)

	calls := 0
	err := p.do(context.Background(), func(ctx context.Context) error {
		calls++
		if calls < 2 {
			return errors.New("timeout")
		}
		return nil
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected 2 attempts, got %d", calls)
	}
}

func TestRetryPolicy_ConstraintRejectionsNotRetried(t *testing.T) {
	var slept []time.Duration
	p := testPolicy(&slept)

	calls := 0
	condErr := &types.ConditionalCheckFailedException{}
	err := p.do(context.Background(), func(ctx context.Context) error {
		calls++
		return condErr
	})

	if calls != 1 {
		t.Fatalf("expected a single attempt, got %d", calls)
	}
	var got *types.ConditionalCheckFailedException
	if !errors.As(err, &got) {
		t.Fatalf("expected conditional check error, got %v", err)
	}
	if errors.Is(err, interfaces.ErrUnavailable) {
		t.Fatalf("constraint rejection must not map to ErrUnavailable")
	}
}

func TestRetryPolicy_AttemptDeadline(t *testing.T) {
	var slept []time.Duration
	p := testPolicy(&slept)

	err := p.do(context.Background(), func(ctx context.Context) error {
		if _, ok := ctx.Deadline(); !ok {
			t.Fatalf("expected a per-attempt deadline")
		}
		<-ctx.Done()
		return ctx.Err()
	})

	if !errors.Is(err, interfaces.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable after timeouts, got %v", err)
	}
}

func TestRetryPolicy_DeadParentContextStopsRetrying(t *testing.T) {
	var slept []time.Duration
	p := testPolicy(&slept)

	parent, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	calls := 0
	err := p.do(parent, func(ctx context.Context) error {
		calls++
		return ctx.Err()
	})

	if calls != 1 {
		t.Fatalf("expected a single attempt against a dead parent, got %d", calls)
	}
	if len(slept) != 0 {
		t.Fatalf("expected no backoff sleeps, got %v", slept)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected DeadlineExceeded, got %v", err)
	}
	if errors.Is(err, interfaces.ErrUnavailable) {
		t.Fatalf("a dead caller context must not map to ErrUnavailable")
	}
}

func TestTransactionConditionFailed(t *testing.T) {
	code := "ConditionalCheckFailed"
	tx := &types.TransactionCanceledException{
		CancellationReasons: []types.CancellationReason{{Code: &code}},
	}
	if !transactionConditionFailed(tx) {
		t.Fatalf("expected condition failure to be detected")
	}

	other := "TransactionConflict"
	tx2 := &types.TransactionCanceledException{
		CancellationReasons: []types.CancellationReason{{Code: &other}},
	}
	if transactionConditionFailed(tx2) {
		t.Fatalf("unexpected condition failure for %s", other)
	}
	if transactionConditionFailed(errors.New("plain")) {
		t.Fatalf("plain errors are not transaction cancellations")
	}
}

package repository

import (
	"context"
	"errors"
	"os"
	"strconv"
	"time"

	"dynamic_shipping/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// retryPolicy is the transport retry applied uniformly to outbound DynamoDB
// calls: a fixed number of attempts with linear backoff (attempt x base
// delay) and a per-attempt deadline. Exhaustion surfaces ErrUnavailable.
//
// Constraint rejections (conditional check / transaction cancellation) are
// answers from the backend, not transport failures, and are never retried.

type retryPolicy struct {
	attempts       int
	baseDelay      time.Duration
	attemptTimeout time.Duration
	sleep          func(time.Duration)
}

func defaultRetryPolicy() retryPolicy {
	return retryPolicy{
		attempts:       3,
		baseDelay:      time.Second,
		attemptTimeout: 15 * time.Second,
		sleep:          time.Sleep,
	}
}

func (p retryPolicy) do(ctx context.Context, op func(ctx context.Context) error) error {
	var lastErr error
	for attempt := 1; attempt <= p.attempts; attempt++ {
		attemptCtx, cancel := context.WithTimeout(ctx, p.attemptTimeout)
		err := op(attemptCtx)
		cancel()
		if err == nil {
			return nil
		}
		if !isRetryable(err) {
			return err
		}
		// The attempt deadline is retryable; an expired parent context is not.
		if ctx.Err() != nil {
			return err
		}
		lastErr = err
		if attempt < p.attempts {
			p.sleep(time.Duration(attempt) * p.baseDelay)
		}
	}
	return errors.Join(interfaces.ErrUnavailable, lastErr)
}

func isRetryable(err error) bool {
	var condFailed *types.ConditionalCheckFailedException
	var txCancelled *types.TransactionCanceledException
	if errors.As(err, &condFailed) || errors.As(err, &txCancelled) {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	return true
}

// transactionConditionFailed reports whether a cancelled transaction was
// rejected by one of its condition expressions.
func transactionConditionFailed(err error) bool {
	var txCancelled *types.TransactionCanceledException
	if !errors.As(err, &txCancelled) {
		return false
	}
	for _, reason := range txCancelled.CancellationReasons {
		if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
			return true
		}
	}
	return false
}

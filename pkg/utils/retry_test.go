package utils_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront-order-service/pkg/utils"
	"github.com/stretchr/testify/assert"
)

func TestRetry(t *testing.T) {
	errTemporary := errors.New("temporary")
	errPermanent := errors.New("permanent")

	testCases := []struct {
		name         string
		failures     []error
		nonRetryable []error
		wantCalls    int
		wantErr      error
	}{
		{name: "first attempt succeeds", wantCalls: 1},
		{name: "succeeds after retries", failures: []error{errTemporary, errTemporary}, wantCalls: 3},
		{
			name:      "attempts exhausted",
			failures:  []error{errTemporary, errTemporary, errTemporary, errTemporary},
			wantCalls: 3,
			wantErr:   errTemporary,
		},
		{
			name:         "non retryable stops immediately",
			failures:     []error{errPermanent},
			nonRetryable: []error{errPermanent},
			wantCalls:    1,
			wantErr:      errPermanent,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			calls := 0
			fn := func() error {
				calls++
				if calls <= len(tc.failures) {
					return tc.failures[calls-1]
				}
				return nil
			}

			cfg := utils.RetryConfig{MaxAttempts: 3, InitialDelay: time.Millisecond}
			err := utils.Retry(context.Background(), cfg, fn, tc.nonRetryable...)

			assert.Equal(t, tc.wantCalls, calls)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRetry_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := utils.Retry(ctx, utils.RetryConfig{MaxAttempts: 5, InitialDelay: time.Second}, func() error {
		calls++
		return errors.New("db down")
	})

	assert.Equal(t, 1, calls)
	assert.ErrorIs(t, err, context.Canceled)
}

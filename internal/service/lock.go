package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bsm/redislock"
)

const (
	uploadLockTTL = 30 * time.Second
	// Retry briefly before giving up: concurrent uploads for the same user
	// are rare and usually finish within a few seconds.
	uploadLockRetryEvery = 250 * time.Millisecond
	uploadLockRetryMax   = 20
)

// lockUser serializes uploads per user. Two concurrent batches decrementing
// the same product would otherwise both pass the non-negative check against a
// stale snapshot; the row locks inside the transaction are the backstop, the
// advisory lock keeps the second upload from even starting.
//
// A nil locker (unit tests, single-process deployments without Redis) yields a
// no-op release.
func lockUser(ctx context.Context, locker *redislock.Client, userID uint) (release func(), err error) {
	if locker == nil {
		return func() {}, nil
	}
	key := fmt.Sprintf("upload:user:%d", userID)
	lock, err := locker.Obtain(ctx, key, uploadLockTTL, &redislock.Options{
		RetryStrategy: redislock.LimitRetry(
			redislock.LinearBackoff(uploadLockRetryEvery), uploadLockRetryMax),
	})
	if errors.Is(err, redislock.ErrNotObtained) {
		return nil, ErrUploadInProgress
	}
	if err != nil {
		return nil, err
	}
	return func() { _ = lock.Release(context.WithoutCancel(ctx)) }, nil
}

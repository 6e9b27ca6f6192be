package worker

// retry_cron.go
// Background goroutine that periodically drains the OTP dead letter queue and
// requeues entries for another delivery attempt once the SMS gateway circuit
// breaker has recovered. Entries that exceed the attempt cap stay dead.

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/Sanjitha0510/Retail-customer-analytics/internal/infra"
)

const (
	retryTickInterval = 30 * time.Second
	retryBatchSize    = 10

	// MaxDeliveryAttempts caps requeues from the DLQ. After this many failed
	// delivery rounds the entry stays in the DLQ for manual inspection.
	MaxDeliveryAttempts = 3
)

// RetryCronConfig holds all dependencies for the retry goroutine.
type RetryCronConfig struct {
	RDB        *redis.Client
	Dispatcher *Dispatcher
	CB         *infra.CircuitBreaker
}

// StartRetryCron launches a background goroutine that ticks every 30s and
// requeues DLQ'd OTP jobs through the dispatcher. It respects the context
// for graceful shutdown.
func StartRetryCron(ctx context.Context, cfg RetryCronConfig) {
	go func() {
		ticker := time.NewTicker(retryTickInterval)
		defer ticker.Stop()

		log.Info().Msg("retry_cron: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("retry_cron: shutting down")
				return
			case <-ticker.C:
				processRetries(ctx, cfg)
			}
		}
	}()
}

func processRetries(ctx context.Context, cfg RetryCronConfig) {
	// If CB is open the fallback channel is still down — don't churn the queue
	if cfg.CB.State() == infra.CBOpen {
		log.Debug().Msg("retry_cron: circuit breaker is open, skipping tick")
		return
	}

	dlqKey := DLQPrefix + QueueOTP
	for i := 0; i < retryBatchSize; i++ {
		raw, err := cfg.RDB.RPop(ctx, dlqKey).Result()
		if err == redis.Nil {
			return
		}
		if err != nil {
			log.Error().Err(err).Msg("retry_cron: failed to pop DLQ entry")
			return
		}

		var entry DLQEntry
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			log.Error().Err(err).Msg("retry_cron: corrupt DLQ entry, discarding")
			continue
		}

		if entry.Attempts >= MaxDeliveryAttempts {
			// Put it back at the head so inspection order is preserved
			_ = cfg.RDB.LPush(ctx, dlqKey, raw).Err()
			log.Warn().
				Str("job_type", entry.JobType).
				Int("attempts", entry.Attempts).
				Msg("retry_cron: max delivery attempts exceeded, leaving in DLQ")
			continue
		}

		var payload OTPJobPayload
		if err := json.Unmarshal(entry.Payload, &payload); err != nil {
			log.Error().Err(err).Msg("retry_cron: corrupt OTP payload, discarding")
			continue
		}

		if err := cfg.Dispatcher.EnqueueOTP(ctx, payload); err != nil {
			log.Error().Err(err).Msg("retry_cron: requeue failed, returning entry to DLQ")
			_ = cfg.RDB.LPush(ctx, dlqKey, raw).Err()
			return
		}

		log.Info().
			Str("email", payload.Email).
			Int("attempts", entry.Attempts).
			Msg("retry_cron: OTP job requeued from DLQ")
	}
}

package worker

// otp_worker.go
// Processes OTP delivery jobs from QueueOTP.
// Email is the primary channel; when SMTP fails after all retries the worker
// falls back to the SMS gateway (guarded by a circuit breaker) if the user
// registered with a phone number. Jobs that fail on both channels go to the DLQ.

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/Sanjitha0510/Retail-customer-analytics/internal/infra"
)

const maxOTPSendAttempts = 3

// OTPJobPayload is the job envelope sent to QueueOTP.
type OTPJobPayload struct {
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Code     string `json:"code"`
	Attempts int    `json:"attempts,omitempty"`
}

// OTPWorker delivers verification codes to freshly registered users.
type OTPWorker struct {
	mailer *infra.Mailer
	sms    *infra.SMSClient
	cb     *infra.CircuitBreaker
	rdb    *redis.Client
}

// NewOTPWorker wires all dependencies for the OTP delivery worker.
func NewOTPWorker(mailer *infra.Mailer, sms *infra.SMSClient, cb *infra.CircuitBreaker, rdb *redis.Client) *OTPWorker {
	return &OTPWorker{mailer: mailer, sms: sms, cb: cb, rdb: rdb}
}

// Process handles a single OTP delivery job:
//  1. Parse OTPJobPayload from the job envelope
//  2. Send the code by email with exponential backoff (max 3 attempts)
//  3. On email failure, fall back to SMS through the circuit breaker
//  4. If both channels fail, move the job to the DLQ
func (w *OTPWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload OTPJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("otp_worker: invalid payload")
		return
	}
	if payload.Email == "" {
		log.Warn().Msg("otp_worker: empty email — skipping")
		return
	}

	emailErr := withRetry(ctx, maxOTPSendAttempts, func(attempt int) error {
		if err := w.mailer.SendOTP(payload.Email, payload.Code); err != nil {
			log.Warn().
				Err(err).
				Int("attempt", attempt+1).
				Str("email", payload.Email).
				Msg("otp_worker: email attempt failed, retrying")
			return err
		}
		return nil
	})
	if emailErr == nil {
		log.Info().Str("email", payload.Email).Msg("otp_worker: OTP sent by email")
		return
	}

	log.Error().Err(emailErr).Str("email", payload.Email).Msg("otp_worker: email failed after all retries")

	if payload.Phone == "" || w.sms == nil {
		w.toDLQ(ctx, payload, fmt.Sprintf("email failed, no SMS fallback: %v", emailErr))
		return
	}

	// Fallback channel — the CB fast-fails when the gateway has been down
	message := fmt.Sprintf("Your OTP for registration is: %s", payload.Code)
	cbErr := w.cb.Execute(func() error {
		_, err := w.sms.Send(ctx, payload.Phone, message)
		return err
	})
	if cbErr != nil {
		log.Error().Err(cbErr).Str("phone", payload.Phone).Msg("otp_worker: SMS fallback failed")
		w.toDLQ(ctx, payload, fmt.Sprintf("email and SMS both failed: %v / %v", emailErr, cbErr))
		return
	}

	log.Info().Str("phone", payload.Phone).Msg("otp_worker: OTP sent by SMS fallback")
}

func (w *OTPWorker) toDLQ(ctx context.Context, payload OTPJobPayload, reason string) {
	payload.Attempts++
	data, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Msg("otp_worker: marshal for DLQ")
		return
	}
	SendToDLQ(ctx, w.rdb, QueueOTP, "otp", data, reason, payload.Attempts)
}

// withRetry calls fn up to maxAttempts times with exponential backoff.
// Backoff schedule: attempt 1 = immediate, 2 = 1s, 3 = 2s.
// Returns nil if any attempt succeeds; last error otherwise.
func withRetry(ctx context.Context, maxAttempts int, fn func(attempt int) error) error {
	var lastErr error
	for i := 0; i < maxAttempts; i++ {
		if i > 0 {
			wait := time.Duration(1<<uint(i-1)) * time.Second
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
		}
		if err := fn(i); err != nil {
			lastErr = err
			continue
		}
		return nil
	}
	return lastErr
}

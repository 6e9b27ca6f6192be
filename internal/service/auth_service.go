package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Sanjitha0510/Retail-customer-analytics/internal/config"
	"github.com/Sanjitha0510/Retail-customer-analytics/internal/dto"
	"github.com/Sanjitha0510/Retail-customer-analytics/internal/middleware"
	"github.com/Sanjitha0510/Retail-customer-analytics/internal/model"
	"github.com/Sanjitha0510/Retail-customer-analytics/internal/repository"
	"github.com/Sanjitha0510/Retail-customer-analytics/internal/worker"
)

type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.RegisterResponse, error)
	VerifyOTP(ctx context.Context, req dto.VerifyOTPRequest) error
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	repo       repository.UserRepository
	dispatcher *worker.Dispatcher
	cfg        *config.Config
}

func NewAuthService(repo repository.UserRepository, dispatcher *worker.Dispatcher, cfg *config.Config) AuthService {
	return &authService{repo: repo, dispatcher: dispatcher, cfg: cfg}
}

// Register creates an unverified account and enqueues async OTP delivery.
// The account cannot log in until VerifyOTP succeeds.
func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.RegisterResponse, error) {
	exists, err := s.repo.ExistsByEmailOrPhone(ctx, req.Email, req.Phone)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAccountExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	code, err := generateOTP()
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: string(hash),
		OTP:          &code,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		job := worker.OTPJobPayload{Email: req.Email, Phone: req.Phone, Code: code}
		if err := s.dispatcher.EnqueueOTP(ctx, job); err != nil {
			// Account exists either way; the retry cron can re-deliver
			log.Error().Err(err).Str("email", req.Email).Msg("auth: failed to enqueue OTP job")
		}
	}

	return &dto.RegisterResponse{Message: "OTP sent to your email"}, nil
}

// VerifyOTP activates the account on a code match. A mismatch deletes the
// pending registration entirely, so the user must register again.
func (s *authService) VerifyOTP(ctx context.Context, req dto.VerifyOTPRequest) error {
	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidCredentials
		}
		return err
	}
	if user.Verified {
		return nil // already verified, idempotent
	}
	if user.OTP == nil || *user.OTP != req.OTP {
		if delErr := s.repo.DeleteUnverified(ctx, req.Email); delErr != nil {
			log.Error().Err(delErr).Str("email", req.Email).Msg("auth: failed to delete unverified account")
		}
		return ErrInvalidOTP
	}
	return s.repo.MarkVerified(ctx, user.ID)
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.Verified {
		return nil, ErrNotVerified
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Message: "Login successful",
		Token:   token,
		UserID:  user.ID,
	}, nil
}

func (s *authService) generateToken(user *model.User) (string, error) {
	claims := middleware.JWTClaims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// generateOTP returns a 6-digit code using crypto/rand.
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

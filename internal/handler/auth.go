package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sanjitha0510/Retail-customer-analytics/internal/apierror"
	"github.com/Sanjitha0510/Retail-customer-analytics/internal/dto"
	"github.com/Sanjitha0510/Retail-customer-analytics/internal/service"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Register godoc
// @Summary Register a new account
// @Description Creates an unverified account and sends a 6-digit OTP by email (SMS fallback).
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.RegisterRequest true "Account details"
// @Success 201 {object} dto.RegisterResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrAccountExists) {
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("registration failed"))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// VerifyOTP godoc
// @Summary Verify the registration OTP
// @Description Activates the account on a code match; a mismatch cancels the registration.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.VerifyOTPRequest true "Email and code"
// @Success 200 {object} dto.RegisterResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/auth/verify-otp [post]
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req dto.VerifyOTPRequest
	if !bindAndValidate(c, &req) {
		return
	}

	if err := h.svc.VerifyOTP(c.Request.Context(), req); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidOTP), errors.Is(err, service.ErrInvalidCredentials):
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, apierror.New("verification failed"))
		}
		return
	}
	c.JSON(http.StatusOK, dto.RegisterResponse{Message: "Account verified"})
}

// Login godoc
// @Summary Login
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} apierror.APIError
// @Failure 403 {object} apierror.APIError
// @Router /v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotVerified):
			c.JSON(http.StatusForbidden, apierror.New(err.Error()))
		case errors.Is(err, service.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, apierror.New(err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, apierror.New("login failed"))
		}
		return
	}
	c.JSON(http.StatusOK, resp)
}

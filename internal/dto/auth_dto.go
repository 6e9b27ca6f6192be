package dto

type RegisterRequest struct {
	Name     string `json:"name" binding:"required" validate:"required,min=2"`
	Email    string `json:"email" binding:"required" validate:"required,email"`
	Phone    string `json:"phone" binding:"required" validate:"required,min=7"`
	Password string `json:"password" binding:"required" validate:"required,min=8"`
}

type RegisterResponse struct {
	Message string `json:"message"`
}

type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required" validate:"required,email"`
	OTP   string `json:"otp" binding:"required" validate:"required,len=6,numeric"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required" validate:"required,email"`
	Password string `json:"password" binding:"required" validate:"required"`
}

type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	UserID  uint   `json:"userId"`
}

package dto

import "time"

// JoinRequest entrada para registro de cuenta (password en texto, se hashea en el use case).
type JoinRequest struct {
	Email       string `json:"email" validate:"required,email,max=100"`
	Password    string `json:"password" validate:"required,min=8,max=72"`
	UserName    string `json:"userName" validate:"required,min=1,max=50"`
	PhoneNumber string `json:"phoneNumber" validate:"required,min=9,max=20"`
	Gender      string `json:"gender" validate:"required,oneof=MALE FEMALE"`
	Birth       string `json:"birth" validate:"required,datetime=2006-01-02"`
}

// JoinResponse salida del registro.
type JoinResponse struct {
	Message string `json:"message"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token   string            `json:"token"`
	Account MyProfileResponse `json:"account"`
}

// UpdateMyProfileRequest campos editables del perfil.
type UpdateMyProfileRequest struct {
	UserName    string `json:"userName" validate:"required,min=1,max=50"`
	PhoneNumber string `json:"phoneNumber" validate:"required,min=9,max=20"`
	Gender      string `json:"gender" validate:"required,oneof=MALE FEMALE"`
	Birth       string `json:"birth" validate:"required,datetime=2006-01-02"`
}

// MyProfileResponse salida de una cuenta (sin password).
type MyProfileResponse struct {
	AccountID   int64     `json:"accountId"`
	Email       string    `json:"email"`
	UserName    string    `json:"userName"`
	PhoneNumber string    `json:"phoneNumber"`
	Gender      string    `json:"gender"`
	Birth       string    `json:"birth"`
	Roles       string    `json:"roles"`
	State       string    `json:"state"`
	CreatedAt   time.Time `json:"createdAt"`
}

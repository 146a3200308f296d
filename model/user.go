package model

import "time"

type User struct {
	DTO
	Email    string `gorm:"type:varchar(255);not null;unique" validate:"required,email" json:"email"`
	Password string `gorm:"not null" json:"-"`
	FullName string `gorm:"size:255" json:"fullName"`
	Role     string `gorm:"not null;default:'USER'" json:"role"`
	Active   bool   `gorm:"not null;default:true" json:"active"`
}

type RegisterUserInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"fullName" validate:"omitempty,max=255"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}

type PasswordResetToken struct {
	DTO
	UserId    uint      `gorm:"not null" json:"userId"`
	Token     string    `gorm:"type:varchar(255);not null;unique" json:"token"`
	ExpiresAt time.Time `gorm:"not null" json:"expiresAt"`
	User      User      `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE" json:"-"`
}

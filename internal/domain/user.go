package domain

import "time"

type UserRole string

const (
	RoleUser     UserRole = "USER"
	RoleProvider UserRole = "PROVIDER"
	RoleAdmin    UserRole = "ADMIN"
)

type User struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex" validate:"required,email"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Owner é o único usuário da instalação, dono da loja
type Owner struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Claims struct {
	OwnerID    int
	OwnerName  string
	OwnerEmail string
	jwt.RegisteredClaims
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	Confirmation    string `json:"confirmation"`
}

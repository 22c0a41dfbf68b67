package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type User struct {
	ID           string     `json:"id"`
	ClinicID     string     `json:"clinic_id"`
	Name         string     `json:"name"`
	Lastname     string     `json:"lastname"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         string     `json:"role"`
	Active       bool       `json:"active"`
	Deleted      bool       `json:"deleted"`
	DeletedAt    *time.Time `json:"deleted_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type UpdateUserRequest struct {
	ID       string  `json:"id"`
	Name     *string `json:"name"`
	Lastname *string `json:"lastname"`
	Email    *string `json:"email"`
	Role     *string `json:"role"`
	Active   *bool   `json:"active"`
	Deleted  *bool   `json:"deleted"`
}

// Claims viaja en el JWT. ClinicID delimita el inquilino de cada request:
// ningún handler consulta datos fuera de la clínica de los claims.
type Claims struct {
	UserID       string
	UserName     string
	UserLastname string
	UserEmail    string
	UserActive   bool
	UserRole     string
	ClinicID     string
	jwt.RegisteredClaims
}

package authenticating

import (
	"errors"
	"fmt"
)

// Errores de autenticación del dominio
var (
	ErrInvalidCredentials    = errors.New("credenciales inválidas")
	ErrUserDisabled          = errors.New("usuario desactivado")
	ErrUserNotFound          = errors.New("usuario no encontrado")
	ErrInvalidToken          = errors.New("token inválido")
	ErrExpiredToken          = errors.New("token expirado")
	ErrInsufficientPrivilege = errors.New("privilegios insuficientes")
	ErrUserAlreadyExists     = errors.New("usuario ya existe")

	// Errores de validación
	ErrInvalidRequest      = errors.New("petición inválida")
	ErrMissingRequiredData = errors.New("datos obligatorios ausentes")

	// Errores relacionados con contraseñas
	ErrWeakPassword      = errors.New("contraseña débil")
	ErrSamePassword      = errors.New("la contraseña nueva debe ser distinta de la actual")
	ErrNoAdminPrivileges = errors.New("solo administradores pueden realizar esta acción")

	// Errores de base de datos
	ErrDatabaseOperation = errors.New("error al realizar la operación en la base de datos")
)

// AuthError es un error con contexto adicional de autenticación
type AuthError struct {
	Err     error  // Error base
	Code    string // Código de error para la API
	UserID  string // ID del usuario involucrado (cuando aplica)
	Details string // Detalles adicionales
}

func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// IsCredentialsError verifica si el error está relacionado con credenciales
func IsCredentialsError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrUserDisabled)
}

// IsAuthorizationError verifica si el error es de autorización
func IsAuthorizationError(err error) bool {
	return errors.Is(err, ErrInsufficientPrivilege) ||
		errors.Is(err, ErrInvalidToken) ||
		errors.Is(err, ErrExpiredToken) ||
		errors.Is(err, ErrNoAdminPrivileges)
}

// NewAuthError crea un nuevo error de autenticación
func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

// NewUserAuthError crea un error de autenticación con contexto de usuario
func NewUserAuthError(baseErr error, code string, userID string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		UserID:  userID,
		Details: details,
	}
}

package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Karasowl/laralis-sub007/internal/domain"
	"github.com/Karasowl/laralis-sub007/internal/usecases/authenticating"
	"github.com/Karasowl/laralis-sub007/pkg/apiErrors"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterClinicRequest struct {
	ClinicName string `json:"clinic_name"`
	Name       string `json:"name"`
	Lastname   string `json:"lastname"`
	Email      string `json:"email"`
	Password   string `json:"password"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if !decodeBody(w, r, &req) {
			return
		}

		token, err := service.LoginUser(req.Email, req.Password)
		if err != nil {
			handleLoginError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, map[string]string{"token": token})
	}
}

// RegisterClinic da de alta una clínica nueva con su usuario administrador.
// Es la única ruta de escritura abierta sin token.
func RegisterClinic(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterClinicRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if req.ClinicName == "" || req.Email == "" || req.Password == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nombre de clínica, email y contraseña son obligatorios", nil)
			return
		}

		if err := service.ValidatePasswordStrength(req.Password); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		admin, err := service.RegisterClinic(req.ClinicName, &domain.User{
			Name:         req.Name,
			Lastname:     req.Lastname,
			Email:        req.Email,
			PasswordHash: req.Password,
		})
		if err != nil {
			logrus.WithError(err).Error("Error al registrar clínica")
			if errors.Is(err, authenticating.ErrUserAlreadyExists) {
				apiErrors.WriteError(w, apiErrors.ErrUserAlreadyExists, "Ya existe un usuario con ese email", nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al registrar la clínica", nil)
			return
		}

		respondJSON(w, http.StatusCreated, admin)
	}
}

// GetMe devuelve el perfil del usuario autenticado
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		user, err := service.GetUserProfile(claims.UserID)
		if err != nil {
			logrus.WithError(err).Error("Error al obtener el perfil del usuario")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al obtener datos del usuario", nil)
			return
		}
		if user == nil {
			apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Usuario no encontrado", nil)
			return
		}

		respondJSON(w, http.StatusOK, user)
	}
}

// ChangePassword permite al usuario autenticado cambiar su propia contraseña
func ChangePassword(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		targetUserID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if targetUserID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID del usuario no proporcionado", nil)
			return
		}

		claims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		if claims.UserID != targetUserID {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "No puedes cambiar la contraseña de otro usuario", nil)
			return
		}

		var req ChangePasswordRequest
		if !decodeBody(w, r, &req) {
			return
		}

		err := service.ChangePassword(targetUserID, req.CurrentPassword, req.NewPassword)
		if err != nil {
			logrus.WithError(err).Warn("Error al cambiar contraseña")
			switch {
			case errors.Is(err, authenticating.ErrUserNotFound):
				apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Usuario no encontrado", nil)
			case errors.Is(err, authenticating.ErrInvalidCredentials):
				apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Contraseña actual incorrecta", nil)
			case errors.Is(err, authenticating.ErrWeakPassword), errors.Is(err, authenticating.ErrSamePassword):
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			default:
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al cambiar la contraseña", nil)
			}
			return
		}

		respondJSON(w, http.StatusOK, nil)
	}
}

// handleLoginError traduce los errores de login a respuestas de la API
func handleLoginError(w http.ResponseWriter, err error) {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), map[string]any{
			"user_id": authErr.UserID,
		})
		return
	}

	switch {
	case errors.Is(err, authenticating.ErrInvalidCredentials):
		apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Credenciales inválidas", nil)

	case errors.Is(err, authenticating.ErrUserDisabled):
		apiErrors.WriteError(w, apiErrors.ErrUserDisabled, "Usuario desactivado", nil)

	case errors.Is(err, authenticating.ErrUserNotFound):
		apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Usuario no encontrado", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error interno al iniciar sesión", nil)
	}
}

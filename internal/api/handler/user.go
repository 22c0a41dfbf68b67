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

type CreateUserRequest struct {
	Name     string `json:"name"`
	Lastname string `json:"lastname"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// ListUsers lista los usuarios de la clínica del solicitante
func ListUsers(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		users, err := service.ListUsers(claims.ClinicID)
		if err != nil {
			logrus.WithError(err).Error("Error al listar usuarios")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al listar usuarios", nil)
			return
		}

		respondJSON(w, http.StatusOK, users)
	}
}

// CreateUser da de alta un usuario en la clínica del administrador
func CreateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		var req CreateUserRequest
		if !decodeBody(w, r, &req) {
			return
		}

		user, err := service.CreateUser(claims, &domain.User{
			Name:         req.Name,
			Lastname:     req.Lastname,
			Email:        req.Email,
			PasswordHash: req.Password,
			Role:         req.Role,
		})
		if err != nil {
			logrus.WithError(err).Error("Error al crear usuario")
			var authErr *authenticating.AuthError
			if errors.As(err, &authErr) {
				apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al crear usuario", nil)
			return
		}

		respondJSON(w, http.StatusCreated, user)
	}
}

// GetUser devuelve un usuario de la clínica del solicitante
func GetUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		userID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if userID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID del usuario no proporcionado", nil)
			return
		}

		user, err := service.GetUserProfile(userID)
		if err != nil {
			logrus.WithError(err).Error("Error al consultar usuario")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al consultar usuario", nil)
			return
		}
		if user == nil || user.ClinicID != claims.ClinicID {
			apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Usuario no encontrado", nil)
			return
		}

		respondJSON(w, http.StatusOK, user)
	}
}

// UpdateUser modifica los datos de un usuario de la clínica
func UpdateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		userID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if userID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID del usuario no proporcionado", nil)
			return
		}

		var req domain.UpdateUserRequest
		if !decodeBody(w, r, &req) {
			return
		}
		req.ID = userID

		if err := service.UpdateUser(claims.ClinicID, &req); err != nil {
			logrus.WithError(err).Error("Error al actualizar usuario")
			if errors.Is(err, authenticating.ErrUserNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Usuario no encontrado", nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al actualizar usuario", nil)
			return
		}

		respondJSON(w, http.StatusOK, nil)
	}
}

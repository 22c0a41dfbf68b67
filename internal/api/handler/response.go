package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Karasowl/laralis-sub007/internal/domain"
	"github.com/Karasowl/laralis-sub007/pkg/apiErrors"
	"github.com/Karasowl/laralis-sub007/pkg/middleware"
	"github.com/Karasowl/laralis-sub007/pkg/utils"
)

// respondJSON serializa la respuesta. Un fallo aquí ya no puede cambiar el
// status enviado, solo se registra.
func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if payload == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Error("Error al serializar la respuesta")
	}
}

// requestClaims recupera los claims que el AuthMiddleware dejó en el
// contexto. El ok en falso significa ruta mal configurada o token ausente.
func requestClaims(w http.ResponseWriter, r *http.Request) (*domain.Claims, bool) {
	claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuario no autenticado", nil)
		return nil, false
	}
	return claims, true
}

// dateRange lee los query params from/to en formato 2006-01-02. Si faltan,
// el rango por defecto cubre los últimos doce meses.
func dateRange(w http.ResponseWriter, r *http.Request) (time.Time, time.Time, bool) {
	now := time.Now().UTC()
	from := now.AddDate(-1, 0, 0)
	to := now

	if raw := r.URL.Query().Get("from"); raw != "" {
		parsed, err := utils.ParseDate(raw)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Parámetro from inválido, se espera AAAA-MM-DD", nil)
			return time.Time{}, time.Time{}, false
		}
		from = *parsed
	}

	if raw := r.URL.Query().Get("to"); raw != "" {
		parsed, err := utils.ParseDate(raw)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Parámetro to inválido, se espera AAAA-MM-DD", nil)
			return time.Time{}, time.Time{}, false
		}
		to = *parsed
	}

	if to.Before(from) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "El rango de fechas es inválido, from debe ser anterior a to", nil)
		return time.Time{}, time.Time{}, false
	}

	return from, to, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de petición inválido", nil)
		return false
	}
	return true
}

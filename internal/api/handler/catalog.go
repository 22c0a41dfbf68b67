package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Karasowl/laralis-sub007/internal/domain"
	"github.com/Karasowl/laralis-sub007/internal/usecases/catalog"
	"github.com/Karasowl/laralis-sub007/pkg/apiErrors"
)

func handleCatalogError(w http.ResponseWriter, err error, action string) {
	switch {
	case errors.Is(err, catalog.ErrInvalidInput):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
	case errors.Is(err, catalog.ErrNotFound):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Recurso no encontrado", nil)
	default:
		logrus.WithError(err).Error(action)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, action, nil)
	}
}

func pathID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if id == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID no proporcionado", nil)
		return "", false
	}
	return id, true
}

func ListSupplies(service catalog.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		supplies, err := service.ListSupplies(claims.ClinicID)
		if err != nil {
			handleCatalogError(w, err, "Error al listar insumos")
			return
		}

		respondJSON(w, http.StatusOK, supplies)
	}
}

func CreateSupply(service catalog.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		var req domain.Supply
		if !decodeBody(w, r, &req) {
			return
		}

		supply, err := service.CreateSupply(claims.ClinicID, &req)
		if err != nil {
			handleCatalogError(w, err, "Error al crear insumo")
			return
		}

		respondJSON(w, http.StatusCreated, supply)
	}
}

func UpdateSupply(service catalog.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		id, ok := pathID(w, r)
		if !ok {
			return
		}

		var req domain.Supply
		if !decodeBody(w, r, &req) {
			return
		}
		req.ID = id

		if err := service.UpdateSupply(claims.ClinicID, &req); err != nil {
			handleCatalogError(w, err, "Error al actualizar insumo")
			return
		}

		respondJSON(w, http.StatusOK, nil)
	}
}

func DeleteSupply(service catalog.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		id, ok := pathID(w, r)
		if !ok {
			return
		}

		if err := service.DeleteSupply(claims.ClinicID, id); err != nil {
			handleCatalogError(w, err, "Error al eliminar insumo")
			return
		}

		respondJSON(w, http.StatusNoContent, nil)
	}
}

func ListServices(service catalog.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		services, err := service.ListServices(claims.ClinicID)
		if err != nil {
			handleCatalogError(w, err, "Error al listar servicios")
			return
		}

		respondJSON(w, http.StatusOK, services)
	}
}

func CreateService(service catalog.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		var req domain.Service
		if !decodeBody(w, r, &req) {
			return
		}

		created, err := service.CreateService(claims.ClinicID, &req)
		if err != nil {
			handleCatalogError(w, err, "Error al crear servicio")
			return
		}

		respondJSON(w, http.StatusCreated, created)
	}
}

func GetService(service catalog.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		id, ok := pathID(w, r)
		if !ok {
			return
		}

		svc, err := service.GetService(claims.ClinicID, id)
		if err != nil {
			handleCatalogError(w, err, "Error al consultar servicio")
			return
		}

		respondJSON(w, http.StatusOK, svc)
	}
}

func UpdateService(service catalog.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		id, ok := pathID(w, r)
		if !ok {
			return
		}

		var req domain.Service
		if !decodeBody(w, r, &req) {
			return
		}
		req.ID = id

		if err := service.UpdateService(claims.ClinicID, &req); err != nil {
			handleCatalogError(w, err, "Error al actualizar servicio")
			return
		}

		respondJSON(w, http.StatusOK, nil)
	}
}

func GetRecipe(service catalog.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		id, ok := pathID(w, r)
		if !ok {
			return
		}

		recipe, err := service.GetRecipe(claims.ClinicID, id)
		if err != nil {
			handleCatalogError(w, err, "Error al consultar la receta")
			return
		}

		respondJSON(w, http.StatusOK, recipe)
	}
}

// ReplaceRecipe sustituye la receta completa del servicio
func ReplaceRecipe(service catalog.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		id, ok := pathID(w, r)
		if !ok {
			return
		}

		var lines []*domain.ServiceSupply
		if !decodeBody(w, r, &lines) {
			return
		}

		if err := service.ReplaceRecipe(claims.ClinicID, id, lines); err != nil {
			handleCatalogError(w, err, "Error al guardar la receta")
			return
		}

		respondJSON(w, http.StatusOK, nil)
	}
}

func ListFixedCosts(service catalog.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		costs, err := service.ListFixedCosts(claims.ClinicID)
		if err != nil {
			handleCatalogError(w, err, "Error al listar costos fijos")
			return
		}

		respondJSON(w, http.StatusOK, costs)
	}
}

func CreateFixedCost(service catalog.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		var req domain.FixedCost
		if !decodeBody(w, r, &req) {
			return
		}

		cost, err := service.CreateFixedCost(claims.ClinicID, &req)
		if err != nil {
			handleCatalogError(w, err, "Error al crear costo fijo")
			return
		}

		respondJSON(w, http.StatusCreated, cost)
	}
}

func UpdateFixedCost(service catalog.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		id, ok := pathID(w, r)
		if !ok {
			return
		}

		var req domain.FixedCost
		if !decodeBody(w, r, &req) {
			return
		}
		req.ID = id

		if err := service.UpdateFixedCost(claims.ClinicID, &req); err != nil {
			handleCatalogError(w, err, "Error al actualizar costo fijo")
			return
		}

		respondJSON(w, http.StatusOK, nil)
	}
}

func DeleteFixedCost(service catalog.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		id, ok := pathID(w, r)
		if !ok {
			return
		}

		if err := service.DeleteFixedCost(claims.ClinicID, id); err != nil {
			handleCatalogError(w, err, "Error al eliminar costo fijo")
			return
		}

		respondJSON(w, http.StatusNoContent, nil)
	}
}

func ListAssets(service catalog.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		assets, err := service.ListAssets(claims.ClinicID)
		if err != nil {
			handleCatalogError(w, err, "Error al listar activos")
			return
		}

		respondJSON(w, http.StatusOK, assets)
	}
}

func CreateAsset(service catalog.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		var req domain.Asset
		if !decodeBody(w, r, &req) {
			return
		}

		asset, err := service.CreateAsset(claims.ClinicID, &req)
		if err != nil {
			handleCatalogError(w, err, "Error al crear activo")
			return
		}

		respondJSON(w, http.StatusCreated, asset)
	}
}

func DeleteAsset(service catalog.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		id, ok := pathID(w, r)
		if !ok {
			return
		}

		if err := service.DeleteAsset(claims.ClinicID, id); err != nil {
			handleCatalogError(w, err, "Error al eliminar activo")
			return
		}

		respondJSON(w, http.StatusNoContent, nil)
	}
}

func ListPatients(service catalog.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		patients, err := service.ListPatients(claims.ClinicID)
		if err != nil {
			handleCatalogError(w, err, "Error al listar pacientes")
			return
		}

		respondJSON(w, http.StatusOK, patients)
	}
}

func CreatePatient(service catalog.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		var req domain.Patient
		if !decodeBody(w, r, &req) {
			return
		}

		patient, err := service.CreatePatient(claims.ClinicID, &req)
		if err != nil {
			handleCatalogError(w, err, "Error al registrar paciente")
			return
		}

		respondJSON(w, http.StatusCreated, patient)
	}
}

func GetPatient(service catalog.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		id, ok := pathID(w, r)
		if !ok {
			return
		}

		patient, err := service.GetPatient(claims.ClinicID, id)
		if err != nil {
			handleCatalogError(w, err, "Error al consultar paciente")
			return
		}

		respondJSON(w, http.StatusOK, patient)
	}
}

func CreateExpense(service catalog.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		var req domain.Expense
		if !decodeBody(w, r, &req) {
			return
		}

		expense, err := service.CreateExpense(claims.ClinicID, &req)
		if err != nil {
			handleCatalogError(w, err, "Error al registrar gasto")
			return
		}

		respondJSON(w, http.StatusCreated, expense)
	}
}

func ListMarketingExpenses(service catalog.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		from, to, ok := dateRange(w, r)
		if !ok {
			return
		}

		expenses, err := service.ListMarketingExpenses(claims.ClinicID, from, to)
		if err != nil {
			handleCatalogError(w, err, "Error al listar gastos de marketing")
			return
		}

		respondJSON(w, http.StatusOK, expenses)
	}
}

func ListTreatments(service catalog.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := requestClaims(w, r)
		if !ok {
			return
		}

		from, to, ok := dateRange(w, r)
		if !ok {
			return
		}

		treatments, err := service.ListTreatments(claims.ClinicID, from, to)
		if err != nil {
			handleCatalogError(w, err, "Error al listar tratamientos")
			return
		}

		respondJSON(w, http.StatusOK, treatments)
	}
}

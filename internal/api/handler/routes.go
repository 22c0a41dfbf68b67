package handler

import (
	"net/http"

	"github.com/Karasowl/laralis-sub007/internal/api/handler/router"
	"github.com/Karasowl/laralis-sub007/internal/usecases/authenticating"
	"github.com/Karasowl/laralis-sub007/internal/usecases/catalog"
	"github.com/Karasowl/laralis-sub007/internal/usecases/equilibrium"
	"github.com/Karasowl/laralis-sub007/internal/usecases/marketing"
	"github.com/Karasowl/laralis-sub007/internal/usecases/pricing"
	"github.com/Karasowl/laralis-sub007/internal/usecases/settings"
	"github.com/Karasowl/laralis-sub007/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/clinics/register",
			Method:  http.MethodPost,
			Handler: RegisterClinic(service),
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

// Settings cubre horario laboral, parámetros de precios y el reporte de
// costos fijos con depreciación.
func Settings(service settings.Configurer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/settings/time",
			Method:      http.MethodGet,
			Handler:     GetTimeSettings(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/settings/time",
			Method:      http.MethodPut,
			Handler:     UpdateTimeSettings(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/settings/pricing",
			Method:      http.MethodGet,
			Handler:     GetPricingSettings(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/settings/pricing",
			Method:      http.MethodPut,
			Handler:     UpdatePricingSettings(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/fixed-costs/report",
			Method:      http.MethodGet,
			Handler:     GetFixedCostReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrDoctor()},
		},
		{
			Path:        "/v1/assets/:id/depreciation",
			Method:      http.MethodGet,
			Handler:     GetAssetDepreciation(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrDoctor()},
		},
	}
}

func FixedCosts(service catalog.Cataloger) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/fixed-costs",
			Method:      http.MethodGet,
			Handler:     ListFixedCosts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrDoctor()},
		},
		{
			Path:        "/v1/fixed-costs",
			Method:      http.MethodPost,
			Handler:     CreateFixedCost(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/fixed-costs/:id",
			Method:      http.MethodPut,
			Handler:     UpdateFixedCost(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/fixed-costs/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteFixedCost(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Assets(service catalog.Cataloger) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/assets",
			Method:      http.MethodGet,
			Handler:     ListAssets(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrDoctor()},
		},
		{
			Path:        "/v1/assets",
			Method:      http.MethodPost,
			Handler:     CreateAsset(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/assets/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteAsset(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Supplies(service catalog.Cataloger) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/supplies",
			Method:      http.MethodGet,
			Handler:     ListSupplies(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/supplies",
			Method:      http.MethodPost,
			Handler:     CreateSupply(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrDoctor()},
		},
		{
			Path:        "/v1/supplies/:id",
			Method:      http.MethodPut,
			Handler:     UpdateSupply(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrDoctor()},
		},
		{
			Path:        "/v1/supplies/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteSupply(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Services(service catalog.Cataloger) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/services",
			Method:      http.MethodGet,
			Handler:     ListServices(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/services",
			Method:      http.MethodPost,
			Handler:     CreateService(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrDoctor()},
		},
		{
			Path:        "/v1/services/:id",
			Method:      http.MethodGet,
			Handler:     GetService(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/services/:id",
			Method:      http.MethodPut,
			Handler:     UpdateService(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrDoctor()},
		},
		{
			Path:        "/v1/services/:id/recipe",
			Method:      http.MethodGet,
			Handler:     GetRecipe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/services/:id/recipe",
			Method:      http.MethodPut,
			Handler:     ReplaceRecipe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrDoctor()},
		},
	}
}

// Tariffs expone el motor de precios: costo variable, simulación, versiones
// congeladas, descuentos y ajuste masivo de margen.
func Tariffs(service pricing.Pricer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/services/:id/variable-cost",
			Method:      http.MethodGet,
			Handler:     GetVariableCost(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/tariffs/preview",
			Method:      http.MethodPost,
			Handler:     PreviewTariff(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrDoctor()},
		},
		{
			Path:        "/v1/services/:id/tariff",
			Method:      http.MethodPost,
			Handler:     SaveTariff(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrDoctor()},
		},
		{
			Path:        "/v1/tariffs",
			Method:      http.MethodGet,
			Handler:     ListTariffs(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/tariffs/:id/discount",
			Method:      http.MethodPut,
			Handler:     UpdateTariffDiscount(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/tariffs/bulk-margin",
			Method:      http.MethodPost,
			Handler:     BulkAdjustMargin(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Treatments(pricer pricing.Pricer, service catalog.Cataloger) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/treatments",
			Method:      http.MethodPost,
			Handler:     CreateTreatment(pricer),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrDoctor()},
		},
		{
			Path:        "/v1/treatments",
			Method:      http.MethodGet,
			Handler:     ListTreatments(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Patients(service catalog.Cataloger) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/patients",
			Method:      http.MethodGet,
			Handler:     ListPatients(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/patients",
			Method:      http.MethodPost,
			Handler:     CreatePatient(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/patients/:id",
			Method:      http.MethodGet,
			Handler:     GetPatient(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Expenses(service catalog.Cataloger) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/expenses",
			Method:      http.MethodPost,
			Handler:     CreateExpense(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrDoctor()},
		},
		{
			Path:        "/v1/expenses/marketing",
			Method:      http.MethodGet,
			Handler:     ListMarketingExpenses(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrDoctor()},
		},
	}
}

func Equilibrium(service equilibrium.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/equilibrium/units",
			Method:      http.MethodGet,
			Handler:     GetBreakEvenUnits(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrDoctor()},
		},
		{
			Path:        "/v1/equilibrium/revenue",
			Method:      http.MethodGet,
			Handler:     GetBreakEvenRevenue(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrDoctor()},
		},
	}
}

func Analytics(service marketing.Metricer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/marketing/metrics",
			Method:      http.MethodGet,
			Handler:     GetMarketingMetrics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrDoctor()},
		},
		{
			Path:        "/v1/marketing/cac-trend",
			Method:      http.MethodGet,
			Handler:     GetCACTrend(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrDoctor()},
		},
		{
			Path:        "/v1/marketing/acquisition-trends",
			Method:      http.MethodGet,
			Handler:     GetAcquisitionTrends(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrDoctor()},
		},
		{
			Path:        "/v1/marketing/snapshots",
			Method:      http.MethodGet,
			Handler:     ListMarketingSnapshots(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrDoctor()},
		},
		{
			Path:        "/v1/marketing/snapshots",
			Method:      http.MethodPost,
			Handler:     ComputeMarketingSnapshot(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

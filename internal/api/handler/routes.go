package handler

import (
	"net/http"

	"github.com/vfg2006/smartstore-sales-api/internal/api/handler/router"
	"github.com/vfg2006/smartstore-sales-api/internal/usecases/authenticating"
	"github.com/vfg2006/smartstore-sales-api/internal/usecases/estimating"
	"github.com/vfg2006/smartstore-sales-api/internal/usecases/registry"
	"github.com/vfg2006/smartstore-sales-api/pkg/middleware"
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
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Stores(service registry.StoreRegistry) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/stores",
			Method:      http.MethodGet,
			Handler:     ListStores(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/stores",
			Method:      http.MethodPost,
			Handler:     CreateStore(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/stores/:id",
			Method:      http.MethodGet,
			Handler:     GetStore(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/stores/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteStore(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

// Sales agrupa as rotas de análise; todas passam pelo limitador por IP
func Sales(service estimating.SalesEstimator, limiter *middleware.RateLimiter) []router.Route {
	limited := []func(http.Handler) http.Handler{middleware.AllRoles(), middleware.RateLimit(limiter)}

	return []router.Route{
		{
			Path:        "/v1/stores/:id/sales",
			Method:      http.MethodGet,
			Handler:     AnalyzeRegisteredStore(service),
			Middlewares: limited,
		},
		{
			Path:        "/v1/sales",
			Method:      http.MethodPost,
			Handler:     AnalyzeStore(service),
			Middlewares: limited,
		},
		{
			Path:        "/v1/sales",
			Method:      http.MethodGet,
			Handler:     AnalyzeProduct(service),
			Middlewares: limited,
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

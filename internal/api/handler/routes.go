package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/store-manager-api/internal/api/handler/router"
	"github.com/vfg2006/store-manager-api/internal/state"
	"github.com/vfg2006/store-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/store-manager-api/internal/usecases/cataloging"
	"github.com/vfg2006/store-manager-api/internal/usecases/channeling"
	"github.com/vfg2006/store-manager-api/internal/usecases/configuring"
	"github.com/vfg2006/store-manager-api/internal/usecases/expensing"
	"github.com/vfg2006/store-manager-api/internal/usecases/exporting"
	"github.com/vfg2006/store-manager-api/internal/usecases/insighting"
	"github.com/vfg2006/store-manager-api/internal/usecases/selling"
	"github.com/vfg2006/store-manager-api/internal/usecases/taxing"
)

// Guard é o middleware aplicado às rotas que exigem o dono autenticado
type Guard func(http.Handler) http.Handler

func (g Guard) chain() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{g}
}

func Healthcheck(store state.Reader) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(store),
		},
	}
}

func Authentication(service authenticating.Authenticator, guard Guard) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: guard.chain(),
		},
		{
			Path:        "/v1/me/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: guard.chain(),
		},
	}
}

func Dashboard(service insighting.Insighter, guard Guard) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboard(service),
			Middlewares: guard.chain(),
		},
	}
}

func Sales(service selling.Seller, loc *time.Location, guard Guard) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sales",
			Method:      http.MethodGet,
			Handler:     ListSales(service, loc),
			Middlewares: guard.chain(),
		},
		{
			Path:        "/v1/sales",
			Method:      http.MethodPost,
			Handler:     CreateSale(service),
			Middlewares: guard.chain(),
		},
		{
			Path:        "/v1/sales/:id/cancel",
			Method:      http.MethodPost,
			Handler:     CancelSale(service),
			Middlewares: guard.chain(),
		},
		{
			Path:        "/v1/sales/:id/expenses",
			Method:      http.MethodPost,
			Handler:     RecordSaleExpense(service),
			Middlewares: guard.chain(),
		},
	}
}

func Channels(service channeling.Channeler, guard Guard) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/channels",
			Method:      http.MethodGet,
			Handler:     ListChannels(service),
			Middlewares: guard.chain(),
		},
		{
			Path:        "/v1/channels",
			Method:      http.MethodPost,
			Handler:     CreateChannel(service),
			Middlewares: guard.chain(),
		},
		{
			Path:        "/v1/channels/:id",
			Method:      http.MethodPut,
			Handler:     UpdateChannel(service),
			Middlewares: guard.chain(),
		},
		{
			Path:        "/v1/channels/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteChannel(service),
			Middlewares: guard.chain(),
		},
	}
}

func BusinessExpenses(service expensing.Expenser, guard Guard) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/expenses",
			Method:      http.MethodGet,
			Handler:     ListExpenses(service),
			Middlewares: guard.chain(),
		},
		{
			Path:        "/v1/expenses/summary",
			Method:      http.MethodGet,
			Handler:     GetExpenseSummary(service),
			Middlewares: guard.chain(),
		},
		{
			Path:        "/v1/expenses",
			Method:      http.MethodPost,
			Handler:     CreateExpense(service),
			Middlewares: guard.chain(),
		},
		{
			Path:        "/v1/expenses/:id",
			Method:      http.MethodPut,
			Handler:     UpdateExpense(service),
			Middlewares: guard.chain(),
		},
		{
			Path:        "/v1/expenses/:id/status",
			Method:      http.MethodPatch,
			Handler:     ChangeExpenseStatus(service),
			Middlewares: guard.chain(),
		},
		{
			Path:        "/v1/expenses/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteExpense(service),
			Middlewares: guard.chain(),
		},
	}
}

func Products(service cataloging.Cataloger, guard Guard) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/products",
			Method:      http.MethodGet,
			Handler:     ListProducts(service),
			Middlewares: guard.chain(),
		},
		{
			Path:        "/v1/products",
			Method:      http.MethodPost,
			Handler:     CreateProduct(service),
			Middlewares: guard.chain(),
		},
		{
			Path:        "/v1/products/:id",
			Method:      http.MethodPut,
			Handler:     UpdateProduct(service),
			Middlewares: guard.chain(),
		},
		{
			Path:        "/v1/products/:id/costs",
			Method:      http.MethodPost,
			Handler:     AddProductCost(service),
			Middlewares: guard.chain(),
		},
		{
			Path:        "/v1/products/:id/costs/:cost_id",
			Method:      http.MethodDelete,
			Handler:     RemoveProductCost(service),
			Middlewares: guard.chain(),
		},
	}
}

func TaxThreshold(service taxing.Taxer, guard Guard) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/tax-threshold",
			Method:      http.MethodGet,
			Handler:     GetTaxThreshold(service),
			Middlewares: guard.chain(),
		},
		{
			Path:        "/v1/monthly-revenue",
			Method:      http.MethodGet,
			Handler:     ListMonthlyRevenue(service),
			Middlewares: guard.chain(),
		},
		{
			Path:        "/v1/monthly-revenue",
			Method:      http.MethodPost,
			Handler:     RecordMonthlyRevenue(service),
			Middlewares: guard.chain(),
		},
	}
}

func Settings(service configuring.Configurator, guard Guard) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/settings/store",
			Method:      http.MethodGet,
			Handler:     GetStoreSettings(service),
			Middlewares: guard.chain(),
		},
		{
			Path:        "/v1/settings/store",
			Method:      http.MethodPut,
			Handler:     UpdateStoreSettings(service),
			Middlewares: guard.chain(),
		},
		{
			Path:        "/v1/settings/tax",
			Method:      http.MethodGet,
			Handler:     GetTaxSettings(service),
			Middlewares: guard.chain(),
		},
		{
			Path:        "/v1/settings/tax",
			Method:      http.MethodPut,
			Handler:     UpdateTaxSettings(service),
			Middlewares: guard.chain(),
		},
	}
}

func Export(service exporting.Exporter, guard Guard) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/export",
			Method:      http.MethodGet,
			Handler:     ExportData(service),
			Middlewares: guard.chain(),
		},
	}
}

func CronJobs(services CronJobServices, guard Guard) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: guard.chain(),
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: guard.chain(),
		},
	}
}

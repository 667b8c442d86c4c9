package components

import (
	"mask-ledger/internal/handler"
	"mask-ledger/internal/handler/api"
	"mask-ledger/internal/handler/middleware"
	"mask-ledger/internal/pkg/config"

	"github.com/ulule/limiter/v3"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewUserHandler,
		api.NewPharmacyHandler,
		api.NewMaskHandler,
		api.NewOpeningHourHandler,
		api.NewTransactionHandler,
		api.NewSearchHandler,
		NewHandlers,
		NewPurchaseLimiter,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	User        *api.UserHandler
	Pharmacy    *api.PharmacyHandler
	Mask        *api.MaskHandler
	OpeningHour *api.OpeningHourHandler
	Transaction *api.TransactionHandler
	Search      *api.SearchHandler
}

func NewHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		User:        p.User,
		Pharmacy:    p.Pharmacy,
		Mask:        p.Mask,
		OpeningHour: p.OpeningHour,
		Transaction: p.Transaction,
		Search:      p.Search,
	}
}

// NewPurchaseLimiter returns nil when rate limiting is disabled.
func NewPurchaseLimiter(cfg config.Config) (*limiter.Limiter, error) {
	if !cfg.RateLimit.Enabled {
		return nil, nil
	}
	return middleware.NewPurchaseLimiter(cfg.RateLimit)
}

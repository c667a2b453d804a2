package components

import (
	"net/http"

	"courtside/internal/handler"
	"courtside/internal/handler/api"
	"courtside/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewHealthHandler,
		api.NewReservationHandler,
		api.NewPaymentHandler,
		api.NewMatchHandler,
		api.NewSlotHandler,
		middleware.NewAuthMiddleware,
		fx.Annotate(
			NewHandlers,
			fx.ParamTags(``, ``, ``, ``, ``, `name:"metrics"`),
		),
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	health *api.HealthHandler,
	reservation *api.ReservationHandler,
	payment *api.PaymentHandler,
	match *api.MatchHandler,
	slot *api.SlotHandler,
	metrics http.Handler,
) handler.Handlers {
	return handler.Handlers{
		Health:      health,
		Reservation: reservation,
		Payment:     payment,
		Match:       match,
		Slot:        slot,
		Metrics:     metrics,
	}
}

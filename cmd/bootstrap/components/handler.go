package components

import (
	"go.uber.org/fx"

	"booking-bot/internal/handler"
	"booking-bot/internal/handler/api"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewEventsHandler,
	),
	fx.Invoke(
		handler.NewRouter,
	),
)

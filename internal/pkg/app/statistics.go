package app

import (
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sony/gobreaker/v2"

	"github.com/ofarias/inventario-api/pkg/statistics"
)

// NewStatisticsMW records every request into the statistics pipeline. The
// kafka push runs behind a circuit breaker so a dead broker cannot stall API
// traffic; a failed push is logged and the request proceeds.
func NewStatisticsMW(stat *statistics.KafkaStatistics, logger *slog.Logger) (fiber.Handler, error) {
	breaker := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name: "statistics-kafka",
	})

	return func(ctx *fiber.Ctx) error {
		var headersStr strings.Builder
		for key, header := range ctx.GetReqHeaders() {
			headersStr.WriteString(key + ": " + strings.Join(header, ", ") + "\r\n")
		}

		req := statistics.Request{
			Method:  ctx.Method(),
			URL:     ctx.OriginalURL(),
			Body:    string(ctx.Body()),
			Headers: headersStr.String(),
		}

		if _, err := breaker.Execute(func() (any, error) {
			return nil, stat.Push(ctx.Context(), req)
		}); err != nil {
			logger.Error("no se pudo registrar la petición", slog.Any("error", err))
		}

		return ctx.Next()
	}, nil
}

package api

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
)

// bodyLimit bounds request bodies; burst lists are small.
const bodyLimit = 1 << 20

// NewApp wires the scheduler endpoints under /api/v1.
func NewApp(handler SchedulerHandler, logger *slog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true, BodyLimit: bodyLimit})
	app.Use(requestLogger(logger))

	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Get("/health", handler.Health)
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/all", handler.AllAlgorithms)
	}

	return app
}

func requestLogger(logger *slog.Logger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()

		// an error here is turned into a response by the error handler
		// after this middleware returns
		status := ctx.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}

		logger.Info("request",
			"method", ctx.Method(),
			"path", ctx.Path(),
			"status", status,
			"duration", time.Since(start),
		)
		return err
	}
}

package api

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"os-scheduling/config"
	"os-scheduling/internal/requests"
	"os-scheduling/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
	logger *slog.Logger
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, logger *slog.Logger) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config, logger: logger}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return s.badRequest(ctx, err)
	}
	response, err := schedulers.ScheduleFirstComeFirstServe(request)
	if err != nil {
		return s.scheduleError(ctx, err)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return s.badRequest(ctx, err)
	}
	quantum := s.timeQuantum(request)
	if err := s.checkDispatchLimit(request, quantum); err != nil {
		return s.scheduleError(ctx, err)
	}
	response, err := schedulers.ScheduleRoundRobin(request, quantum)
	if err != nil {
		return s.scheduleError(ctx, err)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return s.badRequest(ctx, err)
	}
	quantum := s.timeQuantum(request)
	if err := s.checkDispatchLimit(request, quantum); err != nil {
		return s.scheduleError(ctx, err)
	}
	response, err := schedulers.Compare(request, quantum)
	if err != nil {
		return s.scheduleError(ctx, err)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"status": "ok"})
}

func (s *SchedulerHandlerImpl) timeQuantum(request requests.ScheduleRequest) int {
	return request.TimeQuantum.OrElse(s.config.RoundRobinTimeQuantum)
}

// checkDispatchLimit rejects round robin workloads whose simulation would run
// longer than the configured number of slices.
func (s *SchedulerHandlerImpl) checkDispatchLimit(request requests.ScheduleRequest, quantum int) error {
	if s.config.MaxDispatches <= 0 {
		return nil
	}
	dispatches, err := schedulers.RoundRobinDispatches(request.BurstTimes, quantum)
	if err != nil {
		return err
	}
	if dispatches > s.config.MaxDispatches {
		return fmt.Errorf("%w: workload needs %d round robin slices, limit is %d",
			schedulers.ErrInvalidArgument, dispatches, s.config.MaxDispatches)
	}
	return nil
}

func parseRequest(ctx *fiber.Ctx) (requests.ScheduleRequest, error) {
	var request requests.ScheduleRequest
	err := ctx.BodyParser(&request)
	return request, err
}

func (s *SchedulerHandlerImpl) badRequest(ctx *fiber.Ctx, err error) error {
	s.logger.Debug("invalid request body", "path", ctx.Path(), "error", err)
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request format"})
}

func (s *SchedulerHandlerImpl) scheduleError(ctx *fiber.Ctx, err error) error {
	if errors.Is(err, schedulers.ErrInvalidArgument) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	s.logger.Error("schedule failed", "path", ctx.Path(), "error", err)
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not process request"})
}

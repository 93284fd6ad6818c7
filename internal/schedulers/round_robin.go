package schedulers

import (
	"log/slog"

	"os-scheduling/internal/core"
	"os-scheduling/internal/requests"
	"os-scheduling/internal/responses"
)

// RoundRobinWaitingTimes simulates cyclic dispatch with a fixed time quantum
// and returns the waiting time of every process.
//
// Processes are visited in input order on every pass. A process whose burst
// is 0 is done from the start and never dispatched.
func RoundRobinWaitingTimes(burstTimes []int, timeQuantum int) ([]int, error) {
	waitingTimes, _, err := roundRobin(burstTimes, timeQuantum)
	return waitingTimes, err
}

func roundRobin(burstTimes []int, timeQuantum int) ([]int, *core.Cpu, error) {
	if err := validateBurstTimes(burstTimes); err != nil {
		return nil, nil, err
	}
	if timeQuantum <= 0 {
		return nil, nil, invalidArgument("time quantum must be positive, got %d", timeQuantum)
	}

	remaining := make([]int, len(burstTimes))
	copy(remaining, burstTimes)
	waitingTimes := make([]int, len(burstTimes))
	cpu := core.NewCpu()

	for {
		done := true

		for i := range remaining {
			if remaining[i] <= 0 {
				continue
			}
			done = false

			if remaining[i] > timeQuantum {
				cpu.Execute(i+1, timeQuantum)
				remaining[i] -= timeQuantum
			} else {
				// last slice for this process
				clock := cpu.Execute(i+1, remaining[i])
				waitingTimes[i] = clock - burstTimes[i]
				remaining[i] = 0
			}
		}

		if done {
			break
		}
	}

	return waitingTimes, cpu, nil
}

func ScheduleRoundRobin(request requests.ScheduleRequest, timeQuantum int) (responses.ScheduleResponse, error) {
	slog.Debug("running roundRobin algorithm", "processes", len(request.BurstTimes), "time_quantum", timeQuantum)

	waitingTimes, cpu, err := roundRobin(request.BurstTimes, timeQuantum)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	turnAroundTimes, err := TurnAroundTimes(request.BurstTimes, waitingTimes)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}

	response, err := GenerateReport(RoundRobin, request.BurstTimes, waitingTimes, turnAroundTimes)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	response.TimeQuantum = timeQuantum
	attachCpuMetrics(&response, cpu)

	slog.Debug("roundRobin done", "total_time", response.TotalTime, "context_switches", response.ContextSwitches)
	return response, nil
}

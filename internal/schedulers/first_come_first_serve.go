package schedulers

import (
	"log/slog"

	"os-scheduling/internal/core"
	"os-scheduling/internal/requests"
	"os-scheduling/internal/responses"
)

// FirstComeFirstServeWaitingTimes returns the waiting time of every process
// when they are served strictly in input order with no gaps. Each waiting time
// is the sum of the bursts before it.
func FirstComeFirstServeWaitingTimes(burstTimes []int) ([]int, error) {
	if err := validateBurstTimes(burstTimes); err != nil {
		return nil, err
	}

	waitingTimes := make([]int, len(burstTimes))
	// waiting time for first process is 0
	for i := 1; i < len(burstTimes); i++ {
		waitingTimes[i] = burstTimes[i-1] + waitingTimes[i-1]
	}
	return waitingTimes, nil
}

func ScheduleFirstComeFirstServe(request requests.ScheduleRequest) (responses.ScheduleResponse, error) {
	slog.Debug("running fcfs algorithm", "processes", len(request.BurstTimes))

	waitingTimes, err := FirstComeFirstServeWaitingTimes(request.BurstTimes)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	turnAroundTimes, err := TurnAroundTimes(request.BurstTimes, waitingTimes)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}

	cpu := core.NewCpu()
	for i, bt := range request.BurstTimes {
		cpu.Execute(i+1, bt)
	}

	response, err := GenerateReport(FirstComeFirstServe, request.BurstTimes, waitingTimes, turnAroundTimes)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	attachCpuMetrics(&response, cpu)

	slog.Debug("fcfs done", "total_time", response.TotalTime, "average_waiting_time", response.AverageWaitingTime)
	return response, nil
}

package schedulers

import (
	"os-scheduling/internal/core"
	"os-scheduling/internal/responses"
	"os-scheduling/internal/util"
)

type Algorithm string

const (
	FirstComeFirstServe Algorithm = "fcfs"
	RoundRobin          Algorithm = "rr"
)

func (a Algorithm) Title() string {
	switch a {
	case FirstComeFirstServe:
		return "First-come, first-serve"
	case RoundRobin:
		return "Round-robin"
	}
	return string(a)
}

// GenerateReport pairs the per-process metrics in input order and computes
// the averages. The averages are stored unrounded.
func GenerateReport(algorithm Algorithm, burstTimes, waitingTimes, turnAroundTimes []int) (responses.ScheduleResponse, error) {
	n := len(burstTimes)
	if n == 0 {
		return responses.ScheduleResponse{}, invalidArgument("at least one process is required")
	}
	if len(waitingTimes) != n || len(turnAroundTimes) != n {
		return responses.ScheduleResponse{}, invalidArgument("length mismatch: %d burst, %d waiting, %d turnaround",
			n, len(waitingTimes), len(turnAroundTimes))
	}

	details := make([]responses.ProcessResponse, n)
	for i := 0; i < n; i++ {
		details[i] = responses.ProcessResponse{
			ProcessId:      i + 1,
			BurstTime:      burstTimes[i],
			WaitingTime:    waitingTimes[i],
			TurnAroundTime: turnAroundTimes[i],
		}
	}

	return responses.ScheduleResponse{
		Algorithm:             string(algorithm),
		AverageWaitingTime:    util.Average(waitingTimes),
		AverageTurnAroundTime: util.Average(turnAroundTimes),
		Details:               details,
		Timeline:              make([]responses.SliceResponse, 0),
	}, nil
}

func attachCpuMetrics(response *responses.ScheduleResponse, cpu *core.Cpu) {
	metric := cpu.Metric()
	response.TotalTime = metric.TotalTime
	response.IdleTime = metric.IdleTime
	response.ContextSwitches = metric.ContextSwitches
	response.Dispatches = metric.Dispatches
	if metric.TotalTime > 0 {
		response.CpuUtilization = float64(metric.UtilizationTime) / float64(metric.TotalTime)
	}

	for _, s := range cpu.Timeline() {
		response.Timeline = append(response.Timeline, responses.SliceResponse{
			ProcessId: s.ProcessId,
			Start:     s.Start,
			Stop:      s.Stop,
		})
	}
}

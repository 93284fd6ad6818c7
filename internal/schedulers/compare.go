package schedulers

import (
	"os-scheduling/internal/requests"
	"os-scheduling/internal/responses"
)

// Compare runs both algorithms on the same workload.
func Compare(request requests.ScheduleRequest, timeQuantum int) (responses.CompareResponse, error) {
	fcfs, err := ScheduleFirstComeFirstServe(request)
	if err != nil {
		return responses.CompareResponse{}, err
	}
	rr, err := ScheduleRoundRobin(request, timeQuantum)
	if err != nil {
		return responses.CompareResponse{}, err
	}
	return responses.CompareResponse{FirstComeFirstServe: fcfs, RoundRobin: rr}, nil
}

package schedulers

import "math"

// TurnAroundTimes returns burst + waiting for every process. It is shared by
// all algorithms.
func TurnAroundTimes(burstTimes, waitingTimes []int) ([]int, error) {
	if len(burstTimes) != len(waitingTimes) {
		return nil, invalidArgument("%d burst times but %d waiting times", len(burstTimes), len(waitingTimes))
	}
	if len(burstTimes) == 0 {
		return nil, invalidArgument("at least one process is required")
	}

	turnAroundTimes := make([]int, len(burstTimes))
	for i := range burstTimes {
		b, w := burstTimes[i], waitingTimes[i]
		if (w > 0 && b > math.MaxInt-w) || (w < 0 && b < math.MinInt-w) {
			return nil, invalidArgument("turnaround time of process %d overflows", i+1)
		}
		turnAroundTimes[i] = b + w
	}
	return turnAroundTimes, nil
}

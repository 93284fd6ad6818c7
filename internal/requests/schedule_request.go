package requests

import "github.com/markphelps/optional"

// ScheduleRequest carries the burst times of the processes in arrival order.
// The position in BurstTimes is the process identity.
type ScheduleRequest struct {
	BurstTimes []int `json:"burst_times"`
	// TimeQuantum is only read by round robin; when absent the configured
	// quantum is used.
	TimeQuantum optional.Int `json:"time_quantum"`
}

package responses

type ProcessResponse struct {
	ProcessId      int `json:"process_id"`
	BurstTime      int `json:"burst_time"`
	WaitingTime    int `json:"waiting_time"`
	TurnAroundTime int `json:"turn_around_time"`
}

type SliceResponse struct {
	ProcessId int `json:"process_id"`
	Start     int `json:"start"`
	Stop      int `json:"stop"`
}

type ScheduleResponse struct {
	Algorithm             string            `json:"algorithm"`
	TimeQuantum           int               `json:"time_quantum,omitempty"`
	TotalTime             int               `json:"total_time"`
	IdleTime              int               `json:"idle_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	ContextSwitches       int               `json:"context_switches"`
	Dispatches            int               `json:"dispatches"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	Details               []ProcessResponse `json:"details"`
	Timeline              []SliceResponse   `json:"timeline"`
}

// CompareResponse holds one report per algorithm for the same workload.
type CompareResponse struct {
	FirstComeFirstServe ScheduleResponse `json:"fcfs"`
	RoundRobin          ScheduleResponse `json:"rr"`
}

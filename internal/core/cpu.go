package core

// Slice is one contiguous run of a process on the cpu.
// ProcessId is the 1-based position of the process in the input sequence.
type Slice struct {
	ProcessId int
	Start     int
	Stop      int
}

func (s Slice) Duration() int {
	return s.Stop - s.Start
}

type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
	ContextSwitches int
	Dispatches      int
}

// Cpu is a single simulated core driven by a scheduler. It never sleeps; the
// clock only moves when a slice is executed.
type Cpu struct {
	clock    int
	busy     int
	switches int
	timeline []Slice
	// every Execute call as issued, before merging
	dispatches []Slice
}

func NewCpu() *Cpu {
	return &Cpu{timeline: make([]Slice, 0), dispatches: make([]Slice, 0)}
}

// Execute runs process pid for duration time units and returns the clock after
// the slice completes. Slices of zero length leave no trace on the timeline.
func (c *Cpu) Execute(pid int, duration int) int {
	if duration <= 0 {
		return c.clock
	}
	c.dispatches = append(c.dispatches, Slice{ProcessId: pid, Start: c.clock, Stop: c.clock + duration})

	if n := len(c.timeline); n > 0 {
		last := &c.timeline[n-1]
		if last.ProcessId == pid && last.Stop == c.clock {
			// same process keeps the cpu, no context switch
			last.Stop += duration
			c.clock += duration
			c.busy += duration
			return c.clock
		}
		c.switches++
	}

	c.timeline = append(c.timeline, Slice{ProcessId: pid, Start: c.clock, Stop: c.clock + duration})
	c.clock += duration
	c.busy += duration
	return c.clock
}

func (c *Cpu) Clock() int {
	return c.clock
}

// Timeline returns a copy of the executed slices in execution order.
func (c *Cpu) Timeline() []Slice {
	out := make([]Slice, len(c.timeline))
	copy(out, c.timeline)
	return out
}

// Dispatches returns every non-empty slice handed out, unmerged.
func (c *Cpu) Dispatches() []Slice {
	out := make([]Slice, len(c.dispatches))
	copy(out, c.dispatches)
	return out
}

func (c *Cpu) Metric() CpuMetric {
	return CpuMetric{
		TotalTime:       c.clock,
		UtilizationTime: c.busy,
		IdleTime:        c.clock - c.busy,
		ContextSwitches: c.switches,
		Dispatches:      len(c.dispatches),
	}
}

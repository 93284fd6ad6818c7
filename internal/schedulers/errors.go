package schedulers

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidArgument is wrapped by every input validation failure.
var ErrInvalidArgument = errors.New("invalid argument")

func invalidArgument(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// validateBurstTimes also bounds the total burst by math.MaxInt, which bounds
// every waiting time, turnaround time and the clock.
func validateBurstTimes(burstTimes []int) error {
	if len(burstTimes) < 1 {
		return invalidArgument("at least one process is required")
	}
	total := 0
	for i, bt := range burstTimes {
		if bt < 0 {
			return invalidArgument("burst time of process %d is negative (%d)", i+1, bt)
		}
		if bt > math.MaxInt-total {
			return invalidArgument("total burst time overflows at process %d", i+1)
		}
		total += bt
	}
	return nil
}

// RoundRobinDispatches returns how many slices round robin hands out for the
// workload, saturating at math.MaxInt.
func RoundRobinDispatches(burstTimes []int, timeQuantum int) (int, error) {
	if err := validateBurstTimes(burstTimes); err != nil {
		return 0, err
	}
	if timeQuantum <= 0 {
		return 0, invalidArgument("time quantum must be positive, got %d", timeQuantum)
	}

	dispatches := 0
	for _, bt := range burstTimes {
		// ceil without overflowing bt+timeQuantum
		n := bt / timeQuantum
		if bt%timeQuantum != 0 {
			n++
		}
		if n > math.MaxInt-dispatches {
			return math.MaxInt, nil
		}
		dispatches += n
	}
	return dispatches, nil
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"os-scheduling/internal/report"
	"os-scheduling/internal/requests"
	"os-scheduling/internal/schedulers"
	"os-scheduling/internal/workload"
)

type inputFlags struct {
	interactive bool
	file        string
	burstTimes  []int
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&f.interactive, "interactive", "i", false, "Prompt for the process count and burst times")
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "Workload file (.yaml, .json or .csv)")
	cmd.Flags().IntSliceVarP(&f.burstTimes, "burst", "b", nil, "Burst times in arrival order, e.g. 5,4,3")
}

// request picks the first input source given: prompts, file, flag, then the
// configured default workload.
func (f *inputFlags) request(cmd *cobra.Command, opts *rootOptions) (requests.ScheduleRequest, error) {
	switch {
	case f.interactive:
		burstTimes, err := workload.ReadInteractive(cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			return requests.ScheduleRequest{}, err
		}
		return requests.ScheduleRequest{BurstTimes: burstTimes}, nil
	case f.file != "":
		return workload.Load(f.file)
	case cmd.Flags().Changed("burst"):
		return requests.ScheduleRequest{BurstTimes: f.burstTimes}, nil
	default:
		return requests.ScheduleRequest{BurstTimes: opts.config.DefaultBurstTimes}, nil
	}
}

func addQuantumFlag(cmd *cobra.Command, quantum *int) {
	cmd.Flags().IntVarP(quantum, "quantum", "q", 0, "Round robin time quantum (default from config)")
}

// timeQuantum resolves the quantum: flag, then workload file, then config.
func timeQuantum(cmd *cobra.Command, quantum int, request requests.ScheduleRequest, opts *rootOptions) int {
	if cmd.Flags().Changed("quantum") {
		return quantum
	}
	return request.TimeQuantum.OrElse(opts.config.RoundRobinTimeQuantum)
}

func newFirstComeFirstServeCmd(opts *rootOptions) *cobra.Command {
	var input inputFlags

	cmd := &cobra.Command{
		Use:   "fcfs",
		Short: "Schedule processes first-come, first-serve",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			request, err := input.request(cmd, opts)
			if err != nil {
				return err
			}
			response, err := schedulers.ScheduleFirstComeFirstServe(request)
			if err != nil {
				return err
			}
			report.Write(cmd.OutOrStdout(), schedulers.FirstComeFirstServe.Title(), response)
			return nil
		},
	}
	input.register(cmd)
	return cmd
}

func newRoundRobinCmd(opts *rootOptions) *cobra.Command {
	var input inputFlags
	var quantum int

	cmd := &cobra.Command{
		Use:   "rr",
		Short: "Schedule processes round robin with a fixed time quantum",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			request, err := input.request(cmd, opts)
			if err != nil {
				return err
			}
			response, err := schedulers.ScheduleRoundRobin(request, timeQuantum(cmd, quantum, request, opts))
			if err != nil {
				return err
			}
			report.Write(cmd.OutOrStdout(), schedulers.RoundRobin.Title(), response)
			return nil
		},
	}
	input.register(cmd)
	addQuantumFlag(cmd, &quantum)
	return cmd
}

func newCompareCmd(opts *rootOptions) *cobra.Command {
	var input inputFlags
	var quantum int

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run both algorithms on the same workload",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			request, err := input.request(cmd, opts)
			if err != nil {
				return err
			}
			response, err := schedulers.Compare(request, timeQuantum(cmd, quantum, request, opts))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			report.Write(out, schedulers.FirstComeFirstServe.Title(), response.FirstComeFirstServe)
			fmt.Fprintln(out)
			report.Write(out, schedulers.RoundRobin.Title(), response.RoundRobin)
			return nil
		},
	}
	input.register(cmd)
	addQuantumFlag(cmd, &quantum)
	return cmd
}

package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"os-scheduling/internal/schedulers"
	"os-scheduling/internal/workload"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := root.Execute()
	return out.String(), err
}

func assertContains(t *testing.T, out string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in output:\n%s", want, out)
		}
	}
}

func TestFirstComeFirstServe_DefaultWorkload(t *testing.T) {
	out, err := run(t, "", "fcfs")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertContains(t, out,
		"Average waiting time = 18.75",
		"Average turn around time = 26.75",
	)
}

func TestFirstComeFirstServe_BurstFlag(t *testing.T) {
	out, err := run(t, "", "fcfs", "--burst", "7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertContains(t, out,
		"Average waiting time = 0.00",
		"Average turn around time = 7.00",
	)
}

func TestFirstComeFirstServe_Interactive(t *testing.T) {
	out, err := run(t, "4\n21 3 6 2\n", "fcfs", "--interactive")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertContains(t, out,
		"Enter the number of processes: ",
		"Burst time for process 4: ",
		"Average waiting time = 18.75",
	)
}

func TestRoundRobin_QuantumFlag(t *testing.T) {
	out, err := run(t, "", "rr", "-b", "5,4,3,2", "-q", "2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertContains(t, out,
		"Time quantum = 2",
		"Average waiting time = 8.25",
		"Average turn around time = 11.75",
		"Total time = 14",
	)
}

func TestRoundRobin_QuantumFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workload.yaml")
	if err := os.WriteFile(path, []byte("burst_times: [5, 4, 3, 2]\ntime_quantum: 10\n"), 0o644); err != nil {
		t.Fatalf("write workload: %v", err)
	}

	out, err := run(t, "", "rr", "--file", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// (0+5+9+12)/4
	assertContains(t, out, "Time quantum = 10", "Average waiting time = 6.50")
}

func TestCompare(t *testing.T) {
	out, err := run(t, "", "compare", "--burst", "21,3,6,2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertContains(t, out, "First-come, first-serve", "Round-robin", "Time quantum = 2")
}

func TestInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
	}{
		{"negative burst", "", []string{"fcfs", "--burst=-1,2"}},
		{"zero quantum", "", []string{"rr", "--quantum", "0"}},
		{"zero processes", "0\n", []string{"rr", "-i"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, tt.stdin, tt.args...)
			if !errors.Is(err, schedulers.ErrInvalidArgument) {
				t.Fatalf("expected ErrInvalidArgument, got %v", err)
			}
			if strings.Contains(out, "Average") {
				t.Errorf("report printed on invalid input:\n%s", out)
			}
		})
	}
}

func TestMalformedInteractiveInput(t *testing.T) {
	_, err := run(t, "two\n", "fcfs", "-i")
	if !errors.Is(err, workload.ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestExplicitConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sched.yaml")
	content := "scheduler:\n  default_burst_times: [4, 4]\n  round_robin:\n    time_quantum: 2\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	out, err := run(t, "", "--config", path, "rr")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// p1 finishes at 6, p2 at 8
	assertContains(t, out, "Average waiting time = 3.00")
}

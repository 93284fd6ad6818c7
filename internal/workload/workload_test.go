package workload

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		file        string
		content     string
		wantBursts  []int
		wantQuantum int
	}{
		{"yaml", "w.yaml", "burst_times: [5, 4, 3, 2]\ntime_quantum: 2\n", []int{5, 4, 3, 2}, 2},
		{"yml without quantum", "w.yml", "burst_times:\n  - 21\n  - 3\n", []int{21, 3}, 0},
		{"json", "w.json", `{"burst_times": [21, 3, 6, 2], "time_quantum": 4}`, []int{21, 3, 6, 2}, 4},
		{"json null quantum", "w.json", `{"burst_times": [1], "time_quantum": null}`, []int{1}, 0},
		{"csv rows", "w.csv", "21\n3\n6\n2\n", []int{21, 3, 6, 2}, 0},
		{"csv list", "w.txt", "5, 4,3\n2", []int{5, 4, 3, 2}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request, err := Load(writeFile(t, tt.file, tt.content))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(request.BurstTimes, tt.wantBursts) {
				t.Errorf("expected bursts %v, got %v", tt.wantBursts, request.BurstTimes)
			}
			if got := request.TimeQuantum.OrElse(0); got != tt.wantQuantum {
				t.Errorf("expected quantum %d, got %d", tt.wantQuantum, got)
			}
		})
	}
}

func TestLoad_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"yaml not a list", "w.yaml", "burst_times: lots\n"},
		{"json not an array", "w.json", `{"burst_times": 3}`},
		{"json string burst", "w.json", `{"burst_times": [1, "two"]}`},
		{"json fraction", "w.json", `{"burst_times": [1.5]}`},
		{"json invalid", "w.json", `{"burst_times": [1,`},
		{"json bad quantum", "w.json", `{"burst_times": [1], "time_quantum": "x"}`},
		{"csv word", "w.csv", "1\nthree\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			if !errors.Is(err, ErrMalformed) {
				t.Fatalf("expected ErrMalformed, got %v", err)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not exist error, got %v", err)
	}
}

func TestParseCSV_NegativePassesThrough(t *testing.T) {
	bursts, err := ParseCSV(strings.NewReader("4,-1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(bursts, []int{4, -1}) {
		t.Errorf("expected [4 -1], got %v", bursts)
	}
}

func TestReadInteractive(t *testing.T) {
	var out strings.Builder
	bursts, err := ReadInteractive(strings.NewReader("3\n21\n3 6\n"), &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(bursts, []int{21, 3, 6}) {
		t.Errorf("expected [21 3 6], got %v", bursts)
	}

	prompts := out.String()
	for _, want := range []string{
		"Enter the number of processes: ",
		"Enter burst times for 3 processes:\n",
		"Burst time for process 1: ",
		"Burst time for process 3: ",
	} {
		if !strings.Contains(prompts, want) {
			t.Errorf("missing prompt %q in %q", want, prompts)
		}
	}
}

func TestReadInteractive_ZeroProcesses(t *testing.T) {
	bursts, err := ReadInteractive(strings.NewReader("0\n"), &strings.Builder{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bursts) != 0 {
		t.Errorf("expected no bursts, got %v", bursts)
	}
}

func TestReadInteractive_Malformed(t *testing.T) {
	tests := map[string]string{
		"non numeric count": "abc\n",
		"non numeric burst": "2\n4\nx\n",
		"short input":       "3\n1\n2\n",
		"empty input":       "",
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ReadInteractive(strings.NewReader(in), &strings.Builder{})
			if !errors.Is(err, ErrMalformed) {
				t.Fatalf("expected ErrMalformed, got %v", err)
			}
		})
	}
}

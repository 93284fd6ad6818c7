// Package workload reads burst times from files, flags and interactive
// prompts. It only parses; range checks are left to the schedulers so the
// rules live in one place.
package workload

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/markphelps/optional"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"os-scheduling/internal/requests"
)

var ErrMalformed = errors.New("malformed workload")

type yamlWorkload struct {
	BurstTimes  []int `yaml:"burst_times"`
	TimeQuantum *int  `yaml:"time_quantum"`
}

// Load reads a workload file. The format is picked from the extension:
// .yaml/.yml and .json hold a burst_times list and an optional time_quantum,
// anything else is read as CSV with one or more burst times per row.
func Load(path string) (requests.ScheduleRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return requests.ScheduleRequest{}, fmt.Errorf("read workload: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".json":
		return ParseJSON(data)
	default:
		burstTimes, err := ParseCSV(strings.NewReader(string(data)))
		if err != nil {
			return requests.ScheduleRequest{}, err
		}
		return requests.ScheduleRequest{BurstTimes: burstTimes}, nil
	}
}

func ParseYAML(data []byte) (requests.ScheduleRequest, error) {
	var w yamlWorkload
	if err := yaml.Unmarshal(data, &w); err != nil {
		return requests.ScheduleRequest{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	request := requests.ScheduleRequest{BurstTimes: w.BurstTimes}
	if w.TimeQuantum != nil {
		request.TimeQuantum = optional.NewInt(*w.TimeQuantum)
	}
	return request, nil
}

func ParseJSON(data []byte) (requests.ScheduleRequest, error) {
	if !gjson.ValidBytes(data) {
		return requests.ScheduleRequest{}, fmt.Errorf("%w: invalid json", ErrMalformed)
	}

	bursts := gjson.GetBytes(data, "burst_times")
	if !bursts.IsArray() {
		return requests.ScheduleRequest{}, fmt.Errorf("%w: burst_times must be an array", ErrMalformed)
	}

	var request requests.ScheduleRequest
	var parseErr error
	bursts.ForEach(func(_, value gjson.Result) bool {
		bt, err := jsonInt(value)
		if err != nil {
			parseErr = fmt.Errorf("%w: burst_times[%d]: %v", ErrMalformed, len(request.BurstTimes), err)
			return false
		}
		request.BurstTimes = append(request.BurstTimes, bt)
		return true
	})
	if parseErr != nil {
		return requests.ScheduleRequest{}, parseErr
	}

	if q := gjson.GetBytes(data, "time_quantum"); q.Exists() && q.Type != gjson.Null {
		quantum, err := jsonInt(q)
		if err != nil {
			return requests.ScheduleRequest{}, fmt.Errorf("%w: time_quantum: %v", ErrMalformed, err)
		}
		request.TimeQuantum = optional.NewInt(quantum)
	}
	return request, nil
}

func jsonInt(v gjson.Result) (int, error) {
	if v.Type != gjson.Number {
		return 0, fmt.Errorf("%q is not a number", v.Raw)
	}
	if f := v.Float(); f != math.Trunc(f) {
		return 0, fmt.Errorf("%s is not an integer", v.Raw)
	}
	return int(v.Int()), nil
}

// ParseCSV accepts one burst time per row, comma separated rows, or both.
func ParseCSV(r io.Reader) ([]int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	burstTimes := make([]int, 0)
	for _, row := range rows {
		for _, field := range row {
			if strings.TrimSpace(field) == "" {
				continue
			}
			bt, err := parseInt(field)
			if err != nil {
				return nil, err
			}
			burstTimes = append(burstTimes, bt)
		}
	}
	return burstTimes, nil
}

// ReadInteractive prompts for a process count and then one burst time per
// process, the way the console variant of the tool always has.
func ReadInteractive(in io.Reader, out io.Writer) ([]int, error) {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)

	next := func() (int, error) {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return 0, err
			}
			return 0, fmt.Errorf("%w: unexpected end of input", ErrMalformed)
		}
		return parseInt(scanner.Text())
	}

	fmt.Fprint(out, "Enter the number of processes: ")
	n, err := next()
	if err != nil {
		return nil, err
	}
	if n < 1 {
		// the schedulers reject an empty workload
		return []int{}, nil
	}

	fmt.Fprintf(out, "Enter burst times for %d processes:\n", n)
	burstTimes := make([]int, 0)
	for i := 0; i < n; i++ {
		fmt.Fprintf(out, "Burst time for process %d: ", i+1)
		bt, err := next()
		if err != nil {
			return nil, err
		}
		burstTimes = append(burstTimes, bt)
	}
	return burstTimes, nil
}

func parseInt(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrMalformed, s)
	}
	return v, nil
}

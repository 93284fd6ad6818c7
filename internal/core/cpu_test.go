package core

import "testing"

func TestCpuExecute(t *testing.T) {
	cpu := NewCpu()

	if clock := cpu.Execute(1, 3); clock != 3 {
		t.Fatalf("expected clock 3, got %d", clock)
	}
	cpu.Execute(2, 0)
	cpu.Execute(2, 2)
	cpu.Execute(1, 1)

	timeline := cpu.Timeline()
	want := []Slice{{1, 0, 3}, {2, 3, 5}, {1, 5, 6}}
	if len(timeline) != len(want) {
		t.Fatalf("expected %d slices, got %d: %+v", len(want), len(timeline), timeline)
	}
	for i := range want {
		if timeline[i] != want[i] {
			t.Errorf("slice %d: expected %+v, got %+v", i, want[i], timeline[i])
		}
	}

	metric := cpu.Metric()
	if metric.TotalTime != 6 || metric.UtilizationTime != 6 || metric.IdleTime != 0 {
		t.Errorf("unexpected metric %+v", metric)
	}
	if metric.ContextSwitches != 2 {
		t.Errorf("expected 2 context switches, got %d", metric.ContextSwitches)
	}
}

func TestCpuExecute_SameProcessExtendsSlice(t *testing.T) {
	cpu := NewCpu()
	cpu.Execute(4, 2)
	cpu.Execute(4, 2)
	cpu.Execute(4, 1)

	timeline := cpu.Timeline()
	if len(timeline) != 1 {
		t.Fatalf("expected 1 slice, got %+v", timeline)
	}
	if timeline[0].Duration() != 5 {
		t.Errorf("expected duration 5, got %d", timeline[0].Duration())
	}
	if cpu.Metric().ContextSwitches != 0 {
		t.Errorf("expected no context switches, got %d", cpu.Metric().ContextSwitches)
	}

	dispatches := cpu.Dispatches()
	if len(dispatches) != 3 || cpu.Metric().Dispatches != 3 {
		t.Fatalf("expected 3 dispatches, got %+v", dispatches)
	}
	if dispatches[2] != (Slice{4, 4, 5}) {
		t.Errorf("unexpected last dispatch %+v", dispatches[2])
	}
}

func TestCpuTimelineIsACopy(t *testing.T) {
	cpu := NewCpu()
	cpu.Execute(1, 2)

	timeline := cpu.Timeline()
	timeline[0].Stop = 99

	if cpu.Timeline()[0].Stop != 2 {
		t.Error("caller modified the cpu timeline")
	}
}

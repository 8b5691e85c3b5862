package core

import (
	"testing"
	"time"
)

func TestCadenceFiresAfterPeriod(t *testing.T) {
	c := NewCadence(2 * time.Second)
	start := time.Unix(1000, 0)

	if c.Due(start) {
		t.Fatal("first call only arms the cadence")
	}
	if c.Due(start.Add(1999 * time.Millisecond)) {
		t.Fatal("fired before the period elapsed")
	}
	if !c.Due(start.Add(2 * time.Second)) {
		t.Fatal("expected to fire once the period elapsed")
	}
	if c.Due(start.Add(3 * time.Second)) {
		t.Fatal("period should restart after firing")
	}
}

func TestCadenceDisabled(t *testing.T) {
	c := NewCadence(0)
	now := time.Unix(0, 0)
	for i := 0; i < 3; i++ {
		now = now.Add(time.Hour)
		if c.Due(now) {
			t.Fatal("zero period must never fire")
		}
	}
}

func TestCadenceSetPeriodResumes(t *testing.T) {
	c := NewCadence(0)
	now := time.Unix(500, 0)
	c.SetPeriod(time.Second)
	c.Reset(now)
	if c.Period() != time.Second {
		t.Fatalf("period = %v, want 1s", c.Period())
	}
	if !c.Due(now.Add(time.Second)) {
		t.Fatal("expected to fire one period after Reset")
	}
	c.SetPeriod(0)
	if c.Due(now.Add(time.Hour)) {
		t.Fatal("paused cadence must not fire")
	}
}

func TestSnapshotFindAndLines(t *testing.T) {
	s := ParameterSnapshot{Groups: []ParameterGroup{{
		Name: "Noise",
		Params: []Parameter{
			{Key: "scale", Label: "Scale", Type: ParamTypeFloat, Value: "40"},
			{Key: "octaves", Label: "Octaves", Type: ParamTypeInt, Value: "4"},
		},
	}}}
	p, ok := s.Find("octaves")
	if !ok || p.Value != "4" {
		t.Fatalf("expected octaves=4, got %+v (found=%v)", p, ok)
	}
	if _, ok := s.Find("missing"); ok {
		t.Fatal("unexpected parameter found")
	}
	lines := s.Lines()
	if len(lines) != 3 || lines[0] != "Noise" || lines[1] != "  Scale: 40" {
		t.Fatalf("unexpected lines %q", lines)
	}
}

func TestParameterControlClamp(t *testing.T) {
	c := ParameterControl{Min: 1, Max: 8, HasMin: true, HasMax: true}
	if got := c.Clamp(0); got != 1 {
		t.Fatalf("expected clamp to 1, got %v", got)
	}
	if got := c.Clamp(9); got != 8 {
		t.Fatalf("expected clamp to 8, got %v", got)
	}
	open := ParameterControl{}
	if got := open.Clamp(-5); got != -5 {
		t.Fatalf("unbounded control should not clamp, got %v", got)
	}
}

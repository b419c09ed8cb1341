package simulation

import (
	"testing"

	"github.com/dinaMadelen/elevsim/internal/logger"
	"github.com/rs/zerolog"
)

func TestHistoryKeepsCopies(t *testing.T) {
	_ = logger.GetLoggerConfigured(zerolog.Disabled)
	history := &History{}
	s := NewSimulation(testProps(4, 1, 10, 1, 4, 0), WithHistory(history))
	enqueue(t, s, 1, 0, 2, 0)
	enqueue(t, s, 2, 1, 3, 0)

	s.Run()

	if len(history.States) != 4 {
		t.Fatalf("recorded %d states, expected 4", len(history.States))
	}

	// tick 0: passenger 1 boards at floor 0
	first := history.States[0]
	if len(first.Elevators[0].Onboard) != 1 || first.Elevators[0].Onboard[0].ID != 1 {
		t.Errorf("tick 0 onboard = %v, expected passenger 1", first.Elevators[0].Onboard)
	}
	if len(first.Waiting[1]) != 1 || first.Waiting[1][0].ID != 2 {
		t.Errorf("tick 0 waiting on floor 1 = %v, expected passenger 2", first.Waiting[1])
	}

	// tick 1: floor 1, passenger 2 joins
	second := history.States[1]
	if second.Elevators[0].Floor != 1 || len(second.Elevators[0].Onboard) != 2 {
		t.Errorf("tick 1 elevator = %+v, expected floor 1 with two passengers", second.Elevators[0])
	}
	if len(second.Waiting[1]) != 0 {
		t.Errorf("tick 1 waiting on floor 1 = %v, expected empty", second.Waiting[1])
	}

	// tick 2: passenger 1 leaves at floor 2
	third := history.States[2]
	if third.Completed != 1 || len(third.Elevators[0].Onboard) != 1 || third.Elevators[0].Onboard[0].ID != 2 {
		t.Errorf("tick 2 = %+v, expected passenger 1 completed and passenger 2 onboard", third)
	}

	// the earlier states still read as they did
	if len(history.States[0].Elevators[0].Onboard) != 1 || history.States[0].Elevators[0].Onboard[0].ID != 1 {
		t.Errorf("tick 0 state changed after later ticks: %+v", history.States[0])
	}
}

func TestSnapshotReusesBuffer(t *testing.T) {
	_ = logger.GetLoggerConfigured(zerolog.Disabled)
	s := NewSimulation(testProps(4, 2, 10, 1, 4, 0))
	if s.Snapshot() != s.Snapshot() {
		t.Errorf("Snapshot() returned different buffers, expected the simulation's own State")
	}
	if len(s.Snapshot().Waiting) != 5 {
		t.Errorf("len(Waiting) = %d, expected one queue per floor 0..4", len(s.Snapshot().Waiting))
	}
}

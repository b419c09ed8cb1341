package simulation

import (
	"github.com/dinaMadelen/elevsim/internal/elevconsts"
	"github.com/dinaMadelen/elevsim/internal/passenger"
	"github.com/tiendc/go-deepcopy"
)

type PassengerState struct {
	ID          int
	Origin      int
	Destination int
	ArrivalTick int
	Dirn        elevconsts.Dirn
}

type ElevatorState struct {
	ID       int
	Floor    int
	TopFloor int
	Dirn     elevconsts.Dirn
	Capacity int
	Onboard  []PassengerState
}

type State struct {
	Tick      int
	Elevators []ElevatorState
	Waiting   [][]PassengerState // indexed by floor
	Completed int
}

// Snapshot describes the simulation after the current tick. The returned
// State is a buffer owned by the simulation and is overwritten by the next
// call; use History to keep states around.
func (s *Simulation) Snapshot() *State {
	st := &s.state
	st.Tick = s.currentTick
	st.Completed = len(s.completed)

	st.Elevators = resize(st.Elevators, len(s.elevators))
	for i, elev := range s.elevators {
		es := &st.Elevators[i]
		es.ID = elev.ID()
		es.Floor = elev.Floor()
		es.TopFloor = elev.TopFloor()
		es.Dirn = elev.Dirn()
		es.Capacity = elev.Capacity()
		es.Onboard = appendPassengerStates(es.Onboard[:0], elev.Passengers())
	}

	floors := s.building.TopFloor() + 1
	st.Waiting = resize(st.Waiting, floors)
	for floor := 0; floor < floors; floor++ {
		waiting, err := s.building.Waiting(floor)
		if err != nil {
			Log.Error().Err(err).Msg("Snapshot")
			continue
		}
		st.Waiting[floor] = appendPassengerStates(st.Waiting[floor][:0], waiting)
	}
	return st
}

func appendPassengerStates(dst []PassengerState, passengers []*passenger.Passenger) []PassengerState {
	for _, p := range passengers {
		dst = append(dst, PassengerState{
			ID:          p.ID(),
			Origin:      p.Origin(),
			Destination: p.Destination(),
			ArrivalTick: p.ArrivalTick(),
			Dirn:        p.Dirn(),
		})
	}
	return dst
}

func resize[T any](s []T, n int) []T {
	if cap(s) < n {
		grown := make([]T, n)
		copy(grown, s[:cap(s)])
		return grown
	}
	return s[:n]
}

type History struct {
	States []State
}

// Record appends a deep copy of st.
func (h *History) Record(st *State) error {
	var copied State
	if err := deepcopy.Copy(&copied, *st); err != nil {
		return err
	}
	h.States = append(h.States, copied)
	return nil
}

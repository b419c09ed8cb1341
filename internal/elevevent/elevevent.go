package elevevent

import (
	"github.com/dinaMadelen/elevsim/internal/elevconsts"
)

type SimulationEvent struct {
	Tick int
	//One of the *Event structs below
	Value any
}

type PassengerArrivedEvent struct {
	Passenger   int
	Floor       int
	Destination int
}

type ElevatorMovedEvent struct {
	Elevator int
	From     int
	To       int
}

type DirectionChangedEvent struct {
	Elevator int
	Floor    int
	Dirn     elevconsts.Dirn
}

type PassengerBoardedEvent struct {
	Elevator  int
	Passenger int
	Floor     int
}

type PassengerDisembarkedEvent struct {
	Elevator  int
	Passenger int
	Floor     int
	TimeTaken int
}

type InvalidFloorEvent struct {
	Elevator int
	Floor    int
}

func (e *SimulationEvent) EventType() string {
	switch e.Value.(type) {
	case PassengerArrivedEvent:
		return "PassengerArrivedEvent"
	case ElevatorMovedEvent:
		return "ElevatorMovedEvent"
	case DirectionChangedEvent:
		return "DirectionChangedEvent"
	case PassengerBoardedEvent:
		return "PassengerBoardedEvent"
	case PassengerDisembarkedEvent:
		return "PassengerDisembarkedEvent"
	case InvalidFloorEvent:
		return "InvalidFloorEvent"
	default:
		return "UnknownEvent"
	}
}

// Handler receives events in the order the simulation produces them.
type Handler func(SimulationEvent)

package elevator

import (
	"fmt"

	"github.com/dinaMadelen/elevsim/internal/elevconsts"
	"github.com/dinaMadelen/elevsim/internal/logger"
	"github.com/dinaMadelen/elevsim/internal/onboard"
	"github.com/dinaMadelen/elevsim/internal/passenger"
)

var Log = logger.GetLogger()

type Elevator struct {
	id                int
	floor             int
	dirn              elevconsts.Dirn
	capacity          int
	maxTravelDistance int
	topFloor          int
	passengers        onboard.List
}

// NewElevator parks the elevator on the ground floor heading Up.
func NewElevator(id int, storage elevconsts.StorageKind, capacity, maxTravelDistance, topFloor int) *Elevator {
	return &Elevator{
		id:                id,
		floor:             0,
		dirn:              elevconsts.Up,
		capacity:          capacity,
		maxTravelDistance: maxTravelDistance,
		topFloor:          topFloor,
		passengers:        onboard.New(storage),
	}
}

func (e *Elevator) ID() int               { return e.id }
func (e *Elevator) Floor() int            { return e.floor }
func (e *Elevator) Dirn() elevconsts.Dirn { return e.dirn }
func (e *Elevator) Capacity() int         { return e.capacity }
func (e *Elevator) TopFloor() int         { return e.topFloor }
func (e *Elevator) Load() int             { return e.passengers.Len() }

// Passengers returns a copy of the onboard passengers.
func (e *Elevator) Passengers() []*passenger.Passenger {
	return e.passengers.Slice()
}

func (e *Elevator) ChangeDirection(dirn elevconsts.Dirn) {
	e.dirn = dirn
}

// shouldChangeDirection is true at a boundary heading outwards, or when no
// onboard passenger has a destination strictly ahead. Waiting passengers on
// floors are not considered.
func (e *Elevator) shouldChangeDirection() bool {
	if (e.floor == 0 && e.dirn == elevconsts.Down) || (e.floor == e.topFloor && e.dirn == elevconsts.Up) {
		return true
	}
	return !e.passengers.Any(func(p *passenger.Passenger) bool {
		return (e.dirn == elevconsts.Up && p.Destination() > e.floor) ||
			(e.dirn == elevconsts.Down && p.Destination() < e.floor)
	})
}

// Move advances the elevator by up to maxTravelDistance floors. An empty
// elevator stays put. Move reports whether the floor changed.
func (e *Elevator) Move() bool {
	if e.passengers.Len() == 0 {
		return false
	}

	if e.shouldChangeDirection() {
		e.dirn = e.dirn.Opposite()
	}

	switch {
	case e.floor == e.topFloor && e.dirn == elevconsts.Up:
		e.dirn = elevconsts.Down
	case e.floor == 0 && e.dirn == elevconsts.Down:
		e.dirn = elevconsts.Up
	}

	previous := e.floor
	if e.dirn == elevconsts.Up {
		e.floor = min(e.floor+e.maxTravelDistance, e.topFloor)
	} else {
		e.floor = max(e.floor-e.maxTravelDistance, 0)
	}

	Log.Trace().Msgf("Elevator %d moved %d -> %d heading %s", e.id, previous, e.floor, e.dirn)
	return e.floor != previous
}

func (e *Elevator) CanBoard(p *passenger.Passenger) bool {
	return e.passengers.Len() < e.capacity && p.Dirn() == e.dirn
}

// Board adds p when CanBoard allows it and reports whether it did.
func (e *Elevator) Board(p *passenger.Passenger) bool {
	if !e.CanBoard(p) {
		return false
	}
	e.passengers.Add(p)
	return true
}

// DisembarkPassengers removes and returns every passenger whose destination
// is the current floor.
func (e *Elevator) DisembarkPassengers() []*passenger.Passenger {
	return e.passengers.RemoveIf(func(p *passenger.Passenger) bool {
		return p.Destination() == e.floor
	})
}

func (e *Elevator) String() string {
	return fmt.Sprintf("elevator %d (floor %d/%d, %s, %d/%d onboard)",
		e.id, e.floor, e.topFloor, e.dirn, e.passengers.Len(), e.capacity)
}

// Package passenger holds the trip request that flows from a floor queue,
// through an elevator, into the completed ledger.
package passenger

import (
	"errors"
	"fmt"

	"github.com/dinaMadelen/elevsim/internal/elevconsts"
)

var (
	ErrSameFloor       = errors.New("destination equals origin")
	ErrAlreadyReached  = errors.New("destination already reached")
	ErrReachedTooEarly = errors.New("destination reached before arrival")
)

// Completion is either Unset or ReachedAt(tick).
type Completion struct {
	tick    int
	reached bool
}

func Unset() Completion {
	return Completion{}
}

func ReachedAt(tick int) Completion {
	return Completion{tick: tick, reached: true}
}

// Tick returns the tick the destination was reached at, and false while unset.
func (c Completion) Tick() (int, bool) {
	return c.tick, c.reached
}

func (c Completion) String() string {
	if !c.reached {
		return "Unset"
	}
	return fmt.Sprintf("ReachedAt(%d)", c.tick)
}

type Passenger struct {
	id          int
	origin      int
	destination int
	arrivalTick int
	dirn        elevconsts.Dirn
	completion  Completion
}

func New(id, origin, destination, arrivalTick int) (*Passenger, error) {
	if origin == destination {
		return nil, fmt.Errorf("passenger %d at floor %d: %w", id, origin, ErrSameFloor)
	}
	return &Passenger{
		id:          id,
		origin:      origin,
		destination: destination,
		arrivalTick: arrivalTick,
		dirn:        elevconsts.DirnBetween(origin, destination),
		completion:  Unset(),
	}, nil
}

func (p *Passenger) ID() int                     { return p.id }
func (p *Passenger) Origin() int                 { return p.origin }
func (p *Passenger) Destination() int            { return p.destination }
func (p *Passenger) ArrivalTick() int            { return p.arrivalTick }
func (p *Passenger) Dirn() elevconsts.Dirn       { return p.dirn }
func (p *Passenger) Completion() Completion      { return p.completion }
func (p *Passenger) HasReachedDestination() bool { return p.completion.reached }

// MarkReached stamps the completion tick. A passenger completes once.
func (p *Passenger) MarkReached(tick int) error {
	if p.completion.reached {
		return fmt.Errorf("passenger %d: %w at tick %d", p.id, ErrAlreadyReached, p.completion.tick)
	}
	if tick < p.arrivalTick {
		return fmt.Errorf("passenger %d: %w (tick %d < %d)", p.id, ErrReachedTooEarly, tick, p.arrivalTick)
	}
	p.completion = ReachedAt(tick)
	return nil
}

// TotalTimeTaken is the trip duration once completed, otherwise the time
// elapsed between arrival and currentTick.
func (p *Passenger) TotalTimeTaken(currentTick int) int {
	if tick, ok := p.completion.Tick(); ok {
		return tick - p.arrivalTick
	}
	return currentTick - p.arrivalTick
}

func (p *Passenger) String() string {
	return fmt.Sprintf("passenger %d (%d->%d %s, arrived %d, %s)",
		p.id, p.origin, p.destination, p.dirn, p.arrivalTick, p.completion)
}

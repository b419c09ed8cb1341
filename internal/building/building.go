// Package building owns the per-floor queues of waiting passengers. The
// arrival generator appends to them and elevators board from them.
package building

import (
	"errors"
	"fmt"
	"sync"

	"github.com/dinaMadelen/elevsim/internal/passenger"
)

var ErrInvalidFloor = errors.New("invalid floor index")

type floorQueue struct {
	mu      sync.Mutex
	waiting []*passenger.Passenger
}

type Building struct {
	queues []*floorQueue
}

// NewBuilding creates queues for floors 0..topFloor inclusive.
func NewBuilding(topFloor int) *Building {
	if topFloor < 0 {
		topFloor = 0
	}
	queues := make([]*floorQueue, topFloor+1)
	for i := range queues {
		queues[i] = &floorQueue{}
	}
	return &Building{queues: queues}
}

func (b *Building) TopFloor() int { return len(b.queues) - 1 }

func (b *Building) queue(floor int) (*floorQueue, error) {
	if floor < 0 || floor >= len(b.queues) {
		return nil, fmt.Errorf("%w: %d (building has floors 0..%d)", ErrInvalidFloor, floor, b.TopFloor())
	}
	return b.queues[floor], nil
}

// Enqueue appends p to the queue of its origin floor.
func (b *Building) Enqueue(p *passenger.Passenger) error {
	q, err := b.queue(p.Origin())
	if err != nil {
		return err
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.waiting = append(q.waiting, p)
	return nil
}

// BoardFrom scans the floor's queue in arrival order and removes every
// passenger for which board returns true. Passengers left behind keep their
// relative order.
func (b *Building) BoardFrom(floor int, board func(*passenger.Passenger) bool) ([]*passenger.Passenger, error) {
	q, err := b.queue(floor)
	if err != nil {
		return nil, err
	}
	q.mu.Lock()
	defer q.mu.Unlock()

	var boarded []*passenger.Passenger
	kept := q.waiting[:0]
	for _, p := range q.waiting {
		if board(p) {
			boarded = append(boarded, p)
		} else {
			kept = append(kept, p)
		}
	}
	for i := len(kept); i < len(q.waiting); i++ {
		q.waiting[i] = nil
	}
	q.waiting = kept
	return boarded, nil
}

// Waiting returns a copy of the queue on floor.
func (b *Building) Waiting(floor int) ([]*passenger.Passenger, error) {
	q, err := b.queue(floor)
	if err != nil {
		return nil, err
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]*passenger.Passenger, len(q.waiting))
	copy(out, q.waiting)
	return out, nil
}

// AllWaiting returns every waiting passenger, lowest floor first.
func (b *Building) AllWaiting() []*passenger.Passenger {
	var out []*passenger.Passenger
	for _, q := range b.queues {
		q.mu.Lock()
		out = append(out, q.waiting...)
		q.mu.Unlock()
	}
	return out
}

func (b *Building) WaitingCount() int {
	count := 0
	for _, q := range b.queues {
		q.mu.Lock()
		count += len(q.waiting)
		q.mu.Unlock()
	}
	return count
}

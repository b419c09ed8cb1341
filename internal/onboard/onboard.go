// Package onboard provides the containers an elevator keeps its passengers
// in. Both implementations behave identically; the choice is a performance
// knob carried over from the listType setting.
package onboard

import (
	"container/list"

	"github.com/dinaMadelen/elevsim/internal/elevconsts"
	"github.com/dinaMadelen/elevsim/internal/passenger"
)

type List interface {
	Len() int
	Add(p *passenger.Passenger)
	// RemoveIf removes every passenger matching pred and returns them in
	// insertion order.
	RemoveIf(pred func(*passenger.Passenger) bool) []*passenger.Passenger
	// Any reports whether at least one passenger matches pred.
	Any(pred func(*passenger.Passenger) bool) bool
	Slice() []*passenger.Passenger
}

func New(kind elevconsts.StorageKind) List {
	if kind == elevconsts.Linked {
		return &linkedList{items: list.New()}
	}
	return &sliceList{}
}

type sliceList struct {
	items []*passenger.Passenger
}

func (s *sliceList) Len() int { return len(s.items) }

func (s *sliceList) Add(p *passenger.Passenger) {
	s.items = append(s.items, p)
}

func (s *sliceList) RemoveIf(pred func(*passenger.Passenger) bool) []*passenger.Passenger {
	var removed []*passenger.Passenger
	kept := s.items[:0]
	for _, p := range s.items {
		if pred(p) {
			removed = append(removed, p)
		} else {
			kept = append(kept, p)
		}
	}
	for i := len(kept); i < len(s.items); i++ {
		s.items[i] = nil
	}
	s.items = kept
	return removed
}

func (s *sliceList) Any(pred func(*passenger.Passenger) bool) bool {
	for _, p := range s.items {
		if pred(p) {
			return true
		}
	}
	return false
}

func (s *sliceList) Slice() []*passenger.Passenger {
	out := make([]*passenger.Passenger, len(s.items))
	copy(out, s.items)
	return out
}

type linkedList struct {
	items *list.List
}

func (l *linkedList) Len() int { return l.items.Len() }

func (l *linkedList) Add(p *passenger.Passenger) {
	l.items.PushBack(p)
}

func (l *linkedList) RemoveIf(pred func(*passenger.Passenger) bool) []*passenger.Passenger {
	var removed []*passenger.Passenger
	for e := l.items.Front(); e != nil; {
		next := e.Next()
		p := e.Value.(*passenger.Passenger)
		if pred(p) {
			removed = append(removed, p)
			l.items.Remove(e)
		}
		e = next
	}
	return removed
}

func (l *linkedList) Any(pred func(*passenger.Passenger) bool) bool {
	for e := l.items.Front(); e != nil; e = e.Next() {
		if pred(e.Value.(*passenger.Passenger)) {
			return true
		}
	}
	return false
}

func (l *linkedList) Slice() []*passenger.Passenger {
	out := make([]*passenger.Passenger, 0, l.items.Len())
	for e := l.items.Front(); e != nil; e = e.Next() {
		out = append(out, e.Value.(*passenger.Passenger))
	}
	return out
}

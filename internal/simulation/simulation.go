// Package simulation drives the tick loop: arrivals, then for every elevator
// in order a move, a disembark and a boarding step against the post-move
// floor. Everything runs on the caller's goroutine.
package simulation

import (
	"math/rand"
	"time"

	"github.com/dinaMadelen/elevsim/internal/arrivals"
	"github.com/dinaMadelen/elevsim/internal/building"
	"github.com/dinaMadelen/elevsim/internal/elevator"
	"github.com/dinaMadelen/elevsim/internal/elevconfig"
	"github.com/dinaMadelen/elevsim/internal/elevevent"
	"github.com/dinaMadelen/elevsim/internal/logger"
	"github.com/dinaMadelen/elevsim/internal/metrics"
	"github.com/dinaMadelen/elevsim/internal/passenger"
)

var Log = logger.GetLogger()

type Option func(*Simulation)

// WithRandSource replaces the seeded arrival stream.
func WithRandSource(rng arrivals.RandomSource) Option {
	return func(s *Simulation) { s.rng = rng }
}

func WithEventHandler(handler elevevent.Handler) Option {
	return func(s *Simulation) { s.handler = handler }
}

// WithHistory records a copy of the state after every tick.
func WithHistory(history *History) Option {
	return func(s *Simulation) { s.history = history }
}

type Simulation struct {
	props     *elevconfig.SimulationProperties
	building  *building.Building
	elevators []*elevator.Elevator
	generator *arrivals.Generator
	reporter  metrics.Reporter

	completed   []*passenger.Passenger
	currentTick int

	rng     arrivals.RandomSource
	handler elevevent.Handler
	history *History
	state   State
}

func NewSimulation(props *elevconfig.SimulationProperties, opts ...Option) *Simulation {
	s := &Simulation{
		props:    props,
		building: building.NewBuilding(props.Floors),
		reporter: metrics.Reporter{IncludeInTransit: props.IncludeInTransit},
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.rng == nil {
		seed := props.Seed
		if !props.SeedSet {
			seed = time.Now().UnixNano()
		}
		s.rng = rand.New(rand.NewSource(seed))
	}

	s.generator = arrivals.NewGenerator(props.Floors, props.ArrivalProb, s.rng)
	for i := 0; i < props.Elevators; i++ {
		s.elevators = append(s.elevators,
			elevator.NewElevator(i, props.Storage, props.ElevatorCapacity, props.MaxTravelDistance, props.Floors))
	}
	return s
}

func (s *Simulation) Building() *building.Building { return s.building }
func (s *Simulation) CurrentTick() int             { return s.currentTick }

func (s *Simulation) Elevators() []*elevator.Elevator {
	out := make([]*elevator.Elevator, len(s.elevators))
	copy(out, s.elevators)
	return out
}

// Completed returns the completed ledger in disembark order.
func (s *Simulation) Completed() []*passenger.Passenger {
	out := make([]*passenger.Passenger, len(s.completed))
	copy(out, s.completed)
	return out
}

// InTransit returns every passenger still waiting on a floor or onboard.
func (s *Simulation) InTransit() []*passenger.Passenger {
	out := s.building.AllWaiting()
	for _, elev := range s.elevators {
		out = append(out, elev.Passengers()...)
	}
	return out
}

// Run simulates ticks [0, duration) and reports against the final tick.
func (s *Simulation) Run() metrics.Report {
	Log.Info().Msgf("Running simulation: %v", s.props)
	for tick := 0; tick < s.props.Duration; tick++ {
		s.Step(tick)
	}
	report := s.Report()
	Log.Info().Msgf("Simulation finished at tick %d: %d completed, %d in transit",
		s.currentTick, len(s.completed), report.InTransit)
	return report
}

func (s *Simulation) Report() metrics.Report {
	return s.reporter.Aggregate(s.completed, s.InTransit(), s.currentTick)
}

func (s *Simulation) Step(tick int) {
	s.currentTick = tick

	for _, p := range s.generator.Generate(tick, s.building) {
		s.emit(tick, elevevent.PassengerArrivedEvent{Passenger: p.ID(), Floor: p.Origin(), Destination: p.Destination()})
	}

	for _, elev := range s.elevators {
		s.moveElevator(tick, elev)
		s.handlePassengerDisembark(tick, elev)
		s.handlePassengerBoard(tick, elev)
	}

	if s.history != nil {
		if err := s.history.Record(s.Snapshot()); err != nil {
			Log.Error().Err(err).Msgf("Failed to record state at tick %d", tick)
		}
	}
}

func (s *Simulation) moveElevator(tick int, elev *elevator.Elevator) {
	from, dirn := elev.Floor(), elev.Dirn()
	if elev.Move() {
		s.emit(tick, elevevent.ElevatorMovedEvent{Elevator: elev.ID(), From: from, To: elev.Floor()})
	}
	if elev.Dirn() != dirn {
		s.emit(tick, elevevent.DirectionChangedEvent{Elevator: elev.ID(), Floor: from, Dirn: elev.Dirn()})
	}
}

func (s *Simulation) handlePassengerDisembark(tick int, elev *elevator.Elevator) {
	for _, p := range elev.DisembarkPassengers() {
		if err := p.MarkReached(tick); err != nil {
			Log.Error().Err(err).Msgf("Elevator %d", elev.ID())
		}
		s.completed = append(s.completed, p)
		s.emit(tick, elevevent.PassengerDisembarkedEvent{
			Elevator:  elev.ID(),
			Passenger: p.ID(),
			Floor:     elev.Floor(),
			TimeTaken: p.TotalTimeTaken(tick),
		})
	}
}

func (s *Simulation) handlePassengerBoard(tick int, elev *elevator.Elevator) {
	boarded, err := s.building.BoardFrom(elev.Floor(), elev.Board)
	if err != nil {
		Log.Error().Err(err).Msgf("Elevator %d: skipping boarding at tick %d", elev.ID(), tick)
		s.emit(tick, elevevent.InvalidFloorEvent{Elevator: elev.ID(), Floor: elev.Floor()})
		return
	}
	for _, p := range boarded {
		s.emit(tick, elevevent.PassengerBoardedEvent{Elevator: elev.ID(), Passenger: p.ID(), Floor: elev.Floor()})
	}
}

func (s *Simulation) emit(tick int, value any) {
	event := elevevent.SimulationEvent{Tick: tick, Value: value}
	Log.Debug().Int("tick", tick).Str("event", event.EventType()).Msgf("%+v", value)
	if s.handler != nil {
		s.handler(event)
	}
}

package arrivals

import (
	"github.com/dinaMadelen/elevsim/internal/building"
	"github.com/dinaMadelen/elevsim/internal/logger"
	"github.com/dinaMadelen/elevsim/internal/passenger"
)

var Log = logger.GetLogger()

// RandomSource is satisfied by *rand.Rand.
type RandomSource interface {
	Float64() float64
	Intn(n int) int
}

type Generator struct {
	floors      int
	probability float64
	rng         RandomSource
	nextID      int
	warned      bool
}

// NewGenerator spawns passengers on floors [0, floors).
func NewGenerator(floors int, probability float64, rng RandomSource) *Generator {
	return &Generator{
		floors:      floors,
		probability: probability,
		rng:         rng,
		nextID:      1,
	}
}

// Generate gives every floor one chance to spawn a passenger at tick and
// enqueues the new passengers on their origin floors.
func (g *Generator) Generate(tick int, b *building.Building) []*passenger.Passenger {
	if g.floors < 2 {
		if !g.warned {
			Log.Warn().Msgf("Building has %d floor(s), no destinations are possible and no passengers will arrive", g.floors)
			g.warned = true
		}
		return nil
	}

	var arrived []*passenger.Passenger
	for floor := 0; floor < g.floors; floor++ {
		if g.rng.Float64() >= g.probability {
			continue
		}

		destination := g.rng.Intn(g.floors)
		for destination == floor {
			destination = g.rng.Intn(g.floors)
		}

		p, err := passenger.New(g.nextID, floor, destination, tick)
		if err != nil {
			Log.Error().Err(err).Msg("Failed to create passenger")
			continue
		}
		if err := b.Enqueue(p); err != nil {
			Log.Error().Err(err).Msgf("Dropping passenger %d", p.ID())
			continue
		}
		g.nextID++
		arrived = append(arrived, p)
	}
	return arrived
}

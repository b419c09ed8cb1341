package elevconsts

// Defaults used whenever a configuration value is missing or unusable.
const (
	DefaultFloors            = 32
	DefaultArrivalProb       = 0.03
	DefaultElevators         = 1
	DefaultElevatorCapacity  = 10
	DefaultDuration          = 500
	DefaultMaxTravelDistance = 5
	DefaultStorage           = ArrayBacked
)

type Dirn int

const (
	Down Dirn = -1
	Up   Dirn = 1
)

func (d Dirn) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	default:
		return "Undefined"
	}
}

func (d Dirn) Opposite() Dirn {
	if d == Up {
		return Down
	}
	return Up
}

// DirnBetween is the travel direction from one floor to another. Equal
// floors count as Down.
func DirnBetween(from, to int) Dirn {
	if to > from {
		return Up
	}
	return Down
}

// StorageKind selects the container holding an elevator's onboard passengers.
// It affects performance only.
type StorageKind int

const (
	ArrayBacked StorageKind = iota
	Linked
)

func (s StorageKind) String() string {
	switch s {
	case ArrayBacked:
		return "ArrayList"
	case Linked:
		return "Linked"
	default:
		return "Undefined"
	}
}

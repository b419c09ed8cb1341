package metrics

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/dinaMadelen/elevsim/internal/passenger"
)

type Report struct {
	Count     int
	Average   float64
	Longest   int
	Shortest  int
	InTransit int
}

// Reporter aggregates travel times. Only completed passengers count unless
// IncludeInTransit is set, in which case waiting and onboard passengers are
// charged their elapsed time as of the final tick.
type Reporter struct {
	IncludeInTransit bool
}

func TotalTimeTaken(p *passenger.Passenger, currentTick int) int {
	return p.TotalTimeTaken(currentTick)
}

func (r Reporter) Aggregate(completed, inTransit []*passenger.Passenger, currentTick int) Report {
	counted := completed
	if r.IncludeInTransit {
		counted = make([]*passenger.Passenger, 0, len(completed)+len(inTransit))
		counted = append(counted, completed...)
		counted = append(counted, inTransit...)
	}

	report := Report{Count: len(counted), InTransit: len(inTransit)}
	if report.Count == 0 {
		return report
	}

	total := 0
	longest, shortest := math.MinInt, math.MaxInt
	for _, p := range counted {
		timeTaken := TotalTimeTaken(p, currentTick)
		total += timeTaken
		longest = max(longest, timeTaken)
		shortest = min(shortest, timeTaken)
	}

	report.Average = float64(total) / float64(report.Count)
	report.Longest = longest
	report.Shortest = shortest
	return report
}

// formatAverage always keeps a decimal point, e.g. 0.0 or 3.5.
func formatAverage(avg float64) string {
	s := strconv.FormatFloat(avg, 'f', -1, 64)
	if avg == math.Trunc(avg) && !math.IsInf(avg, 0) {
		s += ".0"
	}
	return s
}

// Write prints the three report lines.
func (r Report) Write(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Average time: %s\nLongest time: %d\nShortest time: %d\n",
		formatAverage(r.Average), r.Longest, r.Shortest)
	return err
}

package dist

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/uyouii/survival-algorithms/common"
	"gonum.org/v1/gonum/floats"
)

// discreteDist is the probability mass core shared by the pmf backed
// variants: the normalized waiting time sequence over days 0..N-1 and
// the transition probability (hazard) sequence derived from it. Both
// sequences are computed once on construction and never mutated.
type discreteDist struct {
	name           string
	waitingTime    []float64
	transitionProb []float64
	maxDay         int
}

// newDiscreteDist validates raw waiting time weights, normalizes them
// into a pmf and derives the transition probabilities.
func newDiscreteDist(name string, weights []float64) (discreteDist, error) {
	if len(weights) == 0 {
		return discreteDist{}, common.ErrorEmptyDistribution
	}
	for day, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return discreteDist{}, fmt.Errorf("%w: weight %v on day %d", common.ErrorInvalidValue, w, day)
		}
	}

	total := floats.Sum(weights)
	if total <= 0 {
		return discreteDist{}, fmt.Errorf("%w: total weight %v", common.ErrorZeroMass, total)
	}
	// a zero mass tail leaves nothing to condition on, the hazard there
	// would be 0/0
	if weights[len(weights)-1] == 0 {
		return discreteDist{}, fmt.Errorf("%w: %d days", common.ErrorZeroTailMass, len(weights))
	}

	waitingTime := copyFloats(weights)
	if math.Abs(total-1) > NormalizeEps {
		for day := range waitingTime {
			waitingTime[day] /= total
		}
	}

	transitionProb := calcTransitionProbs(waitingTime)

	return discreteDist{
		name:           name,
		waitingTime:    waitingTime,
		transitionProb: transitionProb,
		maxDay:         len(transitionProb),
	}, nil
}

// calcTransitionProbs computes the hazard sequence of a pmf: entry k is
// the probability the event occurs on day k conditioned on it not
// having occurred on days 0..k-1, i.e. the day k mass over the suffix
// mass from day k on. One right to left pass accumulates the suffix
// (survival) mass. The tail validation above keeps every suffix mass
// positive.
func calcTransitionProbs(waitingTime []float64) []float64 {
	n := len(waitingTime)
	transitionProb := make([]float64, n)
	survival := 0.0
	for k := n - 1; k >= 0; k-- {
		survival += waitingTime[k]
		transitionProb[k] = waitingTime[k] / survival
	}
	return transitionProb
}

func (d *discreteDist) Name() string {
	return d.name
}

func (d *discreteDist) MaxDay() int {
	return d.maxDay
}

// TransitionProb is a total function over day indexes: at or beyond
// maxDay the event is certain (the remaining mass sits on the boundary
// day), before day zero there is no mass at all.
func (d *discreteDist) TransitionProb(day int) float64 {
	if day < 0 {
		return 0
	}
	if day >= d.maxDay {
		return 1
	}
	return d.transitionProb[day]
}

// WaitingTime returns a copy of the normalized waiting time pmf.
func (d *discreteDist) WaitingTime() []float64 {
	return copyFloats(d.waitingTime)
}

// TransitionProbs returns a copy of the full hazard sequence.
func (d *discreteDist) TransitionProbs() []float64 {
	return copyFloats(d.transitionProb)
}

// Mean is the expected waiting time in days.
func (d *discreteDist) Mean() float64 {
	mean := 0.0
	for day, p := range d.waitingTime {
		mean += float64(day) * p
	}
	return mean
}

// Quantile returns the smallest day whose cumulative mass reaches p.
func (d *discreteDist) Quantile(p float64) int {
	return quantileIndex(d.waitingTime, p)
}

// Sample draws a day index by inverting the cumulative mass at a
// uniform random number.
func (d *discreteDist) Sample(rg *rand.Rand) int {
	return quantileIndex(d.waitingTime, rg.Float64())
}

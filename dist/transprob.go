package dist

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/uyouii/survival-algorithms/common"
)

// TransProb is the memoryless variant: the caller fixes the per day
// transition probability directly instead of a waiting time law. The
// implied waiting time is geometric. Unlike the pmf backed variants its
// hazard never saturates, every day keeps the same probability.
type TransProb struct {
	discreteDist
	Prob float64
}

// NewTransProb builds the variant for a per day probability in (0, 1].
// The stored waiting time series is the geometric pmf truncated at
// TailTolerance, kept for callers that inspect the shape.
func NewTransProb(prob float64) (*TransProb, error) {
	if prob <= 0 || prob > 1 || math.IsNaN(prob) {
		return nil, fmt.Errorf("%w: transition probability %v", common.ErrorInvalidValue, prob)
	}

	pmf := []float64{}
	remaining := 1.0
	for day := 0; day < MaxSupportDays && remaining >= TailTolerance; day++ {
		pmf = append(pmf, remaining*prob)
		remaining *= 1 - prob
	}
	if remaining >= TailTolerance {
		return nil, fmt.Errorf("%w: transition probability %v needs more than %v days of support",
			common.ErrorInvalidValue, prob, MaxSupportDays)
	}

	core, err := newDiscreteDist(NameTransitionProb, pmf)
	if err != nil {
		return nil, err
	}
	return &TransProb{discreteDist: core, Prob: prob}, nil
}

// TransitionProb returns the fixed probability for every day at or
// after day zero. MaxDay only reports the truncation horizon of the
// stored series, it is not a saturation boundary here.
func (d *TransProb) TransitionProb(day int) float64 {
	if day < 0 {
		return 0
	}
	return d.Prob
}

// Mean is the closed form geometric mean, not the mean of the truncated
// stored series.
func (d *TransProb) Mean() float64 {
	return (1 - d.Prob) / d.Prob
}

// Sample draws from the untruncated geometric law directly.
func (d *TransProb) Sample(rg *rand.Rand) int {
	if d.Prob == 1 {
		return 0
	}
	u := rg.Float64()
	return int(math.Log(1-u) / math.Log(1-d.Prob))
}

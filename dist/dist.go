// Package dist implements discrete waiting time distributions for
// survival and renewal modeling: each variant owns a probability mass
// function over whole days and the transition probability (discrete
// hazard) sequence derived from it, the conditional probability that
// the event occurs on a day given it has not occurred before.
package dist

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/uyouii/survival-algorithms/common"
	"github.com/uyouii/survival-algorithms/model"
	"github.com/uyouii/survival-algorithms/utils"
	"go.uber.org/zap"
)

// names of the distribution variants, used by callers to dispatch.
const (
	NameNonparametric  = "nonparametric"
	NameGamma          = "gamma"
	NameWeibull        = "weibull"
	NameExponential    = "exponential"
	NameLogNormal      = "lognormal"
	NameConstant       = "constant"
	NameTransitionProb = "transitionProb"
)

// Distribution is a discrete waiting time distribution together with
// its transition probability representation. Implementations are
// immutable after construction and safe to share between readers.
type Distribution interface {
	// Name reports the variant name ("nonparametric", "gamma", ...).
	Name() string

	// MaxDay is the length of the transition probability sequence. At
	// and beyond it the event is treated as certain.
	MaxDay() int

	// TransitionProb returns the probability the event occurs on the
	// given day conditioned on it not having occurred before. Total
	// over all day indexes: 1 at or beyond MaxDay, 0 below day zero.
	TransitionProb(day int) float64

	// WaitingTime returns a copy of the normalized waiting time pmf.
	WaitingTime() []float64

	// TransitionProbs returns a copy of the stored hazard sequence.
	TransitionProbs() []float64

	// Mean is the expected waiting time in days.
	Mean() float64

	// Quantile returns the smallest day with cumulative mass >= p.
	Quantile(p float64) int

	// Sample draws a day index from the waiting time distribution.
	Sample(rg *rand.Rand) int
}

// FromConfig builds the distribution variant selected by config.Name.
// Unknown names and invalid parameters fail with a domain error.
func FromConfig(ctx context.Context, config *model.DistConfig) (Distribution, error) {
	logger := utils.GetLogger(ctx)

	if config == nil {
		return nil, fmt.Errorf("%w: nil config", common.ErrorInvalidValue)
	}

	var (
		d   Distribution
		err error
	)

	switch config.Name {
	case NameNonparametric:
		d, err = NewNonparametric(config.WaitingTime)
	case NameGamma:
		d, err = NewDiscretizedGamma(config.Shape, config.Rate)
	case NameWeibull:
		d, err = NewDiscretizedWeibull(config.Shape, config.Scale)
	case NameExponential:
		d, err = NewDiscretizedExponential(config.Rate)
	case NameLogNormal:
		d, err = NewDiscretizedLogNormal(config.Mu, config.Sigma)
	case NameConstant:
		d, err = NewConstant(config.Days)
	case NameTransitionProb:
		d, err = NewTransProb(config.TransitionProb)
	default:
		err = fmt.Errorf("%w: %q", common.ErrorUnknownDistribution, config.Name)
	}

	if err != nil {
		logger.Error("build waiting time distribution failed",
			zap.String("name", config.Name), zap.Error(err))
		return nil, err
	}
	return d, nil
}

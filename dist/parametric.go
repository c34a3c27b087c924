package dist

import (
	"fmt"
	"math"

	"github.com/uyouii/survival-algorithms/common"
	"gonum.org/v1/gonum/stat/distuv"
)

// continuousCdf is the cumulative distribution function of a continuous
// waiting time law, evaluated on day boundaries during discretization.
type continuousCdf interface {
	CDF(x float64) float64
}

// discretizeCdf projects a continuous waiting time onto the day grid:
// pmf[k] = CDF(k+1) - CDF(k), the mass of a delay in [k, k+1). The
// support is extended until the remaining tail mass drops below
// TailTolerance. The shared core then folds the truncated tail back
// proportionally when it normalizes.
func discretizeCdf(c continuousCdf) ([]float64, error) {
	pmf := []float64{}
	prev := c.CDF(0)
	for day := 0; day < MaxSupportDays; day++ {
		next := c.CDF(float64(day + 1))
		pmf = append(pmf, math.Max(next-prev, 0))
		if 1-next < TailTolerance {
			return pmf, nil
		}
		prev = next
	}
	return nil, fmt.Errorf("%w: tail mass still above %v after %v days",
		common.ErrorInvalidValue, TailTolerance, MaxSupportDays)
}

// DiscretizedGamma is a gamma waiting time with the given shape and
// rate, projected onto the day grid.
type DiscretizedGamma struct {
	discreteDist
	Shape float64
	Rate  float64
}

func NewDiscretizedGamma(shape, rate float64) (*DiscretizedGamma, error) {
	if shape <= 0 || rate <= 0 || math.IsNaN(shape) || math.IsNaN(rate) {
		return nil, fmt.Errorf("%w: gamma shape %v rate %v", common.ErrorInvalidValue, shape, rate)
	}
	pmf, err := discretizeCdf(distuv.Gamma{Alpha: shape, Beta: rate})
	if err != nil {
		return nil, err
	}
	core, err := newDiscreteDist(NameGamma, pmf)
	if err != nil {
		return nil, err
	}
	return &DiscretizedGamma{discreteDist: core, Shape: shape, Rate: rate}, nil
}

// DiscretizedWeibull is a weibull waiting time with the given shape and
// scale, projected onto the day grid.
type DiscretizedWeibull struct {
	discreteDist
	Shape float64
	Scale float64
}

func NewDiscretizedWeibull(shape, scale float64) (*DiscretizedWeibull, error) {
	if shape <= 0 || scale <= 0 || math.IsNaN(shape) || math.IsNaN(scale) {
		return nil, fmt.Errorf("%w: weibull shape %v scale %v", common.ErrorInvalidValue, shape, scale)
	}
	pmf, err := discretizeCdf(distuv.Weibull{K: shape, Lambda: scale})
	if err != nil {
		return nil, err
	}
	core, err := newDiscreteDist(NameWeibull, pmf)
	if err != nil {
		return nil, err
	}
	return &DiscretizedWeibull{discreteDist: core, Shape: shape, Scale: scale}, nil
}

// DiscretizedExponential is an exponential waiting time with the given
// rate, projected onto the day grid. Its interior hazard is constant,
// the discrete counterpart of memorylessness.
type DiscretizedExponential struct {
	discreteDist
	Rate float64
}

func NewDiscretizedExponential(rate float64) (*DiscretizedExponential, error) {
	if rate <= 0 || math.IsNaN(rate) {
		return nil, fmt.Errorf("%w: exponential rate %v", common.ErrorInvalidValue, rate)
	}
	pmf, err := discretizeCdf(distuv.Exponential{Rate: rate})
	if err != nil {
		return nil, err
	}
	core, err := newDiscreteDist(NameExponential, pmf)
	if err != nil {
		return nil, err
	}
	return &DiscretizedExponential{discreteDist: core, Rate: rate}, nil
}

// DiscretizedLogNormal is a lognormal waiting time with the given log
// mean and log standard deviation, projected onto the day grid.
type DiscretizedLogNormal struct {
	discreteDist
	Mu    float64
	Sigma float64
}

func NewDiscretizedLogNormal(mu, sigma float64) (*DiscretizedLogNormal, error) {
	if sigma <= 0 || math.IsNaN(sigma) || math.IsNaN(mu) || math.IsInf(mu, 0) {
		return nil, fmt.Errorf("%w: lognormal mu %v sigma %v", common.ErrorInvalidValue, mu, sigma)
	}
	pmf, err := discretizeCdf(distuv.LogNormal{Mu: mu, Sigma: sigma})
	if err != nil {
		return nil, err
	}
	core, err := newDiscreteDist(NameLogNormal, pmf)
	if err != nil {
		return nil, err
	}
	return &DiscretizedLogNormal{discreteDist: core, Mu: mu, Sigma: sigma}, nil
}

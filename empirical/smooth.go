package empirical

import (
	"context"
	"math"
	"sort"

	"github.com/uyouii/survival-algorithms/common"
	"github.com/uyouii/survival-algorithms/dist"
	"github.com/uyouii/survival-algorithms/model"
	"github.com/uyouii/survival-algorithms/utils"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/stat"
)

// EstimateWaitingTimeSmoothed works like EstimateWaitingTime but smooths
// the observed delays with a gaussian kernel before bucketing them into
// days. With few records the raw histogram is spiky, the smoothed
// estimate spreads mass over the neighboring days instead.
func EstimateWaitingTimeSmoothed(ctx context.Context, timestamp int64,
	records []model.DelayRecord) (*dist.Nonparametric, error) {
	logger := utils.GetLogger(ctx)

	defer func() {
		if err := recover(); err != nil {
			logger.Error("EstimateWaitingTimeSmoothed recover panic error!", zap.Any("err", err),
				zap.String("panic info", utils.GetPanicInfo()), zap.Any("records", records))
		}
	}()

	delays, weights, err := collectWeightedDelays(ctx, timestamp, records)
	if err != nil {
		return nil, err
	}

	bw := normalReferenceBandwidth(delays)
	if bw < MinSmoothBandwidth {
		bw = MinSmoothBandwidth
	}

	// extend the support past the largest delay so the kernel tail can
	// fade out instead of getting chopped at the last observed day
	dayCnt := int(math.Ceil(floats.Max(delays) + SmoothCut*bw))
	if dayCnt < 1 {
		dayCnt = 1
	}
	if dayCnt > dist.MaxSupportDays {
		logger.Error("smoothed support too wide", zap.Int("dayCnt", dayCnt))
		return nil, common.ErrorInvalidValue
	}

	density := kernelDensity(delays, weights, bw)
	dayWeights := make([]float64, dayCnt)
	for day := 0; day < dayCnt; day++ {
		dayWeights[day] = quad.Fixed(density, float64(day), float64(day+1), SmoothQuadNodes, nil, 0)
	}

	d, err := dist.NewNonparametric(dayWeights)
	if err != nil {
		logger.Error("NewNonparametric failed", zap.Error(err),
			zap.Int("recordCnt", len(delays)), zap.Int("dayCnt", dayCnt))
		return nil, err
	}
	return d, nil
}

// kernelDensity returns the weighted gaussian kernel density over the
// delays. The weights don't have to be normalized.
func kernelDensity(delays, weights []float64, bw float64) func(float64) float64 {
	total := floats.Sum(weights)
	return func(x float64) float64 {
		sum := 0.0
		for i, d := range delays {
			u := (d - x) / bw
			sum += gaussianShape(u) * weights[i]
		}
		return sum / (total * bw)
	}
}

func gaussianShape(u float64) float64 {
	return 0.3989422804014327 * math.Exp(-u*u/2.0)
}

// normalReferenceBandwidth picks the kernel bandwidth by the normal
// reference rule C * A * n^(-1/5), with A the smaller of the standard
// deviation and the normalized interquartile range.
func normalReferenceBandwidth(delays []float64) float64 {
	sorted := append([]float64{}, delays...)
	sort.Float64s(sorted)

	// normal reference constant of the gaussian kernel
	c := 2 * math.Pow(1.0/24.0, 0.2)

	return c * selectSigma(sorted) * math.Pow(float64(len(sorted)), -0.2)
}

func selectSigma(sorted []float64) float64 {
	q75 := stat.Quantile(0.75, stat.Empirical, sorted, nil)
	q25 := stat.Quantile(0.25, stat.Empirical, sorted, nil)
	iqr := (q75 - q25) / 1.349

	stdDev := stat.StdDev(sorted, nil)

	if iqr > 0 && iqr < stdDev {
		return iqr
	}
	return stdDev
}

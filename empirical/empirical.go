// Package empirical estimates a nonparametric waiting time distribution
// from observed delay records.
package empirical

import (
	"context"
	"math"

	"github.com/uyouii/survival-algorithms/common"
	"github.com/uyouii/survival-algorithms/dist"
	"github.com/uyouii/survival-algorithms/model"
	"github.com/uyouii/survival-algorithms/utils"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"
)

// EstimateWaitingTime builds a nonparametric waiting time distribution
// from observed delays. Records are weighted down by observation age so
// recent behavior dominates, and outlier delays beyond the z-score clip
// are dropped before the day histogram is built.
func EstimateWaitingTime(ctx context.Context, timestamp int64,
	records []model.DelayRecord) (*dist.Nonparametric, error) {
	logger := utils.GetLogger(ctx)

	defer func() {
		if err := recover(); err != nil {
			logger.Error("EstimateWaitingTime recover panic error!", zap.Any("err", err),
				zap.String("panic info", utils.GetPanicInfo()), zap.Any("records", records))
		}
	}()

	delays, weights, err := collectWeightedDelays(ctx, timestamp, records)
	if err != nil {
		return nil, err
	}

	histogram := delayHistogram(delays, weights)

	d, err := dist.NewNonparametric(histogram)
	if err != nil {
		logger.Error("NewNonparametric failed", zap.Error(err),
			zap.Int("recordCnt", len(delays)), zap.Int("dayCnt", len(histogram)))
		return nil, err
	}
	return d, nil
}

// collectWeightedDelays turns raw records into delay values with recency
// weights, dropping invalid records and outliers beyond the z-score clip.
func collectWeightedDelays(ctx context.Context, timestamp int64,
	records []model.DelayRecord) ([]float64, []float64, error) {
	logger := utils.GetLogger(ctx)

	delays, weights := []float64{}, []float64{}

	for i := range records {
		record := records[i]
		if !record.Valid() {
			continue
		}

		delays = append(delays, record.Days)
		ageDays := utils.DayCntBetweenTimestamp(timestamp, record.Timestamp)
		weights = append(weights, math.Pow(WeightDecayFactor, float64(ageDays)))
	}

	if len(delays) < MinEstimateRecordCnt {
		logger.Error("records too little, skip estimate", zap.Int("cnt", len(delays)))
		return nil, nil, common.ErrorTooFewRecords
	}

	mean := stat.Mean(delays, nil)
	stddev := stat.StdDev(delays, nil)
	clip := &model.Clip{
		Upper: mean + stddev*ClipUpperZScore,
		Lower: math.Max(mean-stddev*ClipLowerZScore, 0),
	}
	delays, weights = clipDelays(delays, weights, clip)
	return delays, weights, nil
}

// clipDelays keeps the delays inside the clip bounds, together with
// their weights.
func clipDelays(delays, weights []float64, clip *model.Clip) ([]float64, []float64) {
	if len(delays) != len(weights) || clip == nil {
		// do nothing
		return delays, weights
	}

	resDelays, resWeights := []float64{}, []float64{}
	for i, d := range delays {
		if d >= clip.Lower && d <= clip.Upper {
			resDelays = append(resDelays, d)
			resWeights = append(resWeights, weights[i])
		}
	}
	return resDelays, resWeights
}

// delayHistogram buckets weighted delays into whole day weights, day 0
// up to the largest observed day.
func delayHistogram(delays, weights []float64) []float64 {
	maxDay := 0
	for _, d := range delays {
		if day := int(math.Floor(d)); day > maxDay {
			maxDay = day
		}
	}
	histogram := make([]float64, maxDay+1)
	for i, d := range delays {
		histogram[int(math.Floor(d))] += weights[i]
	}
	return histogram
}

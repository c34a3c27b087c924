package empirical

import (
	"context"

	"github.com/uyouii/survival-algorithms/dist"
	"github.com/uyouii/survival-algorithms/model"
	"github.com/uyouii/survival-algorithms/utils"
	"go.uber.org/zap"
)

// Tracker keeps a rolling window of delay records for one observed
// process and reestimates its waiting time distribution on demand. The
// records are cached in memory, so the tracker rebalances the cache on
// every append to keep it bounded. Not safe for concurrent use.
type Tracker struct {
	key            string
	records        []model.DelayRecord
	lastAppendTime int64
}

func NewTracker(key string) *Tracker {
	return &Tracker{
		key:     key,
		records: []model.DelayRecord{},
	}
}

// Append ingests one observed delay. Records must arrive in timestamp
// order, stale or invalid ones are skipped and reported to the caller.
func (t *Tracker) Append(ctx context.Context, record model.DelayRecord) bool {
	logger := utils.GetLogger(ctx)

	if !record.Valid() {
		logger.Info("skip invalid delay record",
			zap.String("key", t.key), zap.Any("record", record))
		return false
	}
	if record.Timestamp < t.lastAppendTime {
		logger.Info("skip stale delay record",
			zap.String("key", t.key), zap.Int64("timestamp", record.Timestamp),
			zap.Int64("lastAppendTime", t.lastAppendTime))
		return false
	}

	t.records = append(t.records, record)
	t.lastAppendTime = record.Timestamp
	t.rebalance()
	return true
}

// rebalance drops records older than the retention horizon and caps the
// cache size, so long streams won't occupy too much memory.
func (t *Tracker) rebalance() {
	minTimestamp := t.lastAppendTime - RetentionDays*24*3600

	index := 0
	for ; index < len(t.records); index++ {
		if t.records[index].Timestamp >= minTimestamp {
			break
		}
	}
	t.records = t.records[index:]

	if len(t.records) > MaxTrackedRecords {
		t.records = t.records[len(t.records)-MaxTrackedRecords:]
	}
}

// Estimate builds the distribution from the records currently tracked.
func (t *Tracker) Estimate(ctx context.Context) (*dist.Nonparametric, error) {
	return EstimateWaitingTime(ctx, t.lastAppendTime, t.records)
}

// EstimateSmoothed is Estimate with kernel smoothing over the delays.
func (t *Tracker) EstimateSmoothed(ctx context.Context) (*dist.Nonparametric, error) {
	return EstimateWaitingTimeSmoothed(ctx, t.lastAppendTime, t.records)
}

func (t *Tracker) Records() []model.DelayRecord {
	return t.records
}

func (t *Tracker) DataSize() int {
	return len(t.records)
}

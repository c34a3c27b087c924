package empirical

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/uyouii/survival-algorithms/common"
	"github.com/uyouii/survival-algorithms/model"
)

func TestTrackerAppendEstimate(t *testing.T) {
	ctx := context.Background()
	base := int64(100 * 24 * 3600)

	tracker := NewTracker("order-delay")
	for i := 0; i < 6; i++ {
		record := model.DelayRecord{Timestamp: base + int64(i*60), Days: 2}
		if !tracker.Append(ctx, record) {
			t.Fatalf("append %v rejected", i)
		}
	}
	if tracker.DataSize() != 6 {
		t.Fatalf("data size: got %v, want 6", tracker.DataSize())
	}

	d, err := tracker.Estimate(ctx)
	if err != nil {
		t.Fatalf("Estimate failed: %v", err)
	}
	if d.MaxDay() != 3 {
		t.Fatalf("max day: got %v, want 3", d.MaxDay())
	}
	checkFloat(t, "mean", d.Mean(), 2.0, testEps)
}

func TestTrackerSkipsStaleAndInvalid(t *testing.T) {
	ctx := context.Background()
	base := int64(2 * 24 * 3600)

	tracker := NewTracker("order-delay")
	if !tracker.Append(ctx, model.DelayRecord{Timestamp: base, Days: 1}) {
		t.Fatalf("first append rejected")
	}
	if tracker.Append(ctx, model.DelayRecord{Timestamp: base - 60, Days: 1}) {
		t.Fatalf("stale record accepted")
	}
	if tracker.Append(ctx, model.DelayRecord{Timestamp: 0, Days: 1}) {
		t.Fatalf("zero timestamp accepted")
	}
	if tracker.Append(ctx, model.DelayRecord{Timestamp: base, Days: math.NaN()}) {
		t.Fatalf("nan days accepted")
	}
	// equal timestamps are in order
	if !tracker.Append(ctx, model.DelayRecord{Timestamp: base, Days: 3}) {
		t.Fatalf("same timestamp append rejected")
	}
	if tracker.DataSize() != 2 {
		t.Fatalf("data size: got %v, want 2", tracker.DataSize())
	}

	if _, err := tracker.Estimate(ctx); !errors.Is(err, common.ErrorTooFewRecords) {
		t.Fatalf("Estimate error = %v, want %v", err, common.ErrorTooFewRecords)
	}
}

func TestTrackerRetention(t *testing.T) {
	ctx := context.Background()
	day := int64(24 * 3600)
	base := 10 * day

	tracker := NewTracker("order-delay")
	tracker.Append(ctx, model.DelayRecord{Timestamp: base, Days: 1})

	// a record exactly at the horizon keeps the oldest one alive
	tracker.Append(ctx, model.DelayRecord{Timestamp: base + RetentionDays*day, Days: 1})
	if tracker.DataSize() != 2 {
		t.Fatalf("data size after horizon append: got %v, want 2", tracker.DataSize())
	}

	// one day further and the oldest record falls out
	tracker.Append(ctx, model.DelayRecord{Timestamp: base + (RetentionDays+1)*day, Days: 1})
	if tracker.DataSize() != 2 {
		t.Fatalf("data size after eviction: got %v, want 2", tracker.DataSize())
	}
	if got := tracker.Records()[0].Timestamp; got != base+RetentionDays*day {
		t.Fatalf("oldest record: got timestamp %v, want %v", got, base+RetentionDays*day)
	}
}

func TestTrackerCapsRecords(t *testing.T) {
	ctx := context.Background()
	base := int64(100 * 24 * 3600)

	tracker := NewTracker("order-delay")
	extra := 50
	for i := 0; i < MaxTrackedRecords+extra; i++ {
		tracker.Append(ctx, model.DelayRecord{Timestamp: base + int64(i), Days: 1})
	}

	if tracker.DataSize() != MaxTrackedRecords {
		t.Fatalf("data size: got %v, want %v", tracker.DataSize(), MaxTrackedRecords)
	}
	if got := tracker.Records()[0].Timestamp; got != base+int64(extra) {
		t.Fatalf("oldest record: got timestamp %v, want %v", got, base+int64(extra))
	}
}

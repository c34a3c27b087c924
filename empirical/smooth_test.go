package empirical

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/uyouii/survival-algorithms/common"
)

func TestEstimateWaitingTimeSmoothed(t *testing.T) {
	ctx := context.Background()
	now := int64(100 * 24 * 3600)

	records := sameDayRecords(now, 2, 2, 2, 4, 4)
	d, err := EstimateWaitingTimeSmoothed(ctx, now, records)
	if err != nil {
		t.Fatalf("EstimateWaitingTimeSmoothed failed: %v", err)
	}

	// bandwidth 1.0592 * 1.0954 * 5^(-0.2) ~= 0.84, so the support runs
	// three bandwidths past the largest delay
	if d.MaxDay() != 7 {
		t.Fatalf("max day: got %v, want 7", d.MaxDay())
	}

	waitingTime := d.WaitingTime()
	total := 0.0
	for _, w := range waitingTime {
		total += w
	}
	checkFloat(t, "normalized total", total, 1.0, testEps)

	// a histogram would leave day 3 empty, the kernel smears the two
	// clusters into it
	if waitingTime[3] < 0.1 {
		t.Fatalf("waiting time day 3: got %v, want smoothed mass", waitingTime[3])
	}
	for day, w := range waitingTime {
		if day != 2 && w >= waitingTime[2] {
			t.Fatalf("mode: day %v mass %v >= day 2 mass %v", day, w, waitingTime[2])
		}
	}
	checkFloat(t, "mean", d.Mean(), 2.3, 0.3)
}

func TestSmoothedIdenticalDelays(t *testing.T) {
	ctx := context.Background()
	now := int64(100 * 24 * 3600)

	// zero spread collapses the normal reference rule, the bandwidth
	// floor keeps the kernel usable
	d, err := EstimateWaitingTimeSmoothed(ctx, now, sameDayRecords(now, 3, 3, 3, 3, 3))
	if err != nil {
		t.Fatalf("EstimateWaitingTimeSmoothed failed: %v", err)
	}

	if d.MaxDay() != 5 {
		t.Fatalf("max day: got %v, want 5", d.MaxDay())
	}
	waitingTime := d.WaitingTime()
	checkFloat(t, "mass below center", waitingTime[2], 0.4772, 5e-3)
	checkFloat(t, "symmetry", waitingTime[2], waitingTime[3], testEps)
	checkFloat(t, "mean", d.Mean(), 2.5, 0.05)
}

func TestSmoothedTooFewRecords(t *testing.T) {
	ctx := context.Background()
	now := int64(100 * 24 * 3600)

	_, err := EstimateWaitingTimeSmoothed(ctx, now, sameDayRecords(now, 1, 2, 3))
	if !errors.Is(err, common.ErrorTooFewRecords) {
		t.Fatalf("error = %v, want %v", err, common.ErrorTooFewRecords)
	}
}

func TestTrackerEstimateSmoothed(t *testing.T) {
	ctx := context.Background()
	base := int64(100 * 24 * 3600)

	tracker := NewTracker("order-delay")
	for i := 0; i < 6; i++ {
		tracker.Append(ctx, sameDayRecords(base+int64(i*60), 2)[0])
	}

	d, err := tracker.EstimateSmoothed(ctx)
	if err != nil {
		t.Fatalf("EstimateSmoothed failed: %v", err)
	}
	if d.MaxDay() != 4 {
		t.Fatalf("max day: got %v, want 4", d.MaxDay())
	}
	checkFloat(t, "mean", d.Mean(), 1.5, 0.05)
}

func TestNormalReferenceBandwidth(t *testing.T) {
	// spread out delays: sigma is the sample standard deviation, the
	// rule gives 1.0592 * A * n^(-1/5)
	delays := []float64{2, 2, 2, 4, 4}
	want := 2 * math.Pow(1.0/24.0, 0.2) * 1.0954451150103321 * math.Pow(5, -0.2)
	checkFloat(t, "bandwidth", normalReferenceBandwidth(delays), want, 1e-9)

	if got := normalReferenceBandwidth([]float64{3, 3, 3}); got != 0 {
		t.Fatalf("degenerate bandwidth: got %v, want 0", got)
	}
}

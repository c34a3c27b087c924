package empirical

const (
	// 0.95365 ^ 30 ~= 0.24, a month old record keeps about a quarter of
	// the weight of a fresh one
	WeightDecayFactor = 0.95365

	ClipUpperZScore = 3.0
	ClipLowerZScore = 3.0

	MinEstimateRecordCnt = 5

	// smoothed estimation: kernel support cut and the bandwidth floor
	// that keeps identical delays from collapsing the kernel
	SmoothCut          = 3.0
	MinSmoothBandwidth = 0.5
	SmoothQuadNodes    = 50

	// tracker cache bounds
	RetentionDays     = 90
	MaxTrackedRecords = 10000
)

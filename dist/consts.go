package dist

const (
	// NormalizeEps bounds |sum - 1| under which a waiting time pmf is
	// accepted as already normalized.
	NormalizeEps = 1e-9

	// TailTolerance is the probability mass allowed to stay beyond the
	// discretized support of a parametric waiting time. normalization
	// folds the truncated tail back into the kept days.
	// TailTolerance = 1e-4
	TailTolerance = 1e-3

	// MaxSupportDays caps a discretized support, guarding against
	// parameters whose tail never reaches the tolerance.
	MaxSupportDays = 100000
)

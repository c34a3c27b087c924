package dist

// quantileIndex returns the smallest index whose cumulative mass
// reaches p. The running sum is Kahan compensated so long supports stay
// stable. For p above the total mass it returns the last index with
// positive mass, for p <= 0 it returns 0.
func quantileIndex(pmf []float64, p float64) int {
	sum := 0.0
	comp := 0.0
	lastPositive := 0
	for day, w := range pmf {
		y := w - comp
		t := sum + y
		comp = (t - sum) - y
		sum = t
		if p <= sum {
			return day
		}
		if w > 0 {
			lastPositive = day
		}
	}
	return lastPositive
}

func copyFloats(values []float64) []float64 {
	res := make([]float64, len(values))
	copy(res, values)
	return res
}

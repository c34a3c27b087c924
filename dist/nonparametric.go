package dist

// Nonparametric is a waiting time distribution given directly as a
// sequence of day weights, one per day starting at day 0.
type Nonparametric struct {
	discreteDist
}

// NewNonparametric builds the distribution from raw waiting time
// weights. Weights that do not already sum to one are normalized, so
// callers may pass counts as well as probabilities.
func NewNonparametric(weights []float64) (*Nonparametric, error) {
	core, err := newDiscreteDist(NameNonparametric, weights)
	if err != nil {
		return nil, err
	}
	return &Nonparametric{discreteDist: core}, nil
}

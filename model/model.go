package model

import "math"

// DistConfig selects one waiting time distribution variant by name and
// carries the parameters of that variant. Only the fields of the chosen
// variant need to be set, the rest stay zero.
type DistConfig struct {
	Name string `json:"name"`

	// nonparametric: raw day weights, normalized on construction
	WaitingTime []float64 `json:"waiting_time,omitempty"`

	// gamma and weibull
	Shape float64 `json:"shape,omitempty"`
	// gamma and exponential
	Rate float64 `json:"rate,omitempty"`
	// weibull
	Scale float64 `json:"scale,omitempty"`
	// lognormal
	Mu    float64 `json:"mu,omitempty"`
	Sigma float64 `json:"sigma,omitempty"`
	// constant: the event occurs after exactly Days days
	Days int `json:"days,omitempty"`
	// transitionProb: fixed per day transition probability
	TransitionProb float64 `json:"transition_prob,omitempty"`
}

// DelayRecord is one observed waiting time: an event that took Days days
// to occur, observed at Timestamp.
type DelayRecord struct {
	Timestamp int64   `json:"t,omitempty"`
	Days      float64 `json:"d,omitempty"`
}

func (r *DelayRecord) Valid() bool {
	if r == nil || r.Timestamp <= 0 {
		return false
	}
	if math.IsNaN(r.Days) || math.IsInf(r.Days, 0) {
		return false
	}
	return r.Days >= 0
}

func (r *DelayRecord) Before(record DelayRecord) bool {
	return r.Timestamp < record.Timestamp
}

// Clip bounds the delays kept for an estimation.
type Clip struct {
	Lower float64
	Upper float64
}

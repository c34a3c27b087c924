package common

import "errors"

var (
	ErrorInvalidValue        = errors.New("invalid value")
	ErrorEmptyDistribution   = errors.New("empty waiting time distribution")
	ErrorZeroMass            = errors.New("waiting time distribution has no mass")
	ErrorZeroTailMass        = errors.New("waiting time distribution ends with zero mass")
	ErrorUnknownDistribution = errors.New("unknown distribution name")
	ErrorTooFewRecords       = errors.New("too few delay records")
)

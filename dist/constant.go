package dist

import (
	"fmt"

	"github.com/uyouii/survival-algorithms/common"
)

// Constant is the fixed delay waiting time: the event occurs after
// exactly Days days. Its pmf is a point mass on day Days, the hazard is
// 0 on every earlier day and 1 from the boundary on.
type Constant struct {
	discreteDist
	Days int
}

func NewConstant(days int) (*Constant, error) {
	if days < 0 {
		return nil, fmt.Errorf("%w: constant delay of %d days", common.ErrorInvalidValue, days)
	}
	pmf := make([]float64, days+1)
	pmf[days] = 1
	core, err := newDiscreteDist(NameConstant, pmf)
	if err != nil {
		return nil, err
	}
	return &Constant{discreteDist: core, Days: days}, nil
}

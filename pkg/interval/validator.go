package interval

import (
	"github.com/zetamarkets/pyth-history/pkg/errors"
)

// ValidateRange checks that [from, to) is ordered and holds at most maxPoints
// windows of the interval. A maxPoints of zero or less disables the cap.
func (i Interval) ValidateRange(from, to uint64, maxPoints int) error {
	if from > to {
		return errors.NewErrorDetails("from cannot be after to", string(errors.GeneralBadRequestError), "from")
	}

	res := i.Millis()
	if res == 0 {
		return errors.NewErrorDetailsWithObject("Resolution has zero width", string(errors.InvalidResolutionError), "resolution", i.Name)
	}

	if maxPoints > 0 && (to-from)/res > uint64(maxPoints) {
		return errors.NewErrorDetailsWithObject("Time range too large for resolution", string(errors.GeneralBadRequestError), "to", i.Name)
	}
	return nil
}

package storage

import (
	"fmt"
	"time"

	"github.com/hammamikhairi/ottopantry/internal/domain"
)

// RangeError reports a rejected date interval. It matches
// domain.ErrInvalidDateRange with errors.Is.
type RangeError struct {
	Lower, Upper time.Time
	Reason       string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s (%s..%s)", e.Reason, domain.FormatDate(e.Lower), domain.FormatDate(e.Upper))
}

func (e *RangeError) Unwrap() error {
	return domain.ErrInvalidDateRange
}

package analytics

import "errors"

var ErrInvalidPeriod = errors.New("period must be one of daily, weekly, monthly, yearly")

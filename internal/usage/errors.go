package usage

import "errors"

var (
	// ErrLimitReached indicates today's counter for the tier has hit its ceiling.
	ErrLimitReached = errors.New("usage limit exceeded for today")
	// ErrNoRecordForToday indicates no usage-limit record was provisioned
	// for today's date; requests are denied rather than left uncapped.
	ErrNoRecordForToday = errors.New("no usage limit record for today")
)

// Status derivation for contracts.
//
// The lifecycle status is a pure function of the contract end date and
// the reference moment "now". Both sides are truncated to UTC midnight
// before comparison so that the whole calendar day of the end date
// counts, regardless of the wall-clock time of the request.

package domain

import "time"

// DateLayout is the calendar date format used for start_date and
// end_date throughout the system.
const DateLayout = "2006-01-02"

// ExpiryWindowDays is the number of days before the end date during
// which a contract is considered expiring. The boundary is inclusive:
// a contract ending today is expiring, not expired.
const ExpiryWindowDays = 30

// DaysRemaining returns the number of whole days from now until the
// contract end date, comparing UTC midnights. Zero means the contract
// ends today; negative values mean the end date has passed.
//
// End dates that do not parse as DateLayout report ok=false; callers
// treat those records as expired rather than failing the whole read.
func DaysRemaining(endDate string, now time.Time) (days int, ok bool) {
	end, err := time.Parse(DateLayout, endDate)
	if err != nil {
		return 0, false
	}
	today := time.Date(now.UTC().Year(), now.UTC().Month(), now.UTC().Day(), 0, 0, 0, 0, time.UTC)
	return int(end.Sub(today).Hours() / 24), true
}

// DeriveStatus computes the lifecycle status of a contract from its end
// date relative to now:
//
//	daysRemaining < 0            -> expired
//	0 <= daysRemaining <= 30     -> expiring (inclusive on both ends)
//	daysRemaining > 30           -> active
//
// Re-deriving with the same inputs always yields the same result.
func DeriveStatus(endDate string, now time.Time) Status {
	days, ok := DaysRemaining(endDate, now)
	if !ok {
		return StatusExpired
	}
	switch {
	case days < 0:
		return StatusExpired
	case days <= ExpiryWindowDays:
		return StatusExpiring
	default:
		return StatusActive
	}
}

// Refresh recomputes and stores the derived status of c as of now.
// Every read path calls this before returning a contract; the value
// previously serialized to disk is never trusted.
func (c *Contract) Refresh(now time.Time) {
	c.Status = DeriveStatus(c.EndDate, now)
}

package contract

import "time"

// TimeWindow is the optional validity window asserted by the transaction
// proposer, used as an approximation of "now" during verification. Either
// bound may be absent; the zero TimeWindow has no bounds at all.
type TimeWindow struct {
	from     time.Time
	until    time.Time
	hasFrom  bool
	hasUntil bool
}

// TimeWindowBetween creates a window with both a lower and an upper bound.
func TimeWindowBetween(from time.Time, until time.Time) TimeWindow {
	return TimeWindow{from: from, until: until, hasFrom: true, hasUntil: true}
}

// TimeWindowFrom creates a window with only a lower bound.
func TimeWindowFrom(from time.Time) TimeWindow {
	return TimeWindow{from: from, hasFrom: true}
}

// TimeWindowUntil creates a window with only an upper bound.
func TimeWindowUntil(until time.Time) TimeWindow {
	return TimeWindow{until: until, hasUntil: true}
}

// FromTime returns the lower bound and whether it is present.
func (w TimeWindow) FromTime() (time.Time, bool) {
	return w.from, w.hasFrom
}

// UntilTime returns the upper bound and whether it is present.
func (w TimeWindow) UntilTime() (time.Time, bool) {
	return w.until, w.hasUntil
}

package retention

import (
	"errors"
	"sort"
)

// Errors returned by ladder validation and conversions.
var (
	ErrLadderMismatch = errors.New("retention: times and carbons differ in length")
	ErrLadderTooShort = errors.New("retention: ladder needs at least two alkanes")
	ErrLadderOrder    = errors.New("retention: ladder is not strictly monotonic")
)

// Ladder is a reference series of n-alkane retention times paired with
// their carbon numbers. Times must be strictly descending and Carbons
// strictly descending alongside them, so that the longest-retained alkane
// (highest carbon number) comes first.
//
// Conversions only verify the length preconditions; ordering is the
// caller's contract. A ladder with equal adjacent times produces NaN or
// Inf results rather than an error, so callers assembling ladders from
// untrusted tables should run [Ladder.Validate] first.
type Ladder struct {
	Times   []float64 // alkane retention times, strictly descending
	Carbons []float64 // carbon numbers, paired by index
}

// check verifies the structural preconditions required by every conversion.
func (l Ladder) check() error {
	if len(l.Times) != len(l.Carbons) {
		return ErrLadderMismatch
	}

	if len(l.Times) < 2 {
		return ErrLadderTooShort
	}

	return nil
}

// Validate checks the full ladder contract: equal lengths, at least two
// alkanes, strictly descending times, and strictly descending carbon
// numbers.
func (l Ladder) Validate() error {
	err := l.check()
	if err != nil {
		return err
	}

	for i := 1; i < len(l.Times); i++ {
		if l.Times[i] >= l.Times[i-1] {
			return ErrLadderOrder
		}

		if l.Carbons[i] >= l.Carbons[i-1] {
			return ErrLadderOrder
		}
	}

	return nil
}

// MinTime returns the retention time of the earliest-eluting alkane.
// Panics on an empty ladder.
func (l Ladder) MinTime() float64 {
	return l.Times[len(l.Times)-1]
}

// MaxTime returns the retention time of the latest-eluting alkane.
// Panics on an empty ladder.
func (l Ladder) MaxTime() float64 {
	return l.Times[0]
}

// locate finds the bracketing interval for query in a strictly descending
// series. It returns the zero-based index pos of the interval's
// smaller-valued endpoint, so the bracket is
// [series[pos-1], series[pos]] with pos in [1, len(series)-1].
//
// The search counts the elements strictly greater than query, which is
// the first index whose value is <= query. Queries outside the series
// span clamp to the nearest interval and report clamped=true.
func locate(series []float64, query float64) (pos int, clamped bool) {
	n := len(series)

	pos = sort.Search(n, func(i int) bool { return series[i] <= query })
	clamped = query > series[0] || query < series[n-1]

	if pos < 1 {
		pos = 1
	}

	if pos > n-1 {
		pos = n - 1
	}

	return pos, clamped
}

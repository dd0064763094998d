// Package retention converts gas-chromatography retention times to
// Van Den Dool & Kratz retention indices and back.
//
// A [Ladder] pairs the retention times of a homologous n-alkane series
// with their carbon numbers. Conversions interpolate linearly between the
// two alkanes bracketing the query:
//
//	RI = 100 * (n + (rt - t_n) / (t_N - t_n))
//
// where t_n and t_N are the retention times of the alkanes with n and n+1
// carbons. The inverse direction solves the same equation for rt. Queries
// outside the ladder's span are extrapolated from the nearest interval; an
// optional warning callback reports them.
//
// # Usage
//
// Load an alkane ladder from a standards run, then convert peak retention
// times to indices:
//
//	l := retention.Ladder{
//	    Times:   []float64{28.10, 25.60, 22.90, 20.20, 17.20},
//	    Carbons: []float64{16, 15, 14, 13, 12},
//	}
//	ris, err := l.IndicesForTimes(peakTimes)
//
// To be notified of out-of-range queries:
//
//	ri, err := l.IndexForTime(rt, retention.WithWarningFunc(func(w retention.RangeWarning) {
//	    log.Println(w)
//	}))
//
// [Ladder.KovatsIndexForTime] provides the logarithmic (isothermal) index
// variant on the same ladder.
package retention

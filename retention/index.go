package retention

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// IsUndefined reports whether v is the undefined sentinel returned for a
// zero retention time.
func IsUndefined(v float64) bool {
	return math.IsNaN(v)
}

// IndexForTime converts one retention time to a Van Den Dool & Kratz
// retention index by linear interpolation between the two bracketing
// alkanes:
//
//	RI = 100 * (n + (rt - t_n) / (t_N - t_n))
//
// A retention time of exactly zero (a non-detected compound) yields the
// undefined sentinel, see [IsUndefined]. Times outside the ladder's span
// are extrapolated from the nearest interval and reported through
// [WithWarningFunc].
func (l Ladder) IndexForTime(rt float64, opts ...Option) (float64, error) {
	err := l.check()
	if err != nil {
		return 0, err
	}

	cfg := applyOptions(opts)

	return l.indexForTime(rt, &cfg), nil
}

// TimeForIndex converts one retention index back to a retention time. It
// is the algebraic inverse of [Ladder.IndexForTime]:
//
//	rt = t_n + (RI/100 - n) * (t_N - t_n)
//
// There is no zero special case in this direction: an index of zero is
// extrapolated like any other out-of-range query.
func (l Ladder) TimeForIndex(ri float64, opts ...Option) (float64, error) {
	err := l.check()
	if err != nil {
		return 0, err
	}

	cfg := applyOptions(opts)

	return l.timeForIndex(ri, l.indexLadder(), &cfg), nil
}

// IndicesForTimes converts retention times to retention indices
// element-wise. The result has the same length and order as rts. The
// ladder preconditions are checked once for the whole batch; on error no
// partial result is returned.
func (l Ladder) IndicesForTimes(rts []float64, opts ...Option) ([]float64, error) {
	err := l.check()
	if err != nil {
		return nil, err
	}

	cfg := applyOptions(opts)

	out := make([]float64, len(rts))
	for i, rt := range rts {
		out[i] = l.indexForTime(rt, &cfg)
	}

	return out, nil
}

// TimesForIndices converts retention indices to retention times
// element-wise. The result has the same length and order as ris. The
// ladder preconditions are checked once for the whole batch; on error no
// partial result is returned.
func (l Ladder) TimesForIndices(ris []float64, opts ...Option) ([]float64, error) {
	err := l.check()
	if err != nil {
		return nil, err
	}

	cfg := applyOptions(opts)
	ladder := l.indexLadder()

	out := make([]float64, len(ris))
	for i, ri := range ris {
		out[i] = l.timeForIndex(ri, ladder, &cfg)
	}

	return out, nil
}

func (l Ladder) indexForTime(rt float64, cfg *config) float64 {
	if rt == 0 {
		return math.NaN()
	}

	pos, clamped := locate(l.Times, rt)
	if clamped {
		cfg.emit(RangeWarning{Query: rt, Min: l.MinTime(), Max: l.MaxTime()})
	}

	tn := l.Times[pos]
	tN := l.Times[pos-1]
	n := l.Carbons[pos]

	return 100 * (n + (rt-tn)/(tN-tn))
}

func (l Ladder) timeForIndex(ri float64, ris []float64, cfg *config) float64 {
	pos, clamped := locate(ris, ri)
	if clamped {
		cfg.emit(RangeWarning{Query: ri, Min: ris[len(ris)-1], Max: ris[0]})
	}

	tn := l.Times[pos]
	tN := l.Times[pos-1]
	n := l.Carbons[pos]

	return tn + (ri/100-n)*(tN-tn)
}

// indexLadder returns the retention-index value of every rung
// (carbon number times 100), descending alongside Times.
func (l Ladder) indexLadder() []float64 {
	out := make([]float64, len(l.Carbons))
	vecmath.ScaleBlock(out, l.Carbons, 100)

	return out
}

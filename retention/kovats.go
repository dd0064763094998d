package retention

import "math"

// KovatsIndexForTime converts one retention time to a Kovats (isothermal)
// retention index, the logarithmic counterpart of [Ladder.IndexForTime]:
//
//	RI = 100 * (n + (log10 rt - log10 t_n) / (log10 t_N - log10 t_n))
//
// Bracketing, the zero-time sentinel, and out-of-range extrapolation
// behave exactly as in the linear form. Negative retention times have no
// logarithm and yield NaN.
func (l Ladder) KovatsIndexForTime(rt float64, opts ...Option) (float64, error) {
	err := l.check()
	if err != nil {
		return 0, err
	}

	cfg := applyOptions(opts)

	return l.kovatsIndexForTime(rt, &cfg), nil
}

// KovatsIndicesForTimes converts retention times to Kovats indices
// element-wise, with the same batch semantics as [Ladder.IndicesForTimes].
func (l Ladder) KovatsIndicesForTimes(rts []float64, opts ...Option) ([]float64, error) {
	err := l.check()
	if err != nil {
		return nil, err
	}

	cfg := applyOptions(opts)

	out := make([]float64, len(rts))
	for i, rt := range rts {
		out[i] = l.kovatsIndexForTime(rt, &cfg)
	}

	return out, nil
}

func (l Ladder) kovatsIndexForTime(rt float64, cfg *config) float64 {
	if rt == 0 {
		return math.NaN()
	}

	pos, clamped := locate(l.Times, rt)
	if clamped {
		cfg.emit(RangeWarning{Query: rt, Min: l.MinTime(), Max: l.MaxTime()})
	}

	logTn := math.Log10(l.Times[pos])
	logTN := math.Log10(l.Times[pos-1])
	n := l.Carbons[pos]

	return 100 * (n + (math.Log10(rt)-logTn)/(logTN-logTn))
}

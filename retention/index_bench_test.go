package retention

import "testing"

func BenchmarkIndexForTime(b *testing.B) {
	b.ResetTimer()

	for b.Loop() {
		if _, err := alkaneC6C20.IndexForTime(11.237); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkIndicesForTimes(b *testing.B) {
	rts := make([]float64, 1000)
	for i := range rts {
		rts[i] = 2.0 + float64(i)*0.035
	}

	b.ResetTimer()

	for b.Loop() {
		if _, err := alkaneC6C20.IndicesForTimes(rts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTimesForIndices(b *testing.B) {
	ris := make([]float64, 1000)
	for i := range ris {
		ris[i] = 600 + float64(i)*1.4
	}

	b.ResetTimer()

	for b.Loop() {
		if _, err := alkaneC6C20.TimesForIndices(ris); err != nil {
			b.Fatal(err)
		}
	}
}

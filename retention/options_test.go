package retention

import "testing"

func TestRangeWarningString(t *testing.T) {
	tests := []struct {
		name string
		warn RangeWarning
		want string
	}{
		{
			"below span",
			RangeWarning{Query: 1, Min: 1.88, Max: 37.30},
			"retention: query 1 earlier than smallest reference 1.88, extrapolating",
		},
		{
			"above span",
			RangeWarning{Query: 40, Min: 1.88, Max: 37.30},
			"retention: query 40 later than largest reference 37.3, extrapolating",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.warn.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNilOptionIgnored(t *testing.T) {
	ri, err := alkaneC6C20.IndexForTime(11.237, nil)
	if err != nil {
		t.Fatal(err)
	}

	if IsUndefined(ri) {
		t.Fatal("unexpected undefined result")
	}
}

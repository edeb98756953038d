package service

import "testing"

func TestProbabilisticAdmission(t *testing.T) {
	cases := []struct {
		name string
		p    float64
		roll float64
		want bool
	}{
		{"zero admits", 0, 0, true},
		{"negative clamps to zero", -0.5, 0, true},
		{"roll below p drops", 0.3, 0.29, false},
		{"roll at p admits", 0.3, 0.3, true},
		{"one drops everything", 1, 0.999999, false},
		{"above one clamps", 7, 0.5, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := NewProbabilisticAdmission(tc.p)
			a.rnd = func() float64 { return tc.roll }
			if got := a.Admit(); got != tc.want {
				t.Fatalf("Admit()=%v, want %v", got, tc.want)
			}
		})
	}
}

func TestAcceptAll(t *testing.T) {
	for range 10 {
		if !(AcceptAll{}).Admit() {
			t.Fatal("AcceptAll rejected a batch")
		}
	}
}

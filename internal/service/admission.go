package service

import "math/rand/v2"

// Admission decides whether an incoming condition batch is processed.
type Admission interface {
	Admit() bool
}

// AcceptAll admits every batch.
type AcceptAll struct{}

func (AcceptAll) Admit() bool { return true }

// ProbabilisticAdmission drops a batch with the configured probability.
type ProbabilisticAdmission struct {
	dropProbability float64
	rnd             func() float64
}

// NewProbabilisticAdmission clamps p to [0, 1]. Zero admits everything; one drops everything.
func NewProbabilisticAdmission(p float64) *ProbabilisticAdmission {
	return &ProbabilisticAdmission{dropProbability: min(max(p, 0), 1), rnd: rand.Float64}
}

func (a *ProbabilisticAdmission) Admit() bool {
	if a.dropProbability <= 0 {
		return true
	}
	return a.rnd() >= a.dropProbability
}

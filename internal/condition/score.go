package condition

import "condition_monitor/internal/models"

// Percentage is the share of records, 0..100, with each property set.
type Percentage struct {
	Sitting      int `json:"sitting"`
	IsBroken     int `json:"is_broken"`
	IsDirty      int `json:"is_dirty"`
	IsOverweight int `json:"is_overweight"`
}

// ScoreData summarizes one hour of records.
type ScoreData struct {
	Score      int        `json:"score"`
	Percentage Percentage `json:"percentage"`
}

// Reduce computes the comfort score of a non-empty group of same-hour records.
// Each record weighs 3 (info), 2 (warning) or 1 (critical); the score is the
// weight sum scaled to 0..100 with a single truncating division.
func Reduce(group []models.ConditionRecord) (ScoreData, error) {
	n := len(group)
	if n == 0 {
		return ScoreData{}, ErrEmptyGroup
	}

	var rawScore, sitting, dirty, overweight, broken int
	for _, rec := range group {
		f, err := RecordFlags(rec)
		if err != nil {
			return ScoreData{}, err
		}
		rawScore += Classify(f).weight()

		if rec.IsSitting {
			sitting++
		}
		if f.IsDirty {
			dirty++
		}
		if f.IsOverweight {
			overweight++
		}
		if f.IsBroken {
			broken++
		}
	}

	return ScoreData{
		Score: rawScore * 100 / (weightMax * n),
		Percentage: Percentage{
			Sitting:      percent(sitting, n),
			IsBroken:     percent(broken, n),
			IsDirty:      percent(dirty, n),
			IsOverweight: percent(overweight, n),
		},
	}, nil
}

func percent(count, n int) int {
	return count * 100 / n
}

package condition

import (
	"errors"
	"testing"
	"time"

	"condition_monitor/internal/models"
)

var jst = time.FixedZone("+09:00", 9*60*60)

func record(ts time.Time, sitting bool, f Flags) models.ConditionRecord {
	return models.ConditionRecord{
		DeviceUUID: "0694e4d7-dfce-4aec-b7ca-887ac42cfb8f",
		Timestamp:  ts,
		IsSitting:  sitting,
		Raw:        Format(f),
		Message:    "ok",
	}
}

var (
	flagsNone = Flags{}
	flagsOne  = Flags{IsDirty: true}
	flagsTwo  = Flags{IsDirty: true, IsOverweight: true}
	flagsAll  = Flags{IsDirty: true, IsOverweight: true, IsBroken: true}
)

func TestReduce_SingleInfoSitting(t *testing.T) {
	t.Parallel()

	ts := time.Date(2021, 8, 1, 10, 0, 0, 0, jst)
	got, err := Reduce([]models.ConditionRecord{record(ts, true, flagsNone)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := ScoreData{Score: 100, Percentage: Percentage{Sitting: 100}}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestReduce_Table(t *testing.T) {
	t.Parallel()

	ts := time.Date(2021, 8, 1, 10, 0, 0, 0, jst)
	cases := []struct {
		name  string
		group []models.ConditionRecord
		want  ScoreData
	}{
		{
			name:  "info and critical",
			group: []models.ConditionRecord{record(ts, false, flagsNone), record(ts.Add(time.Minute), true, flagsAll)},
			// raw 4, N 2 -> 400/6
			want: ScoreData{Score: 66, Percentage: Percentage{Sitting: 50, IsBroken: 50, IsDirty: 50, IsOverweight: 50}},
		},
		{
			name:  "all warning",
			group: []models.ConditionRecord{record(ts, true, flagsOne), record(ts, true, flagsTwo)},
			want:  ScoreData{Score: 66, Percentage: Percentage{Sitting: 100, IsDirty: 100, IsOverweight: 50}},
		},
		{
			name: "three mixed",
			group: []models.ConditionRecord{
				record(ts, false, flagsOne),
				record(ts, true, flagsTwo),
				record(ts, false, flagsAll),
			},
			// raw 2+2+1 = 5 -> 500/9
			want: ScoreData{Score: 55, Percentage: Percentage{Sitting: 33, IsBroken: 33, IsDirty: 100, IsOverweight: 66}},
		},
		{
			name:  "single critical",
			group: []models.ConditionRecord{record(ts, false, flagsAll)},
			want:  ScoreData{Score: 33, Percentage: Percentage{IsBroken: 100, IsDirty: 100, IsOverweight: 100}},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := Reduce(tc.group)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestReduce_EmptyGroup(t *testing.T) {
	t.Parallel()

	if _, err := Reduce(nil); !errors.Is(err, ErrEmptyGroup) {
		t.Fatalf("expected ErrEmptyGroup, got %v", err)
	}
}

func TestReduce_CorruptRecord(t *testing.T) {
	t.Parallel()

	bad := models.ConditionRecord{Timestamp: time.Now(), Raw: "is_dirty=maybe"}
	_, err := Reduce([]models.ConditionRecord{bad})
	var ce *ClassificationError
	if !errors.As(err, &ce) {
		t.Fatalf("expected *ClassificationError, got %v", err)
	}
}

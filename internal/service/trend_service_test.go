package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"condition_monitor/internal/condition"
	"condition_monitor/internal/models"
)

func TestTrendService_CurrentTrend(t *testing.T) {
	t.Parallel()

	devices := &fakeDeviceRepo{}
	conditions := newFakeConditionRepo()
	ctx := context.Background()
	now := time.Date(2021, 8, 1, 12, 0, 0, 0, jst)

	raws := []string{rawInfo, rawWarning, rawCritical}
	for i := 0; i < 12; i++ {
		id := fmt.Sprintf("00000000-0000-0000-0000-%012d", i)
		category := []string{"sofa", "bed"}[i%2]
		devices.devices = append(devices.devices, models.Device{ID: int64(i + 1), UUID: id, Name: id, Category: category})
		if i == 11 {
			continue // no history
		}
		_ = conditions.AppendBatch(ctx, id, []models.ConditionRecord{
			{Timestamp: now.Add(-time.Hour), Raw: rawCritical},
			{Timestamp: now.Add(time.Duration(i) * time.Minute), Raw: raws[i%3]},
		})
	}

	got, err := NewTrendService(devices, conditions, condition.TrendSplit, 4).CurrentTrend(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].Category != "bed" || got[1].Category != "sofa" {
		t.Fatalf("unexpected categories %+v", got)
	}

	total := 0
	for _, ct := range got {
		for _, list := range [][]condition.TrendEntry{ct.Info, ct.Warning, ct.Critical} {
			total += len(list)
			for i := 1; i < len(list); i++ {
				if list[i].Timestamp.After(list[i-1].Timestamp) {
					t.Fatalf("%s: list not sorted newest first", ct.Category)
				}
			}
			for _, e := range list {
				if e.DeviceID == 12 {
					t.Fatalf("device without history must be excluded")
				}
				if e.Timestamp.Equal(now.Add(-time.Hour)) {
					t.Fatalf("only the latest record of a device may be ranked")
				}
			}
		}
	}
	if total != 11 {
		t.Fatalf("expected 11 ranked devices, got %d", total)
	}
}

func TestTrendService_CurrentTrend_Combined(t *testing.T) {
	t.Parallel()

	devices := &fakeDeviceRepo{devices: []models.Device{{ID: 1, UUID: uuidA, Category: "sofa"}}}
	conditions := newFakeConditionRepo()
	_ = conditions.AppendBatch(context.Background(), uuidA, []models.ConditionRecord{{Timestamp: time.Unix(1627776000, 0), Raw: rawWarning}})

	got, err := NewTrendService(devices, conditions, condition.TrendCombined, 0).CurrentTrend(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got[0].Entries) != 1 || got[0].Entries[0].Level != condition.LevelWarning {
		t.Fatalf("unexpected combined trend %+v", got[0])
	}
}

func TestTrendService_CurrentTrend_LookupError(t *testing.T) {
	t.Parallel()

	devices := &fakeDeviceRepo{devices: []models.Device{{ID: 1, UUID: uuidA, Category: "sofa"}, {ID: 2, UUID: uuidB, Category: "bed"}}}
	conditions := newFakeConditionRepo()
	conditions.latestErr = errRepoDown

	if _, err := NewTrendService(devices, conditions, condition.TrendSplit, 2).CurrentTrend(context.Background()); !errors.Is(err, errRepoDown) {
		t.Fatalf("expected repo error, got %v", err)
	}
}

func TestTrendService_CurrentTrend_Empty(t *testing.T) {
	t.Parallel()

	got, err := NewTrendService(&fakeDeviceRepo{}, newFakeConditionRepo(), condition.TrendSplit, 2).CurrentTrend(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no categories, got %d", len(got))
	}
}

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"condition_monitor/internal/condition"
	"condition_monitor/internal/models"
)

func newConditionFixture(t *testing.T, n int, defaultLimit int) (*ConditionService, time.Time) {
	t.Helper()

	devices := &fakeDeviceRepo{devices: []models.Device{{ID: 1, UUID: uuidA, Name: "chair", Category: "sofa", OwnerID: 7}}}
	conditions := newFakeConditionRepo()
	base := time.Date(2021, 8, 1, 0, 0, 0, 0, jst)
	raws := []string{rawInfo, rawWarning, rawCritical}
	batch := make([]models.ConditionRecord, 0, n)
	for i := 0; i < n; i++ {
		batch = append(batch, models.ConditionRecord{Timestamp: base.Add(time.Duration(i) * time.Minute), Raw: raws[i%3]})
	}
	_ = conditions.AppendBatch(context.Background(), uuidA, batch)

	return NewConditionService(NewDeviceService(devices, conditions), conditions, defaultLimit), base.Add(time.Duration(n) * time.Minute)
}

func TestConditionService_ListConditions_Defaults(t *testing.T) {
	t.Parallel()

	svc, end := newConditionFixture(t, 100, 0)
	got, err := svc.ListConditions(context.Background(), 7, uuidA, ConditionQuery{EndTime: end})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != condition.DefaultConditionLimit {
		t.Fatalf("expected default limit %d, got %d", condition.DefaultConditionLimit, len(got))
	}
	if !got[0].Timestamp.Equal(end.Add(-time.Minute)) {
		t.Fatalf("expected newest first, got %v", got[0].Timestamp)
	}
	if got[0].DeviceName != "chair" {
		t.Fatalf("unexpected device name %q", got[0].DeviceName)
	}
}

func TestConditionService_ListConditions_CriticalOnly(t *testing.T) {
	t.Parallel()

	svc, end := newConditionFixture(t, 30, 20)
	got, err := svc.ListConditions(context.Background(), 7, uuidA, ConditionQuery{
		EndTime:   end,
		StartTime: end.Add(-15 * time.Minute),
		Levels:    condition.NewLevelSet(condition.LevelCritical),
		Limit:     3,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 results, got %d", len(got))
	}
	for _, s := range got {
		if s.Level != condition.LevelCritical {
			t.Fatalf("unexpected level %s", s.Level)
		}
		if s.Timestamp.Before(end.Add(-15*time.Minute)) || !s.Timestamp.Before(end) {
			t.Fatalf("timestamp %v out of range", s.Timestamp)
		}
	}
}

func TestConditionService_ListConditions_UnknownDevice(t *testing.T) {
	t.Parallel()

	svc, end := newConditionFixture(t, 1, 20)
	if _, err := svc.ListConditions(context.Background(), 8, uuidA, ConditionQuery{EndTime: end}); !errors.Is(err, ErrDeviceNotFound) {
		t.Fatalf("expected ErrDeviceNotFound, got %v", err)
	}
}

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"condition_monitor/internal/condition"
	"condition_monitor/internal/models"
)

const (
	uuidA = "0694e4d7-dfce-4aec-b7ca-887ac42cfb8f"
	uuidB = "3c6a3a3e-5a55-4d7e-9b2f-0d2f1a7a6c10"
)

func TestDeviceService_RegisterDevice(t *testing.T) {
	t.Parallel()

	devices := &fakeDeviceRepo{}
	svc := NewDeviceService(devices, newFakeConditionRepo())
	ctx := context.Background()

	d, err := svc.RegisterDevice(ctx, 1, DeviceInput{UUID: " 0694E4D7-DFCE-4AEC-B7CA-887AC42CFB8F ", Name: " chair ", Category: "sofa"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.UUID != uuidA || d.Name != "chair" || d.OwnerID != 1 || d.ID != 1 {
		t.Fatalf("unexpected device %+v", d)
	}

	if _, err := svc.RegisterDevice(ctx, 2, DeviceInput{UUID: uuidA, Name: "other", Category: "bed"}); !errors.Is(err, ErrDeviceExists) {
		t.Fatalf("expected ErrDeviceExists, got %v", err)
	}
}

func TestDeviceService_RegisterDevice_Invalid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   DeviceInput
	}{
		{name: "bad uuid", in: DeviceInput{UUID: "not-a-uuid", Name: "chair", Category: "sofa"}},
		{name: "missing name", in: DeviceInput{UUID: uuidA, Name: " ", Category: "sofa"}},
		{name: "missing category", in: DeviceInput{UUID: uuidA, Name: "chair"}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			devices := &fakeDeviceRepo{}
			svc := NewDeviceService(devices, newFakeConditionRepo())
			if _, err := svc.RegisterDevice(context.Background(), 1, tc.in); !errors.Is(err, ErrInvalidDevice) {
				t.Fatalf("expected ErrInvalidDevice, got %v", err)
			}
			if len(devices.devices) != 0 {
				t.Fatalf("invalid device must not be stored")
			}
		})
	}
}

func TestDeviceService_GetDevice(t *testing.T) {
	t.Parallel()

	devices := &fakeDeviceRepo{devices: []models.Device{{ID: 1, UUID: uuidA, Name: "chair", Category: "sofa", OwnerID: 7}}}
	svc := NewDeviceService(devices, newFakeConditionRepo())
	ctx := context.Background()

	if d, err := svc.GetDevice(ctx, 7, uuidA); err != nil || d.ID != 1 {
		t.Fatalf("expected device 1, got %+v, %v", d, err)
	}
	for _, tc := range []struct {
		owner int
		uuid  string
	}{
		{owner: 8, uuid: uuidA},
		{owner: 7, uuid: uuidB},
		{owner: 7, uuid: "garbage"},
	} {
		if _, err := svc.GetDevice(ctx, tc.owner, tc.uuid); !errors.Is(err, ErrDeviceNotFound) {
			t.Fatalf("owner %d uuid %q: expected ErrDeviceNotFound, got %v", tc.owner, tc.uuid, err)
		}
	}

	devices.err = errRepoDown
	if _, err := svc.GetDevice(ctx, 7, uuidA); !errors.Is(err, errRepoDown) {
		t.Fatalf("expected repo error, got %v", err)
	}
}

func TestDeviceService_ListDevices(t *testing.T) {
	t.Parallel()

	devices := &fakeDeviceRepo{devices: []models.Device{
		{ID: 1, UUID: uuidA, Name: "old", Category: "sofa", OwnerID: 7},
		{ID: 2, UUID: uuidB, Name: "new", Category: "bed", OwnerID: 7},
	}}
	conditions := newFakeConditionRepo()
	ts := time.Date(2021, 8, 1, 10, 0, 0, 0, jst)
	_ = conditions.AppendBatch(context.Background(), uuidA, []models.ConditionRecord{
		{DeviceUUID: uuidA, Timestamp: ts, Raw: rawInfo},
		{DeviceUUID: uuidA, Timestamp: ts.Add(time.Minute), Raw: rawCritical, Message: "latest"},
	})

	got, err := NewDeviceService(devices, conditions).ListDevices(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].Device.ID != 2 || got[1].Device.ID != 1 {
		t.Fatalf("expected newest device first, got %+v", got)
	}
	if got[0].Latest != nil {
		t.Fatalf("device without history must have no latest condition")
	}
	latest := got[1].Latest
	if latest == nil || latest.Level != condition.LevelCritical || latest.Message != "latest" || latest.DeviceName != "old" {
		t.Fatalf("unexpected latest %+v", latest)
	}
}

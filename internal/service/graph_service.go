package service

import (
	"context"
	"errors"
	"time"

	"condition_monitor/internal/condition"
	"condition_monitor/internal/repository"
)

type GraphService struct {
	devices    Devices
	conditions repository.ConditionRepo
	loc        *time.Location
}

// NewGraphService buckets hours in loc; nil means condition.DefaultLocation.
func NewGraphService(devices Devices, conditions repository.ConditionRepo, loc *time.Location) *GraphService {
	if loc == nil {
		loc = condition.DefaultLocation
	}
	return &GraphService{devices: devices, conditions: conditions, loc: loc}
}

// DeviceGraph streams the device's history from the start of at's hour through
// an HourlyBucketer and stops reading once the window is passed.
func (s *GraphService) DeviceGraph(ctx context.Context, ownerID int, deviceUUID string, at time.Time) ([]condition.GraphBucket, error) {
	d, err := s.devices.GetDevice(ctx, ownerID, deviceUUID)
	if err != nil {
		return nil, err
	}

	start := condition.TruncateHour(at, s.loc)
	b, err := condition.NewHourlyBucketer(start, s.loc)
	if err != nil {
		return nil, err
	}

	err = s.conditions.StreamAsc(ctx, d.UUID, start, b.Add)
	if err != nil && !errors.Is(err, condition.ErrWindowClosed) {
		return nil, err
	}
	return b.Buckets()
}

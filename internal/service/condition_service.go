package service

import (
	"context"
	"time"

	"condition_monitor/internal/condition"
	"condition_monitor/internal/repository"
)

// ConditionQuery selects a page of a device's history. Zero StartTime is
// unbounded; zero Limit means the service default; nil Levels means all levels.
type ConditionQuery struct {
	EndTime   time.Time
	StartTime time.Time
	Levels    condition.LevelSet
	Limit     int
}

type ConditionService struct {
	devices      Devices
	conditions   repository.ConditionRepo
	defaultLimit int
}

func NewConditionService(devices Devices, conditions repository.ConditionRepo, defaultLimit int) *ConditionService {
	if defaultLimit <= 0 {
		defaultLimit = condition.DefaultConditionLimit
	}
	return &ConditionService{devices: devices, conditions: conditions, defaultLimit: defaultLimit}
}

func (s *ConditionService) ListConditions(ctx context.Context, ownerID int, deviceUUID string, q ConditionQuery) ([]condition.ConditionSummary, error) {
	d, err := s.devices.GetDevice(ctx, ownerID, deviceUUID)
	if err != nil {
		return nil, err
	}

	params := condition.FilterParams{
		EndTime:   q.EndTime,
		StartTime: q.StartTime,
		Levels:    q.Levels,
		Limit:     q.Limit,
	}
	if params.Limit == 0 {
		params.Limit = s.defaultLimit
	}
	if params.Levels == nil {
		params.Levels = condition.AllLevels()
	}

	recs, err := s.conditions.ListDesc(ctx, d.UUID, q.StartTime, q.EndTime)
	if err != nil {
		return nil, err
	}
	return condition.FilterConditions(recs, d.Name, params)
}

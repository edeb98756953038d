package service

import (
	"context"
	"fmt"

	"condition_monitor/internal/condition"
	"condition_monitor/internal/models"
	"condition_monitor/internal/repository"
)

type IngestService struct {
	devices    repository.DeviceRepo
	conditions repository.ConditionRepo
	admission  Admission
}

func NewIngestService(devices repository.DeviceRepo, conditions repository.ConditionRepo, admission Admission) *IngestService {
	if admission == nil {
		admission = AcceptAll{}
	}
	return &IngestService{devices: devices, conditions: conditions, admission: admission}
}

// PostConditions validates and stores a batch for one device. The admission
// policy runs first; a dropped batch returns ErrDropped and stores nothing. One
// malformed condition rejects the whole batch.
func (s *IngestService) PostConditions(ctx context.Context, deviceUUID string, batch []models.ConditionRecord) error {
	if !s.admission.Admit() {
		return ErrDropped
	}
	if len(batch) == 0 {
		return ErrEmptyBatch
	}

	id, err := canonicalUUID(deviceUUID)
	if err != nil {
		return ErrDeviceNotFound
	}
	d, err := s.devices.GetByUUID(ctx, id)
	if err != nil {
		return err
	}
	if d == nil {
		return ErrDeviceNotFound
	}

	recs := make([]models.ConditionRecord, len(batch))
	for i, rec := range batch {
		if err := condition.Validate(rec.Raw); err != nil {
			return fmt.Errorf("condition %d: %w", i, err)
		}
		rec.DeviceUUID = d.UUID
		recs[i] = rec
	}
	return s.conditions.AppendBatch(ctx, d.UUID, recs)
}

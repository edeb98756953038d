package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"condition_monitor/internal/condition"
	"condition_monitor/internal/models"
	"condition_monitor/internal/repository"

	"github.com/google/uuid"
)

// DeviceInput is a registration request.
type DeviceInput struct {
	UUID     string
	Name     string
	Category string
}

// DeviceSummary is a device with its newest classified condition, if any.
type DeviceSummary struct {
	Device models.Device
	Latest *condition.ConditionSummary
}

type DeviceService struct {
	devices    repository.DeviceRepo
	conditions repository.ConditionRepo
}

func NewDeviceService(devices repository.DeviceRepo, conditions repository.ConditionRepo) *DeviceService {
	return &DeviceService{devices: devices, conditions: conditions}
}

// canonicalUUID parses any accepted uuid spelling into its lowercase hyphenated form.
func canonicalUUID(s string) (string, error) {
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

func (s *DeviceService) RegisterDevice(ctx context.Context, ownerID int, in DeviceInput) (models.Device, error) {
	id, err := canonicalUUID(in.UUID)
	if err != nil {
		return models.Device{}, fmt.Errorf("%w: uuid: %v", ErrInvalidDevice, err)
	}
	d := models.Device{
		UUID:     id,
		Name:     strings.TrimSpace(in.Name),
		Category: strings.TrimSpace(in.Category),
		OwnerID:  ownerID,
	}
	if d.Name == "" || d.Category == "" {
		return models.Device{}, fmt.Errorf("%w: name and category are required", ErrInvalidDevice)
	}

	d.ID, err = s.devices.Create(ctx, d)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return models.Device{}, ErrDeviceExists
		}
		return models.Device{}, err
	}
	return d, nil
}

// GetDevice returns ErrDeviceNotFound for unknown uuids and for devices of other owners.
func (s *DeviceService) GetDevice(ctx context.Context, ownerID int, deviceUUID string) (models.Device, error) {
	id, err := canonicalUUID(deviceUUID)
	if err != nil {
		return models.Device{}, ErrDeviceNotFound
	}
	d, err := s.devices.GetByUUID(ctx, id)
	if err != nil {
		return models.Device{}, err
	}
	if d == nil || d.OwnerID != ownerID {
		return models.Device{}, ErrDeviceNotFound
	}
	return *d, nil
}

func (s *DeviceService) ListDevices(ctx context.Context, ownerID int) ([]DeviceSummary, error) {
	devices, err := s.devices.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	out := make([]DeviceSummary, 0, len(devices))
	for _, d := range devices {
		sum := DeviceSummary{Device: d}
		rec, err := s.conditions.Latest(ctx, d.UUID)
		if err != nil {
			return nil, err
		}
		if rec != nil {
			latest, err := condition.Summarize(*rec, d.Name)
			if err != nil {
				return nil, err
			}
			sum.Latest = &latest
		}
		out = append(out, sum)
	}
	return out, nil
}

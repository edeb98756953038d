package service

import (
	"context"
	"errors"
	"time"

	"condition_monitor/internal/condition"
	"condition_monitor/internal/config"
	"condition_monitor/internal/models"
	"condition_monitor/internal/repository"
)

// Domain errors shared by the device-facing services.
var (
	ErrDeviceNotFound = errors.New("device not found")
	ErrDeviceExists   = errors.New("device already registered")
	ErrInvalidDevice  = errors.New("invalid device")
	ErrEmptyBatch     = errors.New("condition batch is empty")
	ErrDropped        = errors.New("condition batch dropped by admission policy")
)

type Authorization interface {
	SignUp(username, password string) (int, error)
	GenerateToken(username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Devices registers and looks up devices owned by a user.
type Devices interface {
	RegisterDevice(ctx context.Context, ownerID int, in DeviceInput) (models.Device, error)
	GetDevice(ctx context.Context, ownerID int, deviceUUID string) (models.Device, error)
	ListDevices(ctx context.Context, ownerID int) ([]DeviceSummary, error)
}

// Ingest accepts condition batches posted by devices.
type Ingest interface {
	PostConditions(ctx context.Context, deviceUUID string, batch []models.ConditionRecord) error
}

// Graph builds the 24 hourly buckets starting at the hour containing at.
type Graph interface {
	DeviceGraph(ctx context.Context, ownerID int, deviceUUID string, at time.Time) ([]condition.GraphBucket, error)
}

// Conditions lists a device's classified history.
type Conditions interface {
	ListConditions(ctx context.Context, ownerID int, deviceUUID string, q ConditionQuery) ([]condition.ConditionSummary, error)
}

// Trend ranks the latest condition of every device per category.
type Trend interface {
	CurrentTrend(ctx context.Context) ([]condition.CategoryTrend, error)
}

// Service aggregates all sub-services.
type Service struct {
	Authorization
	Devices
	Ingest
	Graph
	Conditions
	Trend
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, cfg *config.Config) *Service {
	devices := NewDeviceService(repos.Devices, repos.Conditions)
	return &Service{
		Authorization: NewAuthService(repos.Auth, cfg.Auth.SigningKey, cfg.Auth.TokenTTL),
		Devices:       devices,
		Ingest:        NewIngestService(repos.Devices, repos.Conditions, NewProbabilisticAdmission(cfg.Ingest.DropProbability)),
		Graph:         NewGraphService(devices, repos.Conditions, cfg.Reporting.Location),
		Conditions:    NewConditionService(devices, repos.Conditions, cfg.Conditions.DefaultLimit),
		Trend:         NewTrendService(repos.Devices, repos.Conditions, cfg.Trend.ParsedShape, cfg.Trend.LookupConcurrency),
	}
}

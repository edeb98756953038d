package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"condition_monitor/internal/models"

	"github.com/jmoiron/sqlx"
)

// ErrDuplicate is returned when an insert hits a unique key that already exists.
var ErrDuplicate = errors.New("duplicate key")

type Authorization interface {
	Create(username, hash string) (int, error)
	GetByUsername(username string) (*models.User, error)
}

// DeviceRepo stores registered devices. Lookups return (nil, nil) when nothing matches.
type DeviceRepo interface {
	Create(ctx context.Context, d models.Device) (int64, error)
	GetByUUID(ctx context.Context, uuid string) (*models.Device, error)
	ListByOwner(ctx context.Context, ownerID int) ([]models.Device, error)
	ListAll(ctx context.Context) ([]models.Device, error)
}

// ConditionRepo stores condition reports keyed by (device uuid, timestamp).
type ConditionRepo interface {
	AppendBatch(ctx context.Context, deviceUUID string, recs []models.ConditionRecord) error
	// StreamAsc calls fn for each record at or after from, oldest first. A
	// non-nil error from fn stops the scan and is returned as is.
	StreamAsc(ctx context.Context, deviceUUID string, from time.Time, fn func(models.ConditionRecord) error) error
	// ListDesc returns records in [start, end), newest first. Zero start is unbounded.
	ListDesc(ctx context.Context, deviceUUID string, start, end time.Time) ([]models.ConditionRecord, error)
	Latest(ctx context.Context, deviceUUID string) (*models.ConditionRecord, error)
}

type Repository struct {
	Devices    DeviceRepo
	Conditions ConditionRepo
	Auth       Authorization
}

func NewRepository(db *sql.DB) *Repository {
	dbx := sqlx.NewDb(db, sqliteDriverName)
	return &Repository{
		Devices:    NewDeviceSQLite(dbx),
		Conditions: NewConditionSQLite(dbx),
		Auth:       NewUserSQLite(dbx),
	}
}

const sqliteDriverName = "sqlite"

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"condition_monitor/internal/models"

	"github.com/jmoiron/sqlx"
)

type DeviceSQLite struct {
	db *sqlx.DB
}

func NewDeviceSQLite(db *sqlx.DB) *DeviceSQLite { return &DeviceSQLite{db: db} }

var _ DeviceRepo = (*DeviceSQLite)(nil)

const (
	insertDeviceSQL = `INSERT INTO devices (uuid, name, category, owner_id) VALUES (?, ?, ?, ?)
ON CONFLICT(uuid) DO NOTHING`
	selectDeviceByUUIDSQL   = `SELECT id, uuid, name, category, owner_id FROM devices WHERE uuid = ?`
	selectDevicesByOwnerSQL = `SELECT id, uuid, name, category, owner_id FROM devices WHERE owner_id = ? ORDER BY id DESC`
	selectAllDevicesSQL     = `SELECT id, uuid, name, category, owner_id FROM devices ORDER BY category, id`
)

// Create registers a device and returns its numeric id. ErrDuplicate means the
// uuid is already taken.
func (r *DeviceSQLite) Create(ctx context.Context, d models.Device) (int64, error) {
	res, err := r.db.ExecContext(ctx, insertDeviceSQL, d.UUID, d.Name, d.Category, d.OwnerID)
	if err != nil {
		return 0, fmt.Errorf("insert device %q: %w", d.UUID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected for device %q: %w", d.UUID, err)
	}
	if n == 0 {
		return 0, fmt.Errorf("insert device %q: %w", d.UUID, ErrDuplicate)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for device %q: %w", d.UUID, err)
	}
	return id, nil
}

// GetByUUID returns (nil, nil) when no device has that uuid.
func (r *DeviceSQLite) GetByUUID(ctx context.Context, uuid string) (*models.Device, error) {
	var d models.Device
	if err := r.db.GetContext(ctx, &d, selectDeviceByUUIDSQL, uuid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select device %q: %w", uuid, err)
	}
	return &d, nil
}

// ListByOwner returns the owner's devices, most recently registered first.
func (r *DeviceSQLite) ListByOwner(ctx context.Context, ownerID int) ([]models.Device, error) {
	out := []models.Device{}
	if err := r.db.SelectContext(ctx, &out, selectDevicesByOwnerSQL, ownerID); err != nil {
		return nil, fmt.Errorf("select devices of owner %d: %w", ownerID, err)
	}
	return out, nil
}

// ListAll returns every device ordered by category, then id.
func (r *DeviceSQLite) ListAll(ctx context.Context) ([]models.Device, error) {
	out := []models.Device{}
	if err := r.db.SelectContext(ctx, &out, selectAllDevicesSQL); err != nil {
		return nil, fmt.Errorf("select devices: %w", err)
	}
	return out, nil
}

package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"condition_monitor/internal/models"

	"github.com/jmoiron/sqlx"
)

type ConditionSQLite struct {
	db *sqlx.DB
}

func NewConditionSQLite(db *sqlx.DB) *ConditionSQLite { return &ConditionSQLite{db: db} }

var _ ConditionRepo = (*ConditionSQLite)(nil)

// conditionRow is the stored shape; timestamps are unix seconds.
type conditionRow struct {
	DeviceUUID string `db:"device_uuid"`
	Timestamp  int64  `db:"timestamp"`
	IsSitting  bool   `db:"is_sitting"`
	Flags      string `db:"flags"`
	Message    string `db:"message"`
}

func (r conditionRow) toModel() models.ConditionRecord {
	return models.ConditionRecord{
		DeviceUUID: r.DeviceUUID,
		Timestamp:  time.Unix(r.Timestamp, 0).UTC(),
		IsSitting:  r.IsSitting,
		Raw:        r.Flags,
		Message:    r.Message,
	}
}

const conditionColumns = `device_uuid, timestamp, is_sitting, flags, message`

const (
	insertConditionSQL = `INSERT INTO conditions (` + conditionColumns + `) VALUES (?, ?, ?, ?, ?)
ON CONFLICT(device_uuid, timestamp) DO NOTHING`
	selectConditionsAscSQL = `SELECT ` + conditionColumns + ` FROM conditions
WHERE device_uuid = ? AND timestamp >= ? ORDER BY timestamp ASC`
	selectConditionsDescSQL = `SELECT ` + conditionColumns + ` FROM conditions
WHERE device_uuid = ? AND timestamp < ? ORDER BY timestamp DESC`
	selectConditionsDescFromSQL = `SELECT ` + conditionColumns + ` FROM conditions
WHERE device_uuid = ? AND timestamp < ? AND timestamp >= ? ORDER BY timestamp DESC`
	selectLatestConditionSQL = `SELECT ` + conditionColumns + ` FROM conditions
WHERE device_uuid = ? ORDER BY timestamp DESC LIMIT 1`
)

// AppendBatch stores recs in one transaction. A record whose timestamp already
// exists for the device is skipped.
func (r *ConditionSQLite) AppendBatch(ctx context.Context, deviceUUID string, recs []models.ConditionRecord) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin condition batch: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for i, rec := range recs {
		if _, err := tx.ExecContext(ctx, insertConditionSQL,
			deviceUUID,
			rec.Timestamp.Unix(),
			rec.IsSitting,
			rec.Raw,
			rec.Message,
		); err != nil {
			return fmt.Errorf("insert condition %d of %q: %w", i, deviceUUID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit condition batch: %w", err)
	}
	return nil
}

func (r *ConditionSQLite) StreamAsc(ctx context.Context, deviceUUID string, from time.Time, fn func(models.ConditionRecord) error) error {
	rows, err := r.db.QueryxContext(ctx, selectConditionsAscSQL, deviceUUID, from.Unix())
	if err != nil {
		return fmt.Errorf("query conditions of %q: %w", deviceUUID, err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var row conditionRow
		if err := rows.StructScan(&row); err != nil {
			return fmt.Errorf("scan condition of %q: %w", deviceUUID, err)
		}
		if err := fn(row.toModel()); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate conditions of %q: %w", deviceUUID, err)
	}
	return nil
}

func (r *ConditionSQLite) ListDesc(ctx context.Context, deviceUUID string, start, end time.Time) ([]models.ConditionRecord, error) {
	var rows []conditionRow
	var err error
	if start.IsZero() {
		err = r.db.SelectContext(ctx, &rows, selectConditionsDescSQL, deviceUUID, end.Unix())
	} else {
		err = r.db.SelectContext(ctx, &rows, selectConditionsDescFromSQL, deviceUUID, end.Unix(), start.Unix())
	}
	if err != nil {
		return nil, fmt.Errorf("select conditions of %q: %w", deviceUUID, err)
	}

	out := make([]models.ConditionRecord, len(rows))
	for i, row := range rows {
		out[i] = row.toModel()
	}
	return out, nil
}

// Latest returns (nil, nil) when the device has no history.
func (r *ConditionSQLite) Latest(ctx context.Context, deviceUUID string) (*models.ConditionRecord, error) {
	var row conditionRow
	if err := r.db.GetContext(ctx, &row, selectLatestConditionSQL, deviceUUID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select latest condition of %q: %w", deviceUUID, err)
	}
	rec := row.toModel()
	return &rec, nil
}

package condition

import (
	"time"

	"condition_monitor/internal/models"
)

// DefaultConditionLimit is used when a caller does not ask for a limit.
const DefaultConditionLimit = 20

// FilterParams selects records from a device's history.
type FilterParams struct {
	EndTime   time.Time // exclusive
	StartTime time.Time // inclusive; zero means unbounded
	Levels    LevelSet
	Limit     int
}

// ConditionSummary is a classified record joined with its device's display name.
type ConditionSummary struct {
	DeviceUUID string
	DeviceName string
	Timestamp  time.Time
	IsSitting  bool
	Raw        string
	Level      Level
	Message    string
}

// Summarize classifies rec and attaches the device name.
func Summarize(rec models.ConditionRecord, deviceName string) (ConditionSummary, error) {
	level, err := ClassifyRaw(rec.Raw)
	if err != nil {
		return ConditionSummary{}, err
	}
	return ConditionSummary{
		DeviceUUID: rec.DeviceUUID,
		DeviceName: deviceName,
		Timestamp:  rec.Timestamp,
		IsSitting:  rec.IsSitting,
		Raw:        rec.Raw,
		Level:      level,
		Message:    rec.Message,
	}, nil
}

// FilterConditions keeps the records of recordsDesc (newest first) that fall in
// [StartTime, EndTime) and whose level is in Levels, then truncates to Limit.
// The input order is preserved.
func FilterConditions(recordsDesc []models.ConditionRecord, deviceName string, p FilterParams) ([]ConditionSummary, error) {
	if p.Limit <= 0 {
		return nil, ErrInvalidLimit
	}

	out := make([]ConditionSummary, 0, min(p.Limit, len(recordsDesc)))
	for _, rec := range recordsDesc {
		if !rec.Timestamp.Before(p.EndTime) {
			continue
		}
		if !p.StartTime.IsZero() && rec.Timestamp.Before(p.StartTime) {
			continue
		}

		summary, err := Summarize(rec, deviceName)
		if err != nil {
			return nil, err
		}
		if !p.Levels.Has(summary.Level) {
			continue
		}

		out = append(out, summary)
		if len(out) == p.Limit {
			break
		}
	}
	return out, nil
}

package models

import "time"

// ConditionRecord is one stored condition report. Raw holds the flag string as
// received; it was validated at ingestion.
type ConditionRecord struct {
	DeviceUUID string    `json:"device_uuid"`
	Timestamp  time.Time `json:"timestamp"`
	IsSitting  bool      `json:"is_sitting"`
	Raw        string    `json:"condition"`
	Message    string    `json:"message"`
}

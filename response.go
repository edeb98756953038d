package condition_monitor

import (
	"condition_monitor/internal/condition"
	"condition_monitor/internal/service"
)

// GraphResponse is one hourly bucket of a device graph. Times are unix seconds.
type GraphResponse struct {
	StartAt             int64                `json:"start_at"`
	EndAt               int64                `json:"end_at"`
	Data                *condition.ScoreData `json:"data"`
	ConditionTimestamps []int64              `json:"condition_timestamps"`
}

func NewGraphResponses(buckets []condition.GraphBucket) []GraphResponse {
	out := make([]GraphResponse, len(buckets))
	for i, b := range buckets {
		ts := make([]int64, len(b.ConditionTimestamps))
		for j, t := range b.ConditionTimestamps {
			ts[j] = t.Unix()
		}
		out[i] = GraphResponse{
			StartAt:             b.StartAt.Unix(),
			EndAt:               b.EndAt.Unix(),
			Data:                b.Data,
			ConditionTimestamps: ts,
		}
	}
	return out
}

// ConditionResponse is a classified condition report.
type ConditionResponse struct {
	DeviceUUID     string `json:"device_uuid"`
	DeviceName     string `json:"device_name"`
	Timestamp      int64  `json:"timestamp"`
	IsSitting      bool   `json:"is_sitting"`
	Condition      string `json:"condition"`
	ConditionLevel string `json:"condition_level"`
	Message        string `json:"message"`
}

func NewConditionResponse(s condition.ConditionSummary) ConditionResponse {
	return ConditionResponse{
		DeviceUUID:     s.DeviceUUID,
		DeviceName:     s.DeviceName,
		Timestamp:      s.Timestamp.Unix(),
		IsSitting:      s.IsSitting,
		Condition:      s.Raw,
		ConditionLevel: string(s.Level),
		Message:        s.Message,
	}
}

func NewConditionResponses(summaries []condition.ConditionSummary) []ConditionResponse {
	out := make([]ConditionResponse, len(summaries))
	for i, s := range summaries {
		out[i] = NewConditionResponse(s)
	}
	return out
}

// DeviceResponse is a registered device with its newest condition, or null.
type DeviceResponse struct {
	ID              int64              `json:"id"`
	UUID            string             `json:"device_uuid"`
	Name            string             `json:"name"`
	Category        string             `json:"category"`
	LatestCondition *ConditionResponse `json:"latest_condition"`
}

func NewDeviceResponses(summaries []service.DeviceSummary) []DeviceResponse {
	out := make([]DeviceResponse, len(summaries))
	for i, s := range summaries {
		out[i] = DeviceResponse{
			ID:       s.Device.ID,
			UUID:     s.Device.UUID,
			Name:     s.Device.Name,
			Category: s.Device.Category,
		}
		if s.Latest != nil {
			latest := NewConditionResponse(*s.Latest)
			out[i].LatestCondition = &latest
		}
	}
	return out
}

// TrendCondition is one device's latest level in a category trend.
type TrendCondition struct {
	DeviceID       int64  `json:"device_id"`
	Timestamp      int64  `json:"timestamp"`
	ConditionLevel string `json:"condition_level"`
}

// TrendResponse carries either Conditions (combined shape) or Info, Warning and
// Critical (split shape); the unused lists are omitted.
type TrendResponse struct {
	Category   string            `json:"category"`
	Conditions *[]TrendCondition `json:"conditions,omitempty"`
	Info       *[]TrendCondition `json:"info,omitempty"`
	Warning    *[]TrendCondition `json:"warning,omitempty"`
	Critical   *[]TrendCondition `json:"critical,omitempty"`
}

func NewTrendResponses(trends []condition.CategoryTrend) []TrendResponse {
	out := make([]TrendResponse, len(trends))
	for i, ct := range trends {
		out[i] = TrendResponse{Category: ct.Category}
		if ct.Shape == condition.TrendCombined {
			out[i].Conditions = trendConditions(ct.Entries)
			continue
		}
		out[i].Info = trendConditions(ct.Info)
		out[i].Warning = trendConditions(ct.Warning)
		out[i].Critical = trendConditions(ct.Critical)
	}
	return out
}

func trendConditions(entries []condition.TrendEntry) *[]TrendCondition {
	list := make([]TrendCondition, len(entries))
	for i, e := range entries {
		list[i] = TrendCondition{
			DeviceID:       e.DeviceID,
			Timestamp:      e.Timestamp.Unix(),
			ConditionLevel: string(e.Level),
		}
	}
	return &list
}

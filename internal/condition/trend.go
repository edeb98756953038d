package condition

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"condition_monitor/internal/models"
)

// TrendShape selects how a category's entries are laid out.
type TrendShape string

const (
	// TrendSplit keeps separate info, warning and critical lists.
	TrendSplit TrendShape = "split"
	// TrendCombined keeps one list, each entry carrying its level.
	TrendCombined TrendShape = "combined"
)

// ParseTrendShape accepts "split" or "combined"; empty means split.
func ParseTrendShape(s string) (TrendShape, error) {
	switch shape := TrendShape(strings.ToLower(strings.TrimSpace(s))); shape {
	case "":
		return TrendSplit, nil
	case TrendSplit, TrendCombined:
		return shape, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTrendShape, s)
}

// TrendEntry is the latest classified record of one device.
type TrendEntry struct {
	DeviceID  int64
	Timestamp time.Time
	Level     Level
}

// CategoryTrend holds one category's ranking. With TrendCombined only Entries
// is set; with TrendSplit only Info, Warning and Critical are set.
type CategoryTrend struct {
	Category string
	Shape    TrendShape

	Entries []TrendEntry

	Info     []TrendEntry
	Warning  []TrendEntry
	Critical []TrendEntry
}

// Rank builds a trend per category from each device's latest record, keyed by
// device UUID in latest. Devices absent from latest have no history and are
// skipped. Categories come out in name order; entries newest first.
func Rank(devicesByCategory map[string][]models.Device, latest map[string]models.ConditionRecord, shape TrendShape) ([]CategoryTrend, error) {
	if shape == "" {
		shape = TrendSplit
	}
	if shape != TrendSplit && shape != TrendCombined {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTrendShape, shape)
	}

	categories := make([]string, 0, len(devicesByCategory))
	for category := range devicesByCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	out := make([]CategoryTrend, 0, len(categories))
	for _, category := range categories {
		devices := devicesByCategory[category]
		entries := make([]TrendEntry, 0, len(devices))
		for _, d := range devices {
			rec, ok := latest[d.UUID]
			if !ok {
				continue
			}
			level, err := ClassifyRaw(rec.Raw)
			if err != nil {
				return nil, fmt.Errorf("device %d: %w", d.ID, err)
			}
			entries = append(entries, TrendEntry{DeviceID: d.ID, Timestamp: rec.Timestamp, Level: level})
		}
		sortNewestFirst(entries)
		out = append(out, arrange(category, entries, shape))
	}
	return out, nil
}

// sortNewestFirst orders by timestamp descending; equal timestamps fall back to
// device id so the result does not depend on input order.
func sortNewestFirst(entries []TrendEntry) {
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].Timestamp.Equal(entries[j].Timestamp) {
			return entries[i].Timestamp.After(entries[j].Timestamp)
		}
		return entries[i].DeviceID < entries[j].DeviceID
	})
}

// arrange is the only place the shape is applied. entries must already be sorted.
func arrange(category string, entries []TrendEntry, shape TrendShape) CategoryTrend {
	ct := CategoryTrend{Category: category, Shape: shape}
	if shape == TrendCombined {
		ct.Entries = entries
		return ct
	}

	ct.Info, ct.Warning, ct.Critical = []TrendEntry{}, []TrendEntry{}, []TrendEntry{}
	for _, e := range entries {
		switch e.Level {
		case LevelInfo:
			ct.Info = append(ct.Info, e)
		case LevelWarning:
			ct.Warning = append(ct.Warning, e)
		case LevelCritical:
			ct.Critical = append(ct.Critical, e)
		}
	}
	return ct
}

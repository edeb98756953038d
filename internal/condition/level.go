package condition

import (
	"fmt"
	"strings"

	"condition_monitor/internal/models"
)

// Level is the severity derived from the number of set flags.
type Level string

const (
	LevelInfo     Level = "info"
	LevelWarning  Level = "warning"
	LevelCritical Level = "critical"
)

// score weights per level
const (
	weightInfo     = 3
	weightWarning  = 2
	weightCritical = 1
	weightMax      = weightInfo
)

func (l Level) weight() int {
	switch l {
	case LevelInfo:
		return weightInfo
	case LevelWarning:
		return weightWarning
	default:
		return weightCritical
	}
}

// Classify maps a flag set to its level. It is total over Flags.
func Classify(f Flags) Level {
	switch f.Count() {
	case 0:
		return LevelInfo
	case 3:
		return LevelCritical
	default:
		return LevelWarning
	}
}

// LevelForCount maps a raw count of set flags to a level, rejecting counts a
// three-field condition can never produce.
func LevelForCount(n int) (Level, error) {
	switch n {
	case 0:
		return LevelInfo, nil
	case 1, 2:
		return LevelWarning, nil
	case 3:
		return LevelCritical, nil
	}
	return "", &ClassificationError{Count: n}
}

// ClassifyRaw classifies an already stored condition string.
func ClassifyRaw(raw string) (Level, error) {
	f, err := Parse(raw)
	if err != nil {
		return "", &ClassificationError{Raw: raw, Err: err}
	}
	return Classify(f), nil
}

// RecordFlags decodes the flags of a stored record.
func RecordFlags(rec models.ConditionRecord) (Flags, error) {
	f, err := Parse(rec.Raw)
	if err != nil {
		return Flags{}, &ClassificationError{Raw: rec.Raw, Err: err}
	}
	return f, nil
}

// ParseLevel accepts "info", "warning" or "critical" (case-insensitive).
func ParseLevel(s string) (Level, error) {
	switch l := Level(strings.ToLower(strings.TrimSpace(s))); l {
	case LevelInfo, LevelWarning, LevelCritical:
		return l, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

// LevelSet is a set of levels used for filtering.
type LevelSet map[Level]struct{}

// NewLevelSet builds a set from the given levels.
func NewLevelSet(levels ...Level) LevelSet {
	s := make(LevelSet, len(levels))
	for _, l := range levels {
		s[l] = struct{}{}
	}
	return s
}

// AllLevels returns a set containing every level.
func AllLevels() LevelSet {
	return NewLevelSet(LevelInfo, LevelWarning, LevelCritical)
}

// ParseLevelSet parses a comma separated list such as "critical,warning".
func ParseLevelSet(csv string) (LevelSet, error) {
	set := LevelSet{}
	for _, part := range strings.Split(csv, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		l, err := ParseLevel(part)
		if err != nil {
			return nil, err
		}
		set[l] = struct{}{}
	}
	if len(set) == 0 {
		return nil, fmt.Errorf("%w: empty level list", ErrUnknownLevel)
	}
	return set, nil
}

// Has reports whether l is in the set.
func (s LevelSet) Has(l Level) bool {
	_, ok := s[l]
	return ok
}

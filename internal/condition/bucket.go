package condition

import (
	"errors"
	"time"

	"condition_monitor/internal/models"
)

// GraphWindowHours is the number of one-hour buckets in a graph.
const GraphWindowHours = 24

// DefaultLocation is the reporting offset used when none is configured.
var DefaultLocation = time.FixedZone("+09:00", 9*60*60)

// GraphBucket is one hour of a device graph. Data is nil when the hour has no records.
type GraphBucket struct {
	StartAt             time.Time
	EndAt               time.Time
	Data                *ScoreData
	ConditionTimestamps []time.Time
}

// TruncateHour returns the start of the clock hour containing t, in loc.
func TruncateHour(t time.Time, loc *time.Location) time.Time {
	lt := t.In(loc)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), lt.Hour(), 0, 0, 0, loc)
}

// HourlyBucketer builds the 24 buckets of a graph window from one device's
// records, consumed in ascending timestamp order in a single pass. Only the
// current hour's records are held in memory.
//
// A bucketer serves one stream; it is not safe for concurrent use.
type HourlyBucketer struct {
	loc   *time.Location
	start time.Time
	end   time.Time

	last   time.Time
	seen   bool
	closed bool

	runStart time.Time
	run      []models.ConditionRecord

	buckets []GraphBucket
}

// NewHourlyBucketer prepares a window of GraphWindowHours starting at
// windowStart, which must lie on a whole hour in loc (nil means DefaultLocation).
func NewHourlyBucketer(windowStart time.Time, loc *time.Location) (*HourlyBucketer, error) {
	if loc == nil {
		loc = DefaultLocation
	}
	start := windowStart.In(loc)
	if !TruncateHour(start, loc).Equal(start) {
		return nil, ErrMisalignedWindow
	}

	b := &HourlyBucketer{
		loc:     loc,
		start:   start,
		end:     start.Add(GraphWindowHours * time.Hour),
		buckets: make([]GraphBucket, GraphWindowHours),
	}
	for i := range b.buckets {
		at := start.Add(time.Duration(i) * time.Hour)
		b.buckets[i] = GraphBucket{
			StartAt:             at,
			EndAt:               at.Add(time.Hour),
			ConditionTimestamps: []time.Time{},
		}
	}
	return b, nil
}

// WindowStart returns the first bucket's start.
func (b *HourlyBucketer) WindowStart() time.Time { return b.start }

// WindowEnd returns the exclusive end of the window.
func (b *HourlyBucketer) WindowEnd() time.Time { return b.end }

// Add consumes the next record of the stream. It returns ErrWindowClosed once
// a record falls at or after the window end; later records cannot contribute.
func (b *HourlyBucketer) Add(rec models.ConditionRecord) error {
	if b.closed {
		return ErrWindowClosed
	}
	if b.seen && rec.Timestamp.Before(b.last) {
		return ErrOutOfOrder
	}
	b.seen = true
	b.last = rec.Timestamp

	hour := TruncateHour(rec.Timestamp, b.loc)
	if len(b.run) > 0 && !hour.Equal(b.runStart) {
		if err := b.flush(); err != nil {
			return err
		}
	}

	if !hour.Before(b.end) {
		b.closed = true
		return ErrWindowClosed
	}
	if hour.Before(b.start) {
		return nil
	}

	if len(b.run) == 0 {
		b.runStart = hour
	}
	b.run = append(b.run, rec)
	return nil
}

// flush turns the current run into its bucket.
func (b *HourlyBucketer) flush() error {
	data, err := Reduce(b.run)
	if err != nil {
		return err
	}

	timestamps := make([]time.Time, len(b.run))
	for i, rec := range b.run {
		timestamps[i] = rec.Timestamp
	}

	idx := int(b.runStart.Sub(b.start) / time.Hour)
	b.buckets[idx].Data = &data
	b.buckets[idx].ConditionTimestamps = timestamps

	b.run = nil
	return nil
}

// Buckets closes the open run and returns exactly GraphWindowHours buckets.
func (b *HourlyBucketer) Buckets() ([]GraphBucket, error) {
	if len(b.run) > 0 {
		if err := b.flush(); err != nil {
			return nil, err
		}
	}
	out := make([]GraphBucket, len(b.buckets))
	copy(out, b.buckets)
	return out, nil
}

// GenerateGraph runs an ascending slice of records through a bucketer.
func GenerateGraph(records []models.ConditionRecord, windowStart time.Time, loc *time.Location) ([]GraphBucket, error) {
	b, err := NewHourlyBucketer(windowStart, loc)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if err := b.Add(rec); err != nil {
			if errors.Is(err, ErrWindowClosed) {
				break
			}
			return nil, err
		}
	}
	return b.Buckets()
}

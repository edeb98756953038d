package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"condition_monitor/internal/models"
	"condition_monitor/internal/repository"
)

const (
	rawInfo     = "is_dirty=false,is_overweight=false,is_broken=false"
	rawWarning  = "is_dirty=true,is_overweight=false,is_broken=false"
	rawCritical = "is_dirty=true,is_overweight=true,is_broken=true"
)

var jst = time.FixedZone("+09:00", 9*60*60)

// fakeDeviceRepo is an in-memory repository.DeviceRepo.
type fakeDeviceRepo struct {
	mu      sync.Mutex
	devices []models.Device
	err     error
}

func (f *fakeDeviceRepo) Create(_ context.Context, d models.Device) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	for _, existing := range f.devices {
		if existing.UUID == d.UUID {
			return 0, repository.ErrDuplicate
		}
	}
	d.ID = int64(len(f.devices) + 1)
	f.devices = append(f.devices, d)
	return d.ID, nil
}

func (f *fakeDeviceRepo) GetByUUID(_ context.Context, uuid string) (*models.Device, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, d := range f.devices {
		if d.UUID == uuid {
			d := d
			return &d, nil
		}
	}
	return nil, nil
}

func (f *fakeDeviceRepo) ListByOwner(_ context.Context, ownerID int) ([]models.Device, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Device{}
	for i := len(f.devices) - 1; i >= 0; i-- {
		if f.devices[i].OwnerID == ownerID {
			out = append(out, f.devices[i])
		}
	}
	return out, f.err
}

func (f *fakeDeviceRepo) ListAll(_ context.Context) ([]models.Device, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Device(nil), f.devices...), f.err
}

// fakeConditionRepo is an in-memory repository.ConditionRepo keeping each
// device's records sorted ascending.
type fakeConditionRepo struct {
	mu        sync.Mutex
	byDevice  map[string][]models.ConditionRecord
	streamed  int
	latestErr error
}

func newFakeConditionRepo() *fakeConditionRepo {
	return &fakeConditionRepo{byDevice: map[string][]models.ConditionRecord{}}
}

func (f *fakeConditionRepo) AppendBatch(_ context.Context, deviceUUID string, recs []models.ConditionRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	list := f.byDevice[deviceUUID]
outer:
	for _, rec := range recs {
		for _, existing := range list {
			if existing.Timestamp.Unix() == rec.Timestamp.Unix() {
				continue outer
			}
		}
		list = append(list, rec)
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].Timestamp.Before(list[j].Timestamp) })
	f.byDevice[deviceUUID] = list
	return nil
}

func (f *fakeConditionRepo) StreamAsc(_ context.Context, deviceUUID string, from time.Time, fn func(models.ConditionRecord) error) error {
	f.mu.Lock()
	list := append([]models.ConditionRecord(nil), f.byDevice[deviceUUID]...)
	f.mu.Unlock()

	for _, rec := range list {
		if rec.Timestamp.Before(from) {
			continue
		}
		f.mu.Lock()
		f.streamed++
		f.mu.Unlock()
		if err := fn(rec); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeConditionRepo) ListDesc(_ context.Context, deviceUUID string, start, end time.Time) ([]models.ConditionRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	list := f.byDevice[deviceUUID]
	out := []models.ConditionRecord{}
	for i := len(list) - 1; i >= 0; i-- {
		ts := list[i].Timestamp
		if !ts.Before(end) || (!start.IsZero() && ts.Before(start)) {
			continue
		}
		out = append(out, list[i])
	}
	return out, nil
}

func (f *fakeConditionRepo) Latest(_ context.Context, deviceUUID string) (*models.ConditionRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.latestErr != nil {
		return nil, f.latestErr
	}
	list := f.byDevice[deviceUUID]
	if len(list) == 0 {
		return nil, nil
	}
	rec := list[len(list)-1]
	return &rec, nil
}

// neverAdmit drops everything.
type neverAdmit struct{}

func (neverAdmit) Admit() bool { return false }

var errRepoDown = errors.New("repo down")

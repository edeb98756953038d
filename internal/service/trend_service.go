package service

import (
	"context"
	"sync"

	"condition_monitor/internal/condition"
	"condition_monitor/internal/models"
	"condition_monitor/internal/repository"

	"golang.org/x/sync/errgroup"
)

type TrendService struct {
	devices     repository.DeviceRepo
	conditions  repository.ConditionRepo
	shape       condition.TrendShape
	concurrency int
}

func NewTrendService(devices repository.DeviceRepo, conditions repository.ConditionRepo, shape condition.TrendShape, concurrency int) *TrendService {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &TrendService{devices: devices, conditions: conditions, shape: shape, concurrency: concurrency}
}

// CurrentTrend fetches every device's latest record, at most s.concurrency at a
// time, and ranks them per category.
func (s *TrendService) CurrentTrend(ctx context.Context) ([]condition.CategoryTrend, error) {
	devices, err := s.devices.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[string][]models.Device)
	for _, d := range devices {
		byCategory[d.Category] = append(byCategory[d.Category], d)
	}

	var mu sync.Mutex
	latest := make(map[string]models.ConditionRecord, len(devices))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for _, d := range devices {
		g.Go(func() error {
			rec, err := s.conditions.Latest(gctx, d.UUID)
			if err != nil || rec == nil {
				return err
			}
			mu.Lock()
			latest[d.UUID] = *rec
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return condition.Rank(byCategory, latest, s.shape)
}

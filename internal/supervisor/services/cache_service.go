// Project Atlas - Project Registry Geographic Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/projectatlas

package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/projectatlas/internal/logging"
)

// CacheJanitor is implemented by *cache.Cache[V] for any V.
type CacheJanitor interface {
	Name() string
	Run(ctx context.Context, interval time.Duration) error
	HitRate() float64
}

// CacheJanitorService evicts expired cache entries on an interval.
type CacheJanitorService struct {
	cache    CacheJanitor
	interval time.Duration
	name     string
}

// NewCacheJanitorService wraps c. A non-positive interval means
// one minute.
func NewCacheJanitorService(c CacheJanitor, interval time.Duration) *CacheJanitorService {
	if interval <= 0 {
		interval = time.Minute
	}
	return &CacheJanitorService{
		cache:    c,
		interval: interval,
		name:     "cache-janitor:" + c.Name(),
	}
}

// Serve implements suture.Service.
func (s *CacheJanitorService) Serve(ctx context.Context) error {
	logging.Debug().
		Str("cache", s.cache.Name()).
		Dur("interval", s.interval).
		Msg("Cache janitor started")

	err := s.cache.Run(ctx, s.interval)
	logging.Debug().
		Str("cache", s.cache.Name()).
		Float64("hit_rate", s.cache.HitRate()).
		Msg("Cache janitor stopped")
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return ctx.Err()
	}
	return fmt.Errorf("cache janitor %s: %w", s.cache.Name(), err)
}

func (s *CacheJanitorService) String() string {
	return s.name
}

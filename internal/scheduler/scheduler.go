package scheduler

import (
	"context"
	"sync"
	"time"

	"kitten/backend/internal/service"
	"kitten/backend/pkg/logger"
)

// Scheduler runs periodic housekeeping: dropping quota counters from past
// days and keeping the game library cache warm.
type Scheduler struct {
	proxyService   service.ProxyService
	libraryService service.LibraryService
	interval       time.Duration
	stopCh         chan struct{}
	wg             sync.WaitGroup
	cancelFunc     context.CancelFunc // cancels the current pass
	mu             sync.Mutex         // protects cancelFunc
}

func New(proxyService service.ProxyService, libraryService service.LibraryService, interval time.Duration) *Scheduler {
	return &Scheduler{
		proxyService:   proxyService,
		libraryService: libraryService,
		interval:       interval,
		stopCh:         make(chan struct{}),
	}
}

func (s *Scheduler) Start() {
	s.wg.Add(1)
	go s.run()
	logger.Info("scheduler started", "module", "scheduler", "action", "start", "resource", "housekeeping", "result", "ok", "interval", s.interval)
}

func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.cancelFunc != nil {
		s.cancelFunc()
	}
	s.mu.Unlock()

	close(s.stopCh)
	s.wg.Wait()
	logger.Info("scheduler stopped", "module", "scheduler", "action", "stop", "resource", "housekeeping", "result", "ok")
}

func (s *Scheduler) run() {
	defer s.wg.Done()

	// Run immediately on start
	s.housekeep()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.housekeep()
		case <-s.stopCh:
			return
		}
	}
}

func (s *Scheduler) housekeep() {
	ctx, cancel := context.WithTimeout(context.Background(), s.interval)

	s.mu.Lock()
	s.cancelFunc = cancel
	s.mu.Unlock()

	defer func() {
		cancel()
		s.mu.Lock()
		s.cancelFunc = nil
		s.mu.Unlock()
	}()

	if pruned := s.proxyService.PruneUsage(); pruned > 0 {
		logger.Info("quota counters pruned", "module", "scheduler", "action", "prune", "resource", "quota", "result", "ok", "count", pruned)
	}

	if err := s.libraryService.Warm(ctx); err != nil {
		if ctx.Err() != nil {
			logger.Info("library warm cancelled", "module", "scheduler", "action", "warm", "resource", "library", "result", "cancelled")
			return
		}
		logger.Warn("library warm failed", "module", "scheduler", "action", "warm", "resource", "library", "result", "failed", "error", err)
	}
}

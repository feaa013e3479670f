package scheduler

import (
	"time"

	"kettolingo_backend/internal/service"
	"kettolingo_backend/pkg/logger"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

// Scheduler runs the background maintenance jobs. Currently that is one
// nightly reconciliation of the user_progress summary table against the
// attempt history.
type Scheduler struct {
	scheduler *gocron.Scheduler
	progress  *service.ProgressService
}

func New(progress *service.ProgressService) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		progress:  progress,
	}
}

func (s *Scheduler) Start() {
	s.scheduler.Every(1).Day().At("03:00").Do(s.reconcileProgress)
	s.scheduler.StartAsync()
}

func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

func (s *Scheduler) reconcileProgress() {
	corrected, err := s.progress.Reconcile()
	if err != nil {
		logger.Log.Error("progress reconciliation failed", zap.Error(err))
		return
	}
	if corrected > 0 {
		logger.Log.Warn("progress summary drifted from attempt history", zap.Int("corrected", corrected))
		return
	}
	logger.Log.Info("progress summary reconciled", zap.Int("corrected", corrected))
}

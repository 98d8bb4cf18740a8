package services

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
	"github.com/staffhub/vendorlink/internal/logger"
)

type tokenCleanupRepository interface {
	ClearExpiredTokens(ctx context.Context, now time.Time) (int64, error)
}

type jobCleanupRepository interface {
	DeactivateExpired(ctx context.Context, now time.Time) (int64, error)
}

// Sweeper is nightly housekeeping: it clears tokens past expiry and flips
// expired jobs inactive. Token validity never depends on it; the strict
// expiry check at lookup time is authoritative.
type Sweeper struct {
	vendors tokenCleanupRepository
	jobs    jobCleanupRepository
	cron    *cron.Cron
}

func NewSweeper(vendors tokenCleanupRepository, jobs jobCleanupRepository) (*Sweeper, error) {

	s := &Sweeper{
		vendors: vendors,
		jobs:    jobs,
		cron:    cron.New(),
	}

	_, err := s.cron.AddFunc("0 0 * * *", s.sweep)
	if err != nil {
		return nil, err
	}

	s.cron.Start()
	log.Info("sweeper started")
	return s, nil
}

func (s *Sweeper) Stop() {
	s.cron.Stop()
}

func (s *Sweeper) sweep() {
	now := time.Now().UTC()

	cleared, err := s.vendors.ClearExpiredTokens(context.Background(), now)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
			Errorf("failed to clear expired tokens: %v", err)
	} else {
		log.Infof("cleared %v expired verification tokens", cleared)
	}

	deactivated, err := s.jobs.DeactivateExpired(context.Background(), now)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeDb).
			Errorf("failed to deactivate expired jobs: %v", err)
	} else {
		log.Infof("deactivated %v expired jobs", deactivated)
	}
}

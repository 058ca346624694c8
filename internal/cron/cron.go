package cron

import (
	"context"
	"log"
	"time"

	"github.com/projectmentor/projectmentor-backend/internal/repository"
	"github.com/robfig/cron/v3"
)

// Scheduler handles scheduled tasks
type Scheduler struct {
	cron        *cron.Cron
	requestRepo repository.MemberRequestRepository
}

// NewScheduler creates a new scheduler
func NewScheduler(requestRepo repository.MemberRequestRepository) *Scheduler {
	return &Scheduler{
		cron:        cron.New(),
		requestRepo: requestRepo,
	}
}

// Start starts the scheduler
func (s *Scheduler) Start() {
	// Run every day at 3 AM - Purge stale pending join requests
	s.cron.AddFunc("0 3 * * *", func() {
		log.Println("[Cron] Running stale pending request cleanup...")
		s.cleanupStaleRequests()
	})

	// Run every Sunday at midnight - Purge old rejected requests
	s.cron.AddFunc("0 0 * * 0", func() {
		log.Println("[Cron] Running rejected request cleanup...")
		s.cleanupRejectedRequests()
	})

	s.cron.Start()
	log.Println("[Cron] Scheduler started")
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Println("[Cron] Scheduler stopped")
}

// cleanupStaleRequests removes pending requests nobody acted on for 30
// days. Leaders see a clean queue; the member can simply re-request.
func (s *Scheduler) cleanupStaleRequests() {
	ctx := context.Background()

	deleted, err := s.requestRepo.DeleteOlderThan(ctx, repository.RequestPending, time.Now().AddDate(0, 0, -30))
	if err != nil {
		log.Printf("[Cron] Error cleaning up stale pending requests: %v", err)
		return
	}
	if deleted > 0 {
		log.Printf("[Cron] Deleted %d stale pending requests", deleted)
	}
}

// cleanupRejectedRequests removes rejected requests older than 90 days.
func (s *Scheduler) cleanupRejectedRequests() {
	ctx := context.Background()

	deleted, err := s.requestRepo.DeleteOlderThan(ctx, repository.RequestRejected, time.Now().AddDate(0, 0, -90))
	if err != nil {
		log.Printf("[Cron] Error cleaning up rejected requests: %v", err)
		return
	}
	if deleted > 0 {
		log.Printf("[Cron] Deleted %d old rejected requests", deleted)
	}
}

// Package scheduler implements background job scheduling
package scheduler

import (
	"log"
	"time"

	"github.com/go-co-op/gocron"
	"weatherdash.app/config"
	"weatherdash.app/repository"
)

// Scheduler manages periodic maintenance tasks for the application
type Scheduler struct {
	scheduler   *gocron.Scheduler
	historyRepo *repository.SearchHistoryRepository
	config      *config.SchedulerConfig
}

// NewScheduler creates and configures a new task scheduler
func NewScheduler(historyRepo *repository.SearchHistoryRepository, config *config.SchedulerConfig) *Scheduler {
	return &Scheduler{
		scheduler:   gocron.NewScheduler(time.UTC),
		historyRepo: historyRepo,
		config:      config,
	}
}

// Start schedules the periodic jobs and starts the underlying scheduler
func (s *Scheduler) Start() error {
	minutes := s.config.PruneIntervalMinutes
	if minutes <= 0 {
		minutes = 60
	}

	_, err := s.scheduler.Every(minutes).Minutes().Do(func() {
		log.Println("scheduler: pruning expired search history")
		if err := s.historyRepo.PruneExpired(); err != nil {
			log.Printf("scheduler: prune failed: %v\n", err)
		}
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}

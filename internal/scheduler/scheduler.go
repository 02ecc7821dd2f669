// Package scheduler wires up the cron job that periodically re-warms the
// public content cache from PostgreSQL.
package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"mobintix/site-service/internal/cache"
	"mobintix/site-service/internal/model"
	"mobintix/site-service/internal/site"
)

// ProjectLister loads every portfolio project.
type ProjectLister interface {
	FetchAll(ctx context.Context) ([]model.Project, error)
}

// JobLister loads every open position.
type JobLister interface {
	FetchAll(ctx context.Context) ([]model.Job, error)
}

// Scheduler wraps robfig/cron and manages the cache warm loop.
type Scheduler struct {
	cron     *cron.Cron
	projects ProjectLister
	jobs     JobLister
	cache    *cache.Cache
	spec     string // cron spec, e.g. "@every 1h"
}

// New creates a Scheduler that fires every intervalHours hours.
func New(projects ProjectLister, jobs JobLister, c *cache.Cache, intervalHours int) *Scheduler {
	return &Scheduler{
		cron:     cron.New(cron.WithLogger(cron.DefaultLogger)),
		projects: projects,
		jobs:     jobs,
		cache:    c,
		spec:     fmt.Sprintf("@every %dh", intervalHours),
	}
}

// Start registers the job and starts the scheduler. Also runs one warm
// cycle immediately so the first visitors hit a populated cache.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.warm(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	log.Printf("[scheduler] Cron started — spec: %s", s.spec)

	// Run immediately on startup (non-blocking)
	go s.warm(ctx)

	return nil
}

// Stop gracefully shuts down the scheduler.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Println("[scheduler] Cron stopped")
}

// warm re-reads projects and jobs and writes them back into the cache.
// A failed read leaves the previous cached value in place.
func (s *Scheduler) warm(ctx context.Context) {
	log.Println("[scheduler] Cache warm cycle started")

	projects, err := s.projects.FetchAll(ctx)
	if err != nil {
		log.Printf("[scheduler] Project load error: %v", err)
	} else {
		s.cache.Set(ctx, site.CacheKeyProjects, projects)
	}

	jobs, err := s.jobs.FetchAll(ctx)
	if err != nil {
		log.Printf("[scheduler] Job load error: %v", err)
	} else {
		s.cache.Set(ctx, site.CacheKeyJobs, jobs)
	}

	log.Println("[scheduler] Cache warm cycle complete")
}

package news

import (
	"context"
	"time"
)

// RefreshJob refreshes the news cache on the scheduler's cadence.
type RefreshJob struct {
	service *Service
	timeout time.Duration
}

// NewRefreshJob creates a scheduler job that refreshes the news cache
func NewRefreshJob(service *Service) *RefreshJob {
	return &RefreshJob{
		service: service,
		timeout: 30 * time.Second,
	}
}

// Name returns the job name
func (j *RefreshJob) Name() string {
	return "news-refresh"
}

// Run refreshes the cache once
func (j *RefreshJob) Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()
	return j.service.Refresh(ctx)
}

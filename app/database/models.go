package database

import (
	"time"
)

// Run is one archived scrape invocation
type Run struct {
	ID             int64
	Query          string
	Region         string
	PagesRequested int
	PagesFetched   int
	AdCount        int
	StartedAt      time.Time
	FinishedAt     time.Time
}

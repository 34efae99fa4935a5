package database

import (
	"github.com/adscomb/adscomb/app/ads"
)

type RunRepository interface {
	CreateRun(run Run) (int64, error)
	GetRun(id int64) (*Run, error)
	GetRuns(limit int) ([]Run, error)
	GetRunCount() (int, error)
}

type AdRepository interface {
	InsertAds(runID int64, records []ads.Ad) error
	GetAdsByRun(runID int64) ([]ads.Ad, error)
	GetAdCount() (int, error)
}

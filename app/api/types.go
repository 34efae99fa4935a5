package api

import (
	"github.com/adscomb/adscomb/app/database"
)

type Handler struct {
	runRepo database.RunRepository
	adRepo  database.AdRepository
	version string
}

package scraper

import (
	"context"

	"github.com/adscomb/adscomb/app/ads"
)

// PageFetcher retrieves one page of raw ad data. Implementations return the
// decoded JSON payload; transport failures, non-2xx responses, and undecodable
// bodies all surface as errors rather than payloads.
type PageFetcher interface {
	FetchPage(ctx context.Context, query, region string, page int) (any, error)
}

// Result is the outcome of one scrape invocation.
type Result struct {
	Ads          []ads.Ad
	PagesFetched int
}

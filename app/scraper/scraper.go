package scraper

import (
	"context"
	"log/slog"
	"time"

	"github.com/adscomb/adscomb/app/ads"
)

// Scraper drives page-by-page retrieval and normalization. Pages are
// processed strictly in order with no fetch-ahead; the inter-page pause is
// the only suspension point.
type Scraper struct {
	fetcher    PageFetcher
	normalizer *ads.Normalizer
	pause      time.Duration
}

func NewScraper(fetcher PageFetcher, pause time.Duration) *Scraper {
	return &Scraper{
		fetcher:    fetcher,
		normalizer: ads.NewNormalizer(),
		pause:      pause,
	}
}

// Run fetches up to maxPages pages and returns every ad normalized so far.
// A fetch failure or an empty page ends the run with the records gathered up
// to that point; per-record failures are logged and skipped. No retries
// happen at this layer.
func (s *Scraper) Run(ctx context.Context, query, region string, maxPages int) Result {
	result := Result{
		Ads: make([]ads.Ad, 0),
	}

	slog.Info("Scrape started", "query", query, "region", region, "pages", maxPages)

	for page := 1; page <= maxPages; page++ {
		payload, err := s.fetcher.FetchPage(ctx, query, region, page)
		if err != nil {
			slog.Warn("Stopping pagination after fetch failure", "page", page, "error", err)
			break
		}
		result.PagesFetched++

		rawAds := ads.LocateAds(payload)
		if len(rawAds) == 0 {
			slog.Info("No ads on page, stopping pagination", "page", page)
			break
		}

		skipped := 0
		for _, el := range rawAds {
			raw, ok := el.(map[string]any)
			if !ok {
				slog.Debug("Skipping non-object ad entry", "page", page)
				skipped++
				continue
			}

			ad, err := s.normalizer.Normalize(ads.RawAd(raw))
			if err != nil {
				slog.Error("Failed to normalize ad entry", "page", page, "error", err)
				skipped++
				continue
			}

			result.Ads = append(result.Ads, ad)
		}

		slog.Info("Page processed", "page", page, "raw_ads", len(rawAds), "skipped", skipped)

		if page < maxPages {
			time.Sleep(s.pause)
		}
	}

	slog.Info("Scrape completed", "pages_fetched", result.PagesFetched, "total", len(result.Ads))

	return result
}

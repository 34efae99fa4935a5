package config

import (
	"time"
)

// GetTimeout returns the per-request timeout as time.Duration
func (s *SourceSettings) GetTimeout() time.Duration {
	if s.Timeout <= 0 {
		return 10 * time.Second // default 10 seconds
	}
	return time.Duration(s.Timeout) * time.Second
}

// GetSleep returns the inter-page pause as time.Duration
func (s *SourceSettings) GetSleep() time.Duration {
	if s.SleepMS <= 0 {
		return 500 * time.Millisecond
	}
	return time.Duration(s.SleepMS) * time.Millisecond
}

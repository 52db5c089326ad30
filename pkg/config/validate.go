package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// ValidatePositiveDuration returns an error unless d > 0.
func ValidatePositiveDuration(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("must be positive, got %v", d)
	}
	return nil
}

// ValidateNonNegativeDuration accepts zero, which callers use for "disabled"
// (a cache TTL of 0 turns caching off).
func ValidateNonNegativeDuration(d time.Duration) error {
	if d < 0 {
		return fmt.Errorf("must not be negative, got %v", d)
	}
	return nil
}

// Same field set cron.New uses, so anything accepted here can be scheduled.
var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// ValidateCronSchedule accepts five-field expressions ("*/5 * * * *") and
// descriptors ("@hourly", "@every 5m").
//
//	if err := ValidateCronSchedule(cfg.Probe.Schedule); err != nil {
//	    return fmt.Errorf("PROBE_SCHEDULE: %w", err)
//	}
func ValidateCronSchedule(schedule string) error {
	if schedule == "" {
		return errors.New("cron schedule is empty")
	}
	if _, err := cronParser.Parse(schedule); err != nil {
		return fmt.Errorf("cron schedule %q: %w", schedule, err)
	}
	return nil
}

package config

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/heartmarshall/srs-review-backend/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed database.max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}
	if c.Database.ConnectBackoff <= 0 {
		return fmt.Errorf("database.connect_backoff must be > 0 (got %v)", c.Database.ConnectBackoff)
	}
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.SessionTTL <= 0 {
		return fmt.Errorf("auth.session_ttl must be > 0 (got %v)", c.Auth.SessionTTL)
	}

	if err := c.SRS.validate(); err != nil {
		return fmt.Errorf("srs: %w", err)
	}

	if c.Scheduler.Enabled {
		if c.Scheduler.SweepInterval <= 0 {
			return fmt.Errorf("scheduler.sweep_interval must be > 0 (got %v)", c.Scheduler.SweepInterval)
		}
		if c.Scheduler.ClockRefreshInterval <= 0 {
			return fmt.Errorf("scheduler.clock_refresh_interval must be > 0 (got %v)", c.Scheduler.ClockRefreshInterval)
		}
	}

	if c.RateLimit.Enabled && (c.RateLimit.Limit <= 0 || c.RateLimit.Window <= 0) {
		return fmt.Errorf("rate_limit.limit and rate_limit.window must be > 0")
	}

	return nil
}

func (s *SRSConfig) validate() error {
	intervals, err := ParseDurations(s.StageIntervalsRaw)
	if err != nil {
		return fmt.Errorf("stage_intervals: %w", err)
	}
	if len(intervals) == 0 {
		return fmt.Errorf("stage_intervals must not be empty")
	}
	for i := 1; i < len(intervals); i++ {
		if intervals[i] < intervals[i-1] {
			return fmt.Errorf("stage_intervals must be non-decreasing (stage %d: %v < %v)", i, intervals[i], intervals[i-1])
		}
	}
	s.StageIntervals = intervals

	if s.MasteryStage < 1 || s.MasteryStage > len(intervals) {
		return fmt.Errorf("mastery_stage must be in [1, %d] (got %d)", len(intervals), s.MasteryStage)
	}
	if s.WrongCooldown <= 0 {
		return fmt.Errorf("wrong_cooldown must be > 0 (got %v)", s.WrongCooldown)
	}
	if s.OverdueGrace < 0 {
		return fmt.Errorf("overdue_grace must be >= 0 (got %v)", s.OverdueGrace)
	}
	if !domain.DemotionMode(s.Demotion).IsValid() {
		return fmt.Errorf("demotion must be reset or step (got %q)", s.Demotion)
	}
	if s.DemotionSteps < 0 {
		return fmt.Errorf("demotion_steps must be >= 0 (got %d)", s.DemotionSteps)
	}
	if s.FreezeAfterFailures < 0 {
		return fmt.Errorf("freeze_after_failures must be >= 0 (got %d)", s.FreezeAfterFailures)
	}
	if s.FreezeAfterFailures > 0 && s.FreezeDuration <= 0 {
		return fmt.Errorf("freeze_duration must be > 0 when freezing is enabled")
	}
	if s.SessionGap <= 0 {
		return fmt.Errorf("session_gap must be > 0 (got %v)", s.SessionGap)
	}

	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return fmt.Errorf("timezone: %w", err)
	}
	s.Location = loc

	return nil
}

// ParseDurations parses a comma-separated string of durations (e.g. "1h,24h")
// into a slice of time.Duration. An empty string returns a nil slice.
func ParseDurations(raw string) ([]time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	out := make([]time.Duration, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		d, err := time.ParseDuration(p)
		if err != nil {
			return nil, fmt.Errorf("invalid duration %q: %w", p, err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("duration %q must be positive", p)
		}
		out = append(out, d)
	}

	return out, nil
}

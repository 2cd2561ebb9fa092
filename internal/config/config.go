package config

import (
	"time"

	"github.com/heartmarshall/srs-review-backend/internal/domain"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	SRS       SRSConfig       `yaml:"srs"`
	CORS      CORSConfig      `yaml:"cors"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,Idempotency-Key"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	ConnectAttempts uint64        `yaml:"connect_attempts"   env:"DATABASE_CONNECT_ATTEMPTS"   env-default:"5"`
	ConnectBackoff  time.Duration `yaml:"connect_backoff"    env:"DATABASE_CONNECT_BACKOFF"    env-default:"500ms"`
}

// AuthConfig holds session token settings.
type AuthConfig struct {
	JWTSecret     string        `yaml:"jwt_secret"     env:"AUTH_JWT_SECRET"     env-required:"true"`
	JWTIssuer     string        `yaml:"jwt_issuer"     env:"AUTH_JWT_ISSUER"     env-default:"srs-review"`
	SessionTTL    time.Duration `yaml:"session_ttl"    env:"AUTH_SESSION_TTL"    env-default:"168h"`
	SessionCookie string        `yaml:"session_cookie" env:"AUTH_SESSION_COOKIE" env-default:"session"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// SRSConfig holds stage ladder parameters.
type SRSConfig struct {
	StageIntervalsRaw     string        `yaml:"stage_intervals"          env:"SRS_STAGE_INTERVALS"          env-default:"1h,24h,72h,168h,336h,720h"`
	MasteryStage          int           `yaml:"mastery_stage"            env:"SRS_MASTERY_STAGE"            env-default:"6"`
	WrongCooldown         time.Duration `yaml:"wrong_cooldown"           env:"SRS_WRONG_COOLDOWN"           env-default:"10m"`
	OverdueGrace          time.Duration `yaml:"overdue_grace"            env:"SRS_OVERDUE_GRACE"            env-default:"24h"`
	Demotion              string        `yaml:"demotion"                 env:"SRS_DEMOTION"                 env-default:"step"`
	DemotionSteps         int           `yaml:"demotion_steps"           env:"SRS_DEMOTION_STEPS"           env-default:"2"`
	ResetMasteryOnMistake bool          `yaml:"reset_mastery_on_mistake" env:"SRS_RESET_MASTERY_ON_MISTAKE"`
	FreezeAfterFailures   int           `yaml:"freeze_after_failures"    env:"SRS_FREEZE_AFTER_FAILURES"`
	FreezeDuration        time.Duration `yaml:"freeze_duration"          env:"SRS_FREEZE_DURATION"          env-default:"6h"`
	SessionGap            time.Duration `yaml:"session_gap"              env:"SRS_SESSION_GAP"              env-default:"5m"`
	Timezone              string        `yaml:"timezone"                 env:"SRS_TIMEZONE"                 env-default:"Asia/Seoul"`
	MaxWriteRetries       uint64        `yaml:"max_write_retries"        env:"SRS_MAX_WRITE_RETRIES"        env-default:"3"`
	RetryBaseDelay        time.Duration `yaml:"retry_base_delay"         env:"SRS_RETRY_BASE_DELAY"         env-default:"20ms"`

	// StageIntervals is parsed from StageIntervalsRaw during validation.
	StageIntervals []time.Duration `yaml:"-" env:"-"`
	// Location is parsed from Timezone during validation.
	Location *time.Location `yaml:"-" env:"-"`
}

// SchedulerConfig holds periodic job settings.
type SchedulerConfig struct {
	Enabled              bool          `yaml:"enabled"                env:"SCHEDULER_ENABLED"`
	SweepInterval        time.Duration `yaml:"sweep_interval"         env:"SCHEDULER_SWEEP_INTERVAL"         env-default:"5m"`
	ClockRefreshInterval time.Duration `yaml:"clock_refresh_interval" env:"SCHEDULER_CLOCK_REFRESH_INTERVAL" env-default:"1m"`
}

// RateLimitConfig holds per-client request limits.
type RateLimitConfig struct {
	Enabled bool          `yaml:"enabled" env:"RATE_LIMIT_ENABLED"`
	Limit   int           `yaml:"limit"   env:"RATE_LIMIT_LIMIT"   env-default:"120"`
	Window  time.Duration `yaml:"window"  env:"RATE_LIMIT_WINDOW"  env-default:"1m"`
}

// Policy converts the validated SRS section into the domain policy.
func (s SRSConfig) Policy() domain.SRSPolicy {
	loc := s.Location
	if loc == nil {
		loc = time.UTC
	}
	return domain.SRSPolicy{
		StageIntervals:        s.StageIntervals,
		MasteryStage:          s.MasteryStage,
		WrongCooldown:         s.WrongCooldown,
		OverdueGrace:          s.OverdueGrace,
		Demotion:              domain.DemotionMode(s.Demotion),
		DemotionSteps:         s.DemotionSteps,
		ResetMasteryOnMistake: s.ResetMasteryOnMistake,
		FreezeAfterFailures:   s.FreezeAfterFailures,
		FreezeDuration:        s.FreezeDuration,
		SessionGap:            s.SessionGap,
		Location:              loc,
	}
}

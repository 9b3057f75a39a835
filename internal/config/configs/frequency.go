package configs

import "time"

// Frequency tunes the capping engine defaults. Caps themselves arrive per
// request from campaign rules and store settings; these knobs control the
// surrounding machinery.
type Frequency struct {
	// SessionTTL is how long session-scoped counters survive after the
	// last display.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	// OpTimeout bounds each counter-store operation; on expiry the engine
	// fails open.
	OpTimeout time.Duration `env:"OP_TIMEOUT" envDefault:"150ms"`
	// VelocityWindow is the sliding window for the bot filter's per-IP
	// event velocity.
	VelocityWindow time.Duration `env:"VELOCITY_WINDOW" envDefault:"10s"`
	// MaxVelocity is the per-IP event count within the window above which
	// traffic is flagged as automated.
	MaxVelocity int64 `env:"MAX_VELOCITY" envDefault:"30"`

	// RateLimitRPS and RateLimitBurst configure the per-IP token bucket
	// guarding the storefront endpoints.
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"20"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"40"`
}

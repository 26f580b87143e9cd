package enrollauth

import (
	"errors"
	"time"

	"github.com/registrarhq/enrollauth/token"
)

// Config defines the engine's tunable surface.
//
// Config instances are intended to be configured during initialization and
// then treated as immutable.
type Config struct {
	Token   TokenConfig
	Session SessionConfig
	Audit   AuditConfig
	Metrics MetricsConfig
}

// TokenConfig controls identity-claim signing and verification.
type TokenConfig struct {
	// Secret is the shared HS256 signing key. Required.
	Secret []byte
	// TTL is the claim validity window. Zero selects [token.DefaultTTL]
	// (15 minutes).
	TTL time.Duration
	// Issuer, when set, is stamped and enforced on every claim.
	Issuer string
	// Leeway tolerated on expiry checks. At most 2 minutes.
	Leeway time.Duration
}

// SessionConfig controls the session registry.
type SessionConfig struct {
	// RedisPrefix namespaces registry keys when a Redis backend is used.
	RedisPrefix string
}

// AuditConfig controls the async audit dispatcher.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	DropIfFull bool
}

// MetricsConfig controls in-process counters.
type MetricsConfig struct {
	Enabled bool
}

// DefaultConfig returns the baseline configuration: 15 minute tokens,
// auditing buffered at 256 events with drop-if-full, metrics enabled. The
// signing secret is deliberately absent and must be supplied.
func DefaultConfig() Config {
	return Config{
		Token: TokenConfig{
			TTL: token.DefaultTTL,
		},
		Session: SessionConfig{
			RedisPrefix: "enrollauth",
		},
		Audit: AuditConfig{
			Enabled:    true,
			BufferSize: 256,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

// Validate checks invariants that [Builder.Build] relies on.
func (c Config) Validate() error {
	if len(c.Token.Secret) == 0 {
		return errors.New("token secret required")
	}
	if c.Token.TTL < 0 {
		return errors.New("token TTL must not be negative")
	}
	if c.Token.Leeway < 0 || c.Token.Leeway > 2*time.Minute {
		return errors.New("token leeway must be between 0 and 2 minutes")
	}
	if c.Audit.Enabled && c.Audit.BufferSize < 0 {
		return errors.New("audit buffer size must not be negative")
	}
	return nil
}

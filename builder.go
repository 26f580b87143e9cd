package enrollauth

import (
	"errors"

	"github.com/redis/go-redis/v9"

	internalaudit "github.com/registrarhq/enrollauth/internal/audit"
	"github.com/registrarhq/enrollauth/ledger"
	"github.com/registrarhq/enrollauth/session"
	"github.com/registrarhq/enrollauth/token"
)

// Builder assembles an [Engine]. Use [New], chain the With methods, then
// call [Builder.Build] exactly once.
type Builder struct {
	config Config

	accounts  AccountProvider
	roster    StudentRoster
	ldg       *ledger.Ledger
	registry  session.Registry
	redis     redis.UniversalClient
	auditSink AuditSink

	built bool
}

// New returns a Builder carrying [DefaultConfig].
func New() *Builder {
	return &Builder{
		config: DefaultConfig(),
	}
}

// WithConfig replaces the builder's configuration.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cfg
	return b
}

// WithAccounts sets the account provider. Required.
func (b *Builder) WithAccounts(p AccountProvider) *Builder {
	b.accounts = p
	return b
}

// WithRoster sets the student roster. Required.
func (b *Builder) WithRoster(r StudentRoster) *Builder {
	b.roster = r
	return b
}

// WithLedger sets the enrollment ledger. Defaults to an empty ledger.
func (b *Builder) WithLedger(l *ledger.Ledger) *Builder {
	b.ldg = l
	return b
}

// WithSessionRegistry sets an explicit session registry backend. Defaults
// to [session.NewMemoryRegistry].
func (b *Builder) WithSessionRegistry(r session.Registry) *Builder {
	b.registry = r
	return b
}

// WithRedis selects a Redis-backed session registry on the given client,
// namespaced by [SessionConfig.RedisPrefix]. Overridden by
// [Builder.WithSessionRegistry] when both are set.
func (b *Builder) WithRedis(client redis.UniversalClient) *Builder {
	b.redis = client
	return b
}

// WithAuditSink sets the audit event consumer. Defaults to [NoOpSink].
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	return b
}

// WithMetricsEnabled toggles in-process counters.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// Build validates the configuration and wiring and returns a ready Engine.
func (b *Builder) Build() (*Engine, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}

	if err := b.config.Validate(); err != nil {
		return nil, err
	}
	if b.accounts == nil {
		return nil, errors.New("account provider required")
	}
	if b.roster == nil {
		return nil, errors.New("student roster required")
	}

	codec, err := token.NewCodec(token.Config{
		Secret: b.config.Token.Secret,
		TTL:    b.config.Token.TTL,
		Issuer: b.config.Token.Issuer,
		Leeway: b.config.Token.Leeway,
	})
	if err != nil {
		return nil, err
	}

	registry := b.registry
	if registry == nil {
		if b.redis != nil {
			registry = session.NewRedisRegistry(b.redis, b.config.Session.RedisPrefix)
		} else {
			registry = session.NewMemoryRegistry()
		}
	}

	ldg := b.ldg
	if ldg == nil {
		ldg = ledger.New(nil)
	}

	e := &Engine{
		config:   b.config,
		codec:    codec,
		registry: registry,
		accounts: b.accounts,
		roster:   b.roster,
		ledger:   ldg,
		metrics:  NewMetrics(b.config.Metrics),
	}

	if b.config.Audit.Enabled {
		sink := b.auditSink
		if sink == nil {
			sink = NoOpSink{}
		}
		e.audit = internalaudit.NewDispatcher(internalaudit.Config{
			Enabled:    true,
			BufferSize: b.config.Audit.BufferSize,
			DropIfFull: b.config.Audit.DropIfFull,
		}, sink)
	}

	b.built = true
	return e, nil
}

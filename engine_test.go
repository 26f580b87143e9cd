package enrollauth_test

import (
	"testing"
	"time"

	enrollauth "github.com/registrarhq/enrollauth"
	"github.com/registrarhq/enrollauth/ledger"
	"github.com/registrarhq/enrollauth/store"
	"github.com/registrarhq/enrollauth/token"
)

func testConfig() enrollauth.Config {
	cfg := enrollauth.DefaultConfig()
	cfg.Token.Secret = []byte("engine-test-secret")
	cfg.Audit.Enabled = false
	return cfg
}

func testStore() *store.Memory {
	return store.NewMemory(
		[]enrollauth.Account{
			{Username: "admin", Password: "admin123", Role: enrollauth.RoleAdmin},
			{Username: "somchai", Password: "somchai123", StudentID: "S001", Role: enrollauth.RoleStudent},
			{Username: "somying", Password: "somying123", StudentID: "S002", Role: enrollauth.RoleStudent},
		},
		[]enrollauth.Student{
			{StudentID: "S001", Name: "Somchai Jaidee"},
			{StudentID: "S002", Name: "Somying Rakdee"},
			{StudentID: "S003", Name: "Somsak Meesuk"},
		},
	)
}

func newTestEngine(t *testing.T, seed []ledger.Record) *enrollauth.Engine {
	t.Helper()

	mem := testStore()
	engine, err := enrollauth.New().
		WithConfig(testConfig()).
		WithAccounts(mem).
		WithRoster(mem).
		WithLedger(ledger.New(seed)).
		Build()
	if err != nil {
		t.Fatalf("engine build: %v", err)
	}
	t.Cleanup(engine.Close)
	return engine
}

// mustClaims fabricates the minimal verified-claims shape read paths need.
func mustClaims(t *testing.T, engine *enrollauth.Engine, username string) *token.Claims {
	t.Helper()
	account, err := engine.AccountOf(username)
	if err != nil {
		t.Fatalf("account %s: %v", username, err)
	}
	return &token.Claims{
		Username:  account.Username,
		StudentID: account.StudentID,
		Role:      string(account.Role),
	}
}

func TestBuilderRequiresWiring(t *testing.T) {
	mem := testStore()

	tests := []struct {
		name    string
		builder *enrollauth.Builder
	}{
		{
			name:    "missing secret",
			builder: enrollauth.New().WithAccounts(mem).WithRoster(mem),
		},
		{
			name:    "missing accounts",
			builder: enrollauth.New().WithConfig(testConfig()).WithRoster(mem),
		},
		{
			name:    "missing roster",
			builder: enrollauth.New().WithConfig(testConfig()).WithAccounts(mem),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.builder.Build(); err == nil {
				t.Fatal("expected build to fail")
			}
		})
	}
}

func TestBuilderSingleUse(t *testing.T) {
	mem := testStore()
	b := enrollauth.New().WithConfig(testConfig()).WithAccounts(mem).WithRoster(mem)

	engine, err := b.Build()
	if err != nil {
		t.Fatalf("first build: %v", err)
	}
	defer engine.Close()

	if _, err := b.Build(); err == nil {
		t.Fatal("expected second build to fail")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*enrollauth.Config)
		wantValid bool
	}{
		{name: "baseline", mutate: func(c *enrollauth.Config) {}, wantValid: true},
		{
			name:   "missing secret",
			mutate: func(c *enrollauth.Config) { c.Token.Secret = nil },
		},
		{
			name:   "negative ttl",
			mutate: func(c *enrollauth.Config) { c.Token.TTL = -1 },
		},
		{
			name:   "excessive leeway",
			mutate: func(c *enrollauth.Config) { c.Token.Leeway = 5 * time.Minute },
		},
		{
			name:      "audit disabled ignores buffer",
			mutate:    func(c *enrollauth.Config) { c.Audit.Enabled = false; c.Audit.BufferSize = -1 },
			wantValid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err == nil) != tt.wantValid {
				t.Fatalf("Validate() = %v, wantValid %v", err, tt.wantValid)
			}
		})
	}
}

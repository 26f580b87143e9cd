// Command enrollauthd serves the record-keeping API with seeded demo data.
//
// Configuration is read from the environment (a .env file is honored when
// present):
//
//	ENROLLAUTH_ADDR        listen address (default ":8080")
//	ENROLLAUTH_SECRET      HS256 signing secret (an insecure development
//	                       default is used when unset)
//	ENROLLAUTH_REDIS_ADDR  when set, session state moves to this Redis
//	                       instead of process memory
//	ENROLLAUTH_AUDIT_LOG   when "1", audit events are written to stdout as
//	                       JSON lines
package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	enrollauth "github.com/registrarhq/enrollauth"
	"github.com/registrarhq/enrollauth/httpapi"
	"github.com/registrarhq/enrollauth/ledger"
	"github.com/registrarhq/enrollauth/store"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("enrollauthd: skipping .env: %v", err)
	}

	addr := envOr("ENROLLAUTH_ADDR", ":8080")

	secret := os.Getenv("ENROLLAUTH_SECRET")
	if secret == "" {
		secret = "forgot_secret"
		log.Println("enrollauthd: ENROLLAUTH_SECRET not set, using insecure development secret")
	}

	cfg := enrollauth.DefaultConfig()
	cfg.Token.Secret = []byte(secret)

	mem := store.NewMemory(seedAccounts(), seedStudents())

	builder := enrollauth.New().
		WithConfig(cfg).
		WithAccounts(mem).
		WithRoster(mem).
		WithLedger(ledger.New(seedEnrollments()))

	if redisAddr := os.Getenv("ENROLLAUTH_REDIS_ADDR"); redisAddr != "" {
		builder = builder.WithRedis(redis.NewClient(&redis.Options{Addr: redisAddr}))
		log.Printf("enrollauthd: session registry backed by redis at %s", redisAddr)
	}

	if os.Getenv("ENROLLAUTH_AUDIT_LOG") == "1" {
		builder = builder.WithAuditSink(enrollauth.NewJSONWriterSink(os.Stdout))
	}

	engine, err := builder.Build()
	if err != nil {
		log.Fatal("enrollauthd: engine build: ", err)
	}
	defer engine.Close()

	log.Printf("enrollauthd: listening on %s", addr)
	log.Fatal(http.ListenAndServe(addr, httpapi.NewRouter(engine)))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func seedAccounts() []enrollauth.Account {
	return []enrollauth.Account{
		{Username: "admin", Password: "admin123", Role: enrollauth.RoleAdmin},
		{Username: "somchai", Password: "somchai123", StudentID: "S001", Role: enrollauth.RoleStudent},
		{Username: "somying", Password: "somying123", StudentID: "S002", Role: enrollauth.RoleStudent},
		{Username: "somsak", Password: "somsak123", StudentID: "S003", Role: enrollauth.RoleStudent},
	}
}

func seedStudents() []enrollauth.Student {
	return []enrollauth.Student{
		{StudentID: "S001", Name: "Somchai Jaidee"},
		{StudentID: "S002", Name: "Somying Rakdee"},
		{StudentID: "S003", Name: "Somsak Meesuk"},
	}
}

func seedEnrollments() []ledger.Record {
	return []ledger.Record{
		{StudentID: "S002", CourseID: "CS102"},
		{StudentID: "S003", CourseID: "CS103"},
	}
}

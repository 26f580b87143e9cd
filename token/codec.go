package token

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultTTL is the validity window applied when [Config.TTL] is zero.
const DefaultTTL = 15 * time.Minute

// Config defines signing and verification parameters for a [Codec].
//
// Config instances are intended to be configured during initialization and
// then treated as immutable.
type Config struct {
	// Secret is the shared HS256 signing key. Required.
	Secret []byte
	// TTL is the claim validity window from issuance.
	TTL time.Duration
	// Issuer, when non-empty, is stamped into issued claims and enforced
	// on verification.
	Issuer string
	// Leeway tolerated on expiry checks. At most 2 minutes.
	Leeway time.Duration
}

// Claims is the identity payload embedded in a session token. StudentID is
// meaningful only for the student role. The registered ID claim carries a
// per-issuance UUID so two logins by the same account never produce the
// same token string.
type Claims struct {
	Username  string `json:"username"`
	StudentID string `json:"studentId,omitempty"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// Codec signs and verifies identity claims. Verification is a pure function
// of the token string and the shared secret: it never consults external
// state, so session liveness must be checked separately.
type Codec struct {
	config Config
}

// NewCodec validates cfg and returns a ready Codec.
func NewCodec(cfg Config) (*Codec, error) {
	if len(cfg.Secret) == 0 {
		return nil, errors.New("hs256 requires a signing secret")
	}
	if cfg.TTL == 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.TTL < 0 {
		return nil, errors.New("invalid TTL configuration")
	}
	if cfg.Leeway < 0 || cfg.Leeway > 2*time.Minute {
		return nil, errors.New("invalid leeway configuration")
	}
	cfg.Issuer = strings.TrimSpace(cfg.Issuer)
	return &Codec{config: cfg}, nil
}

// TTL returns the active validity window.
func (c *Codec) TTL() time.Duration {
	return c.config.TTL
}

// Issue builds a signed token for the given identity. issuedAt is stamped
// from the clock at call time; expiry is issuedAt plus the configured TTL.
// Issue has no side effects on any account state.
func (c *Codec) Issue(username, studentID, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		Username:  username,
		StudentID: studentID,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.config.TTL)),
		},
	}
	if c.config.Issuer != "" {
		claims.Issuer = c.config.Issuer
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(c.config.Secret)
}

// Verify parses and validates a token string, returning the embedded
// claims. It fails when the signature does not match the shared secret or
// when the expiry has passed; callers cannot distinguish the two cases.
func (c *Codec) Verify(tokenStr string) (*Claims, error) {
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if c.config.Leeway > 0 {
		options = append(options, jwt.WithLeeway(c.config.Leeway))
	}
	if c.config.Issuer != "" {
		options = append(options, jwt.WithIssuer(c.config.Issuer))
	}

	parser := jwt.NewParser(options...)
	tok, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return c.config.Secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

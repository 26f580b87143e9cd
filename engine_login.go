package enrollauth

import (
	"context"

	"github.com/registrarhq/enrollauth/token"
)

// Login checks credentials, issues a signed claim, and registers the
// resulting token as a live session for the account. Issuance and
// registration happen before Login returns, so a successful result is
// immediately usable against the authorization gates.
func (e *Engine) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if e == nil || e.codec == nil {
		return nil, ErrEngineNotReady
	}

	account, err := e.accounts.GetByCredentials(username, password)
	if err != nil {
		e.metricInc(MetricLoginFailure)
		e.emitAudit(ctx, auditEventLogin, false, username, "", "", ErrInvalidCredentials)
		return nil, ErrInvalidCredentials
	}

	tok, err := e.codec.Issue(account.Username, account.StudentID, string(account.Role))
	if err != nil {
		e.metricInc(MetricLoginFailure)
		e.emitAudit(ctx, auditEventLogin, false, username, "", "", err)
		return nil, err
	}

	if err := e.registry.Register(ctx, account.Username, tok); err != nil {
		e.metricInc(MetricLoginFailure)
		e.emitAudit(ctx, auditEventLogin, false, username, "", "", err)
		return nil, err
	}

	e.metricInc(MetricLoginSuccess)
	e.emitAudit(ctx, auditEventLogin, true, account.Username, account.StudentID, "", nil)
	return &LoginResult{
		Token:     tok,
		Role:      account.Role,
		StudentID: account.StudentID,
	}, nil
}

// Logout revokes the presented token for the authenticated account. The
// claim must name an existing account ([ErrUserNotFound]) and the token
// must currently be live ([ErrTokenRevoked]); revoking an unknown token is
// a failure here because the caller asserted it was a session.
func (e *Engine) Logout(ctx context.Context, claims *token.Claims, rawToken string) error {
	if e == nil || e.registry == nil {
		return ErrEngineNotReady
	}

	account, err := e.accounts.GetByUsername(claims.Username)
	if err != nil {
		e.emitAudit(ctx, auditEventLogout, false, claims.Username, "", "", ErrUserNotFound)
		return ErrUserNotFound
	}

	removed, err := e.registry.Revoke(ctx, account.Username, rawToken)
	if err != nil {
		return err
	}
	if !removed {
		e.emitAudit(ctx, auditEventLogout, false, account.Username, "", "", ErrTokenRevoked)
		return ErrTokenRevoked
	}

	e.metricInc(MetricLogout)
	e.emitAudit(ctx, auditEventLogout, true, account.Username, account.StudentID, "", nil)
	return nil
}

// ResetAccounts restores the account collection to its seed state and
// clears every tracked session, so tokens issued before the reset fail the
// liveness check afterwards.
func (e *Engine) ResetAccounts(ctx context.Context) error {
	if e == nil || e.accounts == nil {
		return ErrEngineNotReady
	}

	if err := e.accounts.Reset(); err != nil {
		return err
	}
	if err := e.registry.ResetAll(ctx); err != nil {
		return err
	}

	e.metricInc(MetricReset)
	e.emitAudit(ctx, auditEventAccountsReset, true, "", "", "", nil)
	return nil
}

// AccountOf returns the account record a verified claim maps to, or
// [ErrUserNotFound] when the account was removed since issuance.
func (e *Engine) AccountOf(username string) (*Account, error) {
	if e == nil || e.accounts == nil {
		return nil, ErrEngineNotReady
	}
	return e.accounts.GetByUsername(username)
}

// Accounts returns the full account listing for administrative views.
func (e *Engine) Accounts() []Account {
	if e == nil || e.accounts == nil {
		return nil
	}
	return e.accounts.List()
}

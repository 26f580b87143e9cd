package session

import "context"

// Registry tracks, per account, the set of session tokens currently
// considered live. Signature validity is necessary but not sufficient for a
// token to be accepted: revocation state lives here, out-of-band from the
// token's own content, which is what makes logout effective against
// already-issued, unexpired tokens.
//
// An account that has never registered a token is "untracked". Tracked and
// untracked accounts are distinct from an account with an empty live set:
// once tracked, an account keeps rejecting tokens that are not members, even
// after its last token is revoked.
type Registry interface {
	// Register adds token to the account's live set and marks the
	// account tracked. Multiple concurrent sessions per account are
	// allowed; there is no upper bound.
	Register(ctx context.Context, username, token string) error

	// IsLive reports whether token is a member of the account's live set.
	IsLive(ctx context.Context, username, token string) (bool, error)

	// Tracked reports whether the account has ever registered a token
	// since the last ResetAll.
	Tracked(ctx context.Context, username string) (bool, error)

	// Revoke removes token from the account's live set, reporting
	// whether it was present. Revoking an absent token is not an error
	// at this layer; callers that required presence treat false as a
	// failure signal.
	Revoke(ctx context.Context, username, token string) (bool, error)

	// ResetAll clears every account's live set and tracking state.
	ResetAll(ctx context.Context) error
}

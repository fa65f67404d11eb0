package domain

import "context"

// Identity is the authenticated principal carried by a verified token.
type Identity struct {
	UserID string `json:"userId"`
	Email  string `json:"userEmail"`
}

// VerifyStatus is the outcome of a token verification.
type VerifyStatus int

const (
	VerifyOK VerifyStatus = iota
	VerifyInvalidSignature
	VerifyExpired
	VerifyMalformed
)

func (s VerifyStatus) String() string {
	switch s {
	case VerifyOK:
		return "ok"
	case VerifyInvalidSignature:
		return "invalid_signature"
	case VerifyExpired:
		return "expired"
	case VerifyMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// TokenVerification carries either an Identity (Status == VerifyOK) or the
// reason the token was rejected.
type TokenVerification struct {
	Status   VerifyStatus
	Identity Identity
}

// OK reports whether the token was accepted.
func (v TokenVerification) OK() bool {
	return v.Status == VerifyOK
}

type identityKey struct{}

// ContextWithIdentity returns a copy of ctx carrying id.
func ContextWithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext extracts the Identity stored by ContextWithIdentity.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok && id.UserID != ""
}

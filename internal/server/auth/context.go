package auth

import "context"

// unexported, collision-proof context keys
type identityContextKeyType struct{}
type authErrorContextKeyType struct{}

var (
	identityKey  = identityContextKeyType{}
	authErrorKey = authErrorContextKeyType{}
)

// ContextWithIdentity attaches a validated caller identity to the request
// context. The authenticated state lives for this request only.
func ContextWithIdentity(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFromContext extracts the authenticated identity, if any.
func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	identity, ok := ctx.Value(identityKey).(*Identity)
	return identity, ok
}

// ContextWithError records why token validation failed, so protected
// operations can report invalid-token rather than plain missing-auth.
func ContextWithError(ctx context.Context, err error) context.Context {
	return context.WithValue(ctx, authErrorKey, err)
}

// ErrorFromContext returns the recorded token validation failure, or nil.
func ErrorFromContext(ctx context.Context) error {
	err, _ := ctx.Value(authErrorKey).(error)
	return err
}

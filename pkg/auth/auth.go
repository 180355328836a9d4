// Package auth verifies bearer credentials against the identity provider.
package auth

import "context"

// Identity is the verified caller.
type Identity struct {
	UID   string
	Email string
}

// Verifier turns a bearer token into an Identity or fails.
type Verifier interface {
	Verify(ctx context.Context, token string) (Identity, error)
}

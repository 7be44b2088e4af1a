package middleware

import (
	"context"

	"firebase.google.com/go/v4/auth"
)

// FirebaseTokenVerifier is the part of *auth.Client the authenticator needs.
type FirebaseTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// verifyFirebase returns the Firebase UID behind an ID token.
func verifyFirebase(ctx context.Context, verifier FirebaseTokenVerifier, idToken string) (string, error) {
	token, err := verifier.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", err
	}
	return token.UID, nil
}

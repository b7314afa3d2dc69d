// Package claims decodes the identity claims carried inside a credential.
//
// Decoding deliberately skips signature verification: the result is trusted
// for display only, never for access control. Authorization is enforced by
// the server on every call; a client that forged claims here would still be
// rejected remotely.
package claims

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sohail9972/Trip-planner-EaseMyTrip/client/internal/types"
)

// userClaims is the claim set the backend embeds in access tokens.
type userClaims struct {
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	jwt.RegisteredClaims
}

// Decode extracts the user profile from a credential without verifying its
// signature. An empty subject is rejected so the session never holds a user
// with no identity.
func Decode(token string) (types.User, error) {
	var uc userClaims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &uc); err != nil {
		return types.User{}, fmt.Errorf("decode credential: %w", err)
	}
	if uc.Subject == "" {
		return types.User{}, fmt.Errorf("decode credential: missing subject claim")
	}
	return types.User{
		ID:       uc.Subject,
		Email:    uc.Email,
		FullName: uc.FullName,
	}, nil
}

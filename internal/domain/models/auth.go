package models

import "github.com/golang-jwt/jwt/v5"

// ClerkClaims represents the JWT claims structure of a Clerk session token.
// See: https://clerk.com/docs/backend-requests/resources/session-tokens
type ClerkClaims struct {
	jwt.RegisteredClaims        // Standard JWT claims (sub, iss, aud, exp, iat, etc.)
	AuthorizedParty      string `json:"azp"` // Origin of the frontend that requested the token
	SessionID            string `json:"sid"`
}

// GetClerkID returns the Clerk user ID from the JWT subject claim.
// This is the tenant identifier every owned row is keyed by.
func (c *ClerkClaims) GetClerkID() string {
	return c.Subject
}

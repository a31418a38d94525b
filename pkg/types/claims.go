package types

import "github.com/golang-jwt/jwt/v5"

// Claims is the identity asserted by the external provider's token.
// ExternalID is the provider's stable user id; Name and Email are used
// for lazy user provisioning.
type Claims struct {
	ExternalID string `json:"external_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	jwt.RegisteredClaims
}

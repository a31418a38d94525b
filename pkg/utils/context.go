package utils

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/tracknest/tracker-go/pkg/types"
)

var ErrNoIdentity = errors.New("identity claims not found in context")

// GetClaims returns the identity claims stored by the JWT middleware.
func GetClaims(c *gin.Context) (*types.Claims, error) {
	claimsVal, exists := c.Get("claims")
	if !exists {
		return nil, ErrNoIdentity
	}

	claims, ok := claimsVal.(*types.Claims)
	if !ok {
		return nil, errors.New("invalid identity claims type")
	}

	return claims, nil
}

// GetExternalIDFromContext returns the external user id of the caller.
func GetExternalIDFromContext(c *gin.Context) (string, error) {
	claims, err := GetClaims(c)
	if err != nil {
		return "", err
	}
	return claims.ExternalID, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// RoleAdmin is the only role allowed to publish templates.
const RoleAdmin = "admin"

// TokenClaims is the claim set of tokens issued by the backend.
type TokenClaims struct {
	// Role is the privilege of the bearer, e.g. [RoleAdmin].
	Role string `json:"role"`

	jwt.RegisteredClaims
}

// Token wraps a JWT token with the fields the HTTP layer needs.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Subject is the "sub" claim (who the token was issued to).
	Subject string `json:"-"`

	// Role is the role claim.
	Role string `json:"-"`
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}

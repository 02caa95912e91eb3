// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-remote-config/models"
)

func TestGenerateJWTToken_RoundTrip(t *testing.T) {
	token, err := GenerateJWTToken("rc", "ops", models.RoleAdmin, time.Hour, "secret")
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)
	assert.Equal(t, token.SignedString, token.String())

	parsed, err := ValidateAndParseJWTToken(token.SignedString, "secret", "rc")
	require.NoError(t, err)
	assert.Equal(t, "ops", parsed.Subject)
	assert.Equal(t, models.RoleAdmin, parsed.Role)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name                           string
		issuer, subject, role, signKey string
		duration                       time.Duration
	}{
		{"empty issuer", "", "s", "admin", "k", time.Hour},
		{"empty subject", "i", "", "admin", "k", time.Hour},
		{"empty role", "i", "s", "", "k", time.Hour},
		{"empty key", "i", "s", "admin", "", time.Hour},
		{"zero duration", "i", "s", "admin", "k", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.subject, tt.role, tt.duration, tt.signKey)
			assert.ErrorIs(t, err, ErrInvalidTokenParams)
		})
	}
}

func TestValidateAndParseJWTToken_Rejects(t *testing.T) {
	valid, err := GenerateJWTToken("rc", "ops", models.RoleAdmin, time.Hour, "secret")
	require.NoError(t, err)

	_, err = ValidateAndParseJWTToken(valid.SignedString, "other-secret", "rc")
	assert.Error(t, err, "wrong key")

	_, err = ValidateAndParseJWTToken(valid.SignedString, "secret", "someone-else")
	assert.Error(t, err, "wrong issuer")

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &models.TokenClaims{
		Role: models.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "rc",
			Subject:   "ops",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	s, err := expired.SignedString([]byte("secret"))
	require.NoError(t, err)
	_, err = ValidateAndParseJWTToken(s, "secret", "rc")
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	noSubject := jwt.NewWithClaims(jwt.SigningMethodHS256, &models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{Issuer: "rc"},
	})
	s, err = noSubject.SignedString([]byte("secret"))
	require.NoError(t, err)
	_, err = ValidateAndParseJWTToken(s, "secret", "rc")
	assert.ErrorIs(t, err, ErrEmptySubject)
}

func TestParseBearerToken(t *testing.T) {
	tok, err := ParseBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", tok)

	tok, err = ParseBearerToken("  bearer   xyz ")
	require.NoError(t, err)
	assert.Equal(t, "xyz", tok)

	for _, h := range []string{"", "Bearer", "Basic abc", "Bearer a b"} {
		_, err = ParseBearerToken(h)
		assert.ErrorIs(t, err, ErrInvalidAuthorizationHeader, h)
	}
}

func TestNewTraceID(t *testing.T) {
	a, b := NewTraceID(), NewTraceID()
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}

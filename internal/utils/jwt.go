package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-flatnav/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateWriteToken creates an HMAC-SHA256 signed token that authorises
// writes to the key-value proxy.
//
// The token carries the standard claims iss, sub, iat and, when
// tokenDuration is positive, exp. A zero duration issues a token without
// expiry, which suits a long-lived device secret.
//
// Example usage:
//
//	token, err := utils.GenerateWriteToken("flatnav", "laptop", 0, "secret")
func GenerateWriteToken(issuer, subject string, tokenDuration time.Duration, signKey string) (models.WriteToken, error) {
	if issuer == "" || subject == "" || signKey == "" {
		return models.WriteToken{}, errors.New("invalid params for generating write token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:   issuer,
		Subject:  subject,
		IssuedAt: jwt.NewNumericDate(now),
	}
	if tokenDuration > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(tokenDuration))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.WriteToken{}, fmt.Errorf("error occurred during signing write token: %w", err)
	}

	return models.WriteToken{Token: token, RegisteredClaims: *claims, SignedString: tokenString}, nil
}

// ValidateWriteToken verifies the signature, the issuer and, when present,
// the expiry of tokenString and returns its claims.
func ValidateWriteToken(tokenString, tokenSignKey, tokenIssuer string) (models.WriteToken, error) {
	parsed := models.WriteToken{}
	token, err := jwt.ParseWithClaims(tokenString, &parsed.RegisteredClaims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.WriteToken{}, fmt.Errorf("error occurred validating write token: %w", err)
	}

	if parsed.Subject == "" {
		return models.WriteToken{}, errors.New("empty subject error")
	}

	parsed.Token = token
	parsed.SignedString = tokenString
	return parsed, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer x"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

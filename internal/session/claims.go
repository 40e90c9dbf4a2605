package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the fields of the backend-issued access token the console cares about
type Claims struct {
	UserID    string
	Role      string
	ExpiresAt *time.Time
}

// Expired reports whether the token expired at now
func (c Claims) Expired(now time.Time) bool {
	return c.ExpiresAt != nil && !now.Before(*c.ExpiresAt)
}

// InspectToken reads the claims of a JWT without verifying its signature.
// The backend verifies every request; the console only needs the expiry and role for display.
func InspectToken(token string) (Claims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return Claims{}, fmt.Errorf("failed to parse token: %w", err)
	}

	var result Claims
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return Claims{}, fmt.Errorf("invalid token expiry: %w", err)
	}
	if exp != nil {
		t := exp.Time
		result.ExpiresAt = &t
	}
	result.UserID = stringClaim(claims, "user_id")
	if result.UserID == "" {
		result.UserID = stringClaim(claims, "sub")
	}
	result.Role = stringClaim(claims, "role")
	return result, nil
}

func stringClaim(claims jwt.MapClaims, key string) string {
	value, ok := claims[key]
	if !ok || value == nil {
		return ""
	}
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return fmt.Sprintf("%.0f", v)
	default:
		return fmt.Sprint(v)
	}
}

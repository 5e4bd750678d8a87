// Package auth handles session token generation and validation.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// JWTManager signs and validates HS256 session tokens carrying the user
// identity and, when the user administers an institution, the tenant scope.
type JWTManager struct {
	secret     []byte
	issuer     string
	sessionTTL time.Duration
}

// NewJWTManager creates a new JWT manager.
// secret must be at least 32 characters for HS256 security.
func NewJWTManager(secret string, issuer string, sessionTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:     []byte(secret),
		issuer:     issuer,
		sessionTTL: sessionTTL,
	}
}

// sessionClaims extends standard JWT claims with the resolved institution.
type sessionClaims struct {
	jwt.RegisteredClaims
	InstitutionID string `json:"institutionId,omitempty"`
}

// GenerateSessionToken creates a signed HS256 JWT with the user ID as
// subject. A zero institutionID omits the tenant claim; such a session can
// authenticate but cannot run institution-scoped operations.
func (m *JWTManager) GenerateSessionToken(userID, institutionID primitive.ObjectID) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.Hex(),
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.sessionTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	if !institutionID.IsZero() {
		claims.InstitutionID = institutionID.Hex()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// ValidateSessionToken parses and validates a session token. Returns the
// user ID and the institution ID; the latter is zero when the token carries
// no tenant claim.
func (m *JWTManager) ValidateSessionToken(tokenString string) (primitive.ObjectID, primitive.ObjectID, error) {
	if tokenString == "" {
		return primitive.NilObjectID, primitive.NilObjectID, fmt.Errorf("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid {
		return primitive.NilObjectID, primitive.NilObjectID, fmt.Errorf("invalid token claims")
	}

	if claims.Issuer != m.issuer {
		return primitive.NilObjectID, primitive.NilObjectID, fmt.Errorf("invalid issuer: expected %s, got %s", m.issuer, claims.Issuer)
	}

	userID, err := primitive.ObjectIDFromHex(claims.Subject)
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, fmt.Errorf("invalid subject: %w", err)
	}

	institutionID := primitive.NilObjectID
	if claims.InstitutionID != "" {
		institutionID, err = primitive.ObjectIDFromHex(claims.InstitutionID)
		if err != nil {
			return primitive.NilObjectID, primitive.NilObjectID, fmt.Errorf("invalid institution claim: %w", err)
		}
	}

	return userID, institutionID, nil
}

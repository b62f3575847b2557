package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the decoded token payload. The role claim is advisory only:
// every request re-derives the authoritative role and tenant from the
// credential store, so a stale claim can never grant access.
type Claims struct {
	SubjectID int64  `json:"user_id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed tokens. The secret is injected
// once at construction and never reloaded.
type TokenService struct {
	secret       []byte
	systemExpiry time.Duration
	courseExpiry time.Duration
}

func NewTokenService(secret string, systemExpiry, courseExpiry time.Duration) *TokenService {
	return &TokenService{
		secret:       []byte(secret),
		systemExpiry: systemExpiry,
		courseExpiry: courseExpiry,
	}
}

// GenerateSystemToken issues a system-admin token with the short expiry.
func (s *TokenService) GenerateSystemToken(userID int64, name, role string) (string, error) {
	return s.generate(userID, name, role, s.systemExpiry)
}

// GenerateCourseToken issues a staff token with the long expiry. The role
// claim records the tenant binding as "ROLE:courseID" for traceability.
func (s *TokenService) GenerateCourseToken(userID int64, username, role string, golfCourseID int64) (string, error) {
	composite := role + ":" + strconv.FormatInt(golfCourseID, 10)
	return s.generate(userID, username, composite, s.courseExpiry)
}

func (s *TokenService) generate(userID int64, name, role string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		SubjectID: userID,
		Name:      name,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks signature and expiry and decodes the claims. Callers must
// treat any error as a uniform denial; errors.Is(err, jwt.ErrTokenExpired)
// is available for server-side logging only.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf(msgUnexpectedSigningMethod, token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		return nil, fmt.Errorf(msgTokenParseFailed, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf(msgInvalidTokenClaims)
	}

	return claims, nil
}

package services

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTService issues and verifies the stateless session credential binding a
// user to an organization. Any process holding the signing secret can verify
// tokens issued by any other process; no session state is stored.
type JWTService struct {
	secret []byte
	expiry time.Duration
}

type Claims struct {
	UserID         uint `json:"user_id"`
	OrganizationID uint `json:"organization_id"`
	jwt.RegisteredClaims
}

func NewJWTService(secret string, expiry time.Duration) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		expiry: expiry,
	}
}

// Issue signs a credential for the given user and organization. With a zero
// expiry the token carries no expiry claim and stays valid until the client
// discards it.
func (s *JWTService) Issue(userID, orgID uint) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:         userID,
		OrganizationID: orgID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(now),
			Issuer:   "hrms-api",
			Subject:  strconv.FormatUint(uint64(userID), 10),
			ID:       uuid.New().String(),
		},
	}
	if s.expiry > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.expiry))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate parses and verifies a credential. Every failure mode collapses to
// ErrInvalidToken so responses never reveal whether a token was malformed,
// expired, or signed with the wrong key.
func (s *JWTService) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == 0 || claims.OrganizationID == 0 {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// Package auth implements the stateless bearer-token flow: issuing signed
// JWTs for authenticated users and validating them on incoming requests.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/bookstore/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims extends the registered JWT claims with the user's display name.
// The user id travels in the standard "sub" claim.
type Claims struct {
	jwt.RegisteredClaims
	Name string `json:"name"`
}

// Identity is the caller identity extracted from a validated token.
type Identity struct {
	UserID   string
	UserName string
}

// TokenIssuer mints signed, time-limited bearer tokens. The signing key and
// validity window come from server configuration, constructed once at
// startup and passed in explicitly.
type TokenIssuer struct {
	secret   []byte
	validity time.Duration
}

func NewTokenIssuer(secret []byte, validity time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: secret, validity: validity}
}

// Issue signs a token for an already-authenticated identity. The caller must
// have verified the password beforehand.
func (i *TokenIssuer) Issue(userID, userName string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.validity)),
		},
		Name: userName,
	})

	return token.SignedString(i.secret)
}

// TokenValidator verifies token signature and expiry against the same
// process-wide key the issuer signs with.
type TokenValidator struct {
	secret []byte
}

func NewTokenValidator(secret []byte) *TokenValidator {
	return &TokenValidator{secret: secret}
}

// Validate checks the token's signature and expiry and returns the embedded
// identity. Expired tokens yield common.ErrTokenExpired; any other failure
// (bad signature, malformed token, wrong algorithm) yields
// common.ErrInvalidToken.
func (v *TokenValidator) Validate(tokenString string) (*Identity, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return v.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}
	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return &Identity{UserID: claims.Subject, UserName: claims.Name}, nil
}

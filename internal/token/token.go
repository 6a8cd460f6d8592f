// Package token issues and verifies the signed JWTs that carry a session.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	issuer   = "linkup"
	audience = "linkup-api"

	// AccessTTL is the lifetime of an access token.
	AccessTTL = 15 * time.Minute
	// RefreshTTL is the lifetime of a refresh token.
	RefreshTTL = 7 * 24 * time.Hour
)

var (
	// ErrExpired is returned when a token's signature checks out but its
	// expiry has passed. Callers report this distinctly from ErrInvalid.
	ErrExpired = errors.New("token expired")
	// ErrInvalid is returned for any token that fails verification for a
	// reason other than expiry.
	ErrInvalid = errors.New("invalid token")
)

// Claims are the registered claims carried by both token kinds.
type Claims struct {
	jwt.RegisteredClaims
}

// Issuer signs and verifies access and refresh tokens with separate secrets.
type Issuer struct {
	accessSecret  []byte
	refreshSecret []byte
	now           func() time.Time
}

// NewIssuer builds an Issuer from the two signing secrets.
func NewIssuer(accessSecret, refreshSecret string) *Issuer {
	return &Issuer{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		now:           time.Now,
	}
}

// Pair is an access token plus the refresh token minted alongside it.
type Pair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// IssuePair mints a fresh access/refresh token pair for the given user.
func (i *Issuer) IssuePair(userID uint) (Pair, error) {
	access, err := i.sign(userID, AccessTTL, i.accessSecret)
	if err != nil {
		return Pair{}, fmt.Errorf("signing access token: %w", err)
	}
	refresh, err := i.sign(userID, RefreshTTL, i.refreshSecret)
	if err != nil {
		return Pair{}, fmt.Errorf("signing refresh token: %w", err)
	}
	return Pair{AccessToken: access, RefreshToken: refresh}, nil
}

func (i *Issuer) sign(userID uint, ttl time.Duration, secret []byte) (string, error) {
	now := i.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Audience:  jwt.ClaimStrings{audience},
			Subject:   fmt.Sprintf("%d", userID),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// VerifyAccess validates an access token and returns the user ID it names.
func (i *Issuer) VerifyAccess(tokenString string) (uint, error) {
	return i.verify(tokenString, i.accessSecret)
}

// VerifyRefresh validates a refresh token and returns the user ID it names.
func (i *Issuer) VerifyRefresh(tokenString string) (uint, error) {
	return i.verify(tokenString, i.refreshSecret)
}

func (i *Issuer) verify(tokenString string, secret []byte) (uint, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithAudience(audience),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrExpired
		}
		return 0, ErrInvalid
	}
	if !token.Valid {
		return 0, ErrInvalid
	}

	var userID uint
	if _, err := fmt.Sscanf(claims.Subject, "%d", &userID); err != nil || userID == 0 {
		return 0, ErrInvalid
	}
	return userID, nil
}

package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mzaitsev/authd/internal/common/clock"
	userdomain "github.com/mzaitsev/authd/internal/user/domain"
)

// TokenIssuer signs self-contained session tokens. The server keeps no
// record of a token after it is returned to the client.
type TokenIssuer struct {
	jwtSecret []byte
	clock     clock.Clock
	tokenTTL  time.Duration
}

func NewTokenIssuer(jwtSecret string, tokenTTL time.Duration, clk clock.Clock) *TokenIssuer {
	return &TokenIssuer{
		jwtSecret: []byte(jwtSecret),
		clock:     clk,
		tokenTTL:  tokenTTL,
	}
}

func (ti *TokenIssuer) Issue(user userdomain.User) (string, error) {
	now := ti.clock.Now()
	claims := jwt.MapClaims{
		"sub":   string(user.ID),
		"email": user.Email,
		"exp":   now.Add(ti.tokenTTL).Unix(),
		"iat":   now.Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := t.SignedString(ti.jwtSecret)
	if err != nil {
		return "", err
	}

	incrementSessionTokensIssued()
	return tokenString, nil
}

package jwtmw

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for any token that cannot be trusted: bad
// signature, malformed structure, wrong signing method or past expiry.
var ErrInvalidToken = errors.New("invalid token")

// AuthClaims is the decoded payload of a verified bearer token.
type AuthClaims struct {
	// Email is the subject claim the token was issued for.
	Email string
	// UserID is the custom userId claim. It is nil for legacy tokens that
	// were issued without it.
	UserID *uint
	// ExpiresAt is the token's natural end of life.
	ExpiresAt time.Time
}

// Codec issues and verifies signed bearer tokens. It is stateless: the
// secret and TTL are fixed at construction and safe for concurrent use.
type Codec struct {
	secret     []byte
	expiration time.Duration
}

// NewCodec creates a Codec signing with the provided secret. Tokens expire
// after the given duration.
func NewCodec(secret string, expiration time.Duration) *Codec {
	return &Codec{
		secret:     []byte(secret),
		expiration: expiration,
	}
}

// Issue creates a signed HS256 token with the user's email as subject and
// the user id as a custom claim.
func (c *Codec) Issue(email string, userID uint) (string, error) {
	return c.IssueWithClaims(email, userID, nil)
}

// IssueWithClaims is Issue with additional custom claims. Reserved claims
// (sub, userId, iat, exp) always win over entries in extra.
func (c *Codec) IssueWithClaims(email string, userID uint, extra map[string]any) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{}
	for k, v := range extra {
		claims[k] = v
	}
	claims["sub"] = email
	claims["userId"] = userID
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(c.expiration).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// VerifyAndDecode checks the token's signature and expiry, then returns its
// claims. No claim is read before the signature verifies.
func (c *Codec) VerifyAndDecode(tokenStr string) (*AuthClaims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// Only HMAC is accepted; anything else is a forgery attempt.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	email, ok := claims["sub"].(string)
	if !ok || email == "" {
		return nil, ErrInvalidToken
	}

	out := &AuthClaims{Email: email}
	if f, ok := claims["userId"].(float64); ok { // JWT numbers decode as float64
		id := uint(f)
		out.UserID = &id
	}
	if exp, ok := claims["exp"].(float64); ok {
		out.ExpiresAt = time.Unix(int64(exp), 0)
	}

	return out, nil
}

// ExtractUserID verifies the token and returns its userId claim, or nil when
// the token is invalid or was issued without the claim.
func (c *Codec) ExtractUserID(tokenStr string) *uint {
	decoded, err := c.VerifyAndDecode(tokenStr)
	if err != nil {
		return nil
	}
	return decoded.UserID
}

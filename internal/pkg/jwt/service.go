package jwt

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// Subject is the account an access token is issued for.
type Subject struct {
	UserID   uuid.UUID
	Email    string
	UserType string
}

type Claims struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email,omitempty"`
	UserType  string    `json:"user_type,omitempty"`
	TokenType string    `json:"token_type"`

	jwtlib.RegisteredClaims
}

type Service interface {
	GenerateAccessToken(sub Subject) (string, error)
	GenerateRefreshToken(userID uuid.UUID) (string, error)
	ValidateToken(tokenString string) (Claims, error)
	IsRefreshToken(claims Claims) bool
}

type keySpec struct {
	secret []byte
	ttl    time.Duration
}

type HMACService struct {
	issuer string
	keys   map[string]keySpec
	now    func() time.Time
}

// NewHMACService signs tokens with HS256, access and refresh tokens under
// separate secrets. Tokens carry issuer in the iss claim and are rejected on
// validation when it differs.
func NewHMACService(issuer, accessSecret, refreshSecret string, accessExpiresIn, refreshExpiresIn time.Duration) *HMACService {
	return &HMACService{
		issuer: issuer,
		keys: map[string]keySpec{
			TokenTypeAccess:  {secret: []byte(accessSecret), ttl: accessExpiresIn},
			TokenTypeRefresh: {secret: []byte(refreshSecret), ttl: refreshExpiresIn},
		},
		now: time.Now,
	}
}

// WithClock replaces the time source; used by tests.
func (s *HMACService) WithClock(now func() time.Time) *HMACService {
	s.now = now
	return s
}

func (s *HMACService) GenerateAccessToken(sub Subject) (string, error) {
	return s.sign(Claims{
		UserID:    sub.UserID,
		Email:     sub.Email,
		UserType:  sub.UserType,
		TokenType: TokenTypeAccess,
	})
}

func (s *HMACService) GenerateRefreshToken(userID uuid.UUID) (string, error) {
	return s.sign(Claims{UserID: userID, TokenType: TokenTypeRefresh})
}

// ValidateToken reads the token_type claim first, then verifies the
// signature with that type's secret.
func (s *HMACService) ValidateToken(tokenString string) (Claims, error) {
	var peek Claims
	if _, _, err := jwtlib.NewParser().ParseUnverified(tokenString, &peek); err != nil {
		return Claims{}, ErrTokenInvalid
	}
	key, ok := s.key(peek.TokenType)
	if !ok {
		return Claims{}, ErrTokenInvalid
	}

	opts := []jwtlib.ParserOption{
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithTimeFunc(s.now),
		jwtlib.WithExpirationRequired(),
	}
	if s.issuer != "" {
		opts = append(opts, jwtlib.WithIssuer(s.issuer))
	}

	var c Claims
	tok, err := jwtlib.NewParser(opts...).ParseWithClaims(tokenString, &c, func(*jwtlib.Token) (any, error) {
		return key.secret, nil
	})
	switch {
	case errors.Is(err, jwtlib.ErrTokenExpired):
		return Claims{}, ErrTokenExpired
	case err != nil, tok == nil, !tok.Valid:
		return Claims{}, ErrTokenInvalid
	case c.UserID == uuid.Nil:
		return Claims{}, ErrTokenInvalid
	}
	return c, nil
}

func (s *HMACService) IsRefreshToken(claims Claims) bool {
	return claims.TokenType == TokenTypeRefresh
}

func (s *HMACService) sign(c Claims) (string, error) {
	key, ok := s.key(c.TokenType)
	if !ok {
		return "", ErrTokenInvalid
	}

	now := s.now().UTC()
	c.RegisteredClaims = jwtlib.RegisteredClaims{
		IssuedAt:  jwtlib.NewNumericDate(now),
		ExpiresAt: jwtlib.NewNumericDate(now.Add(key.ttl)),
		Subject:   c.UserID.String(),
		Issuer:    s.issuer,
		ID:        uuid.NewString(),
	}
	return jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, c).SignedString(key.secret)
}

// key returns the signing material for a token type, refusing types with
// no secret or a non-positive lifetime.
func (s *HMACService) key(tokenType string) (keySpec, bool) {
	k, ok := s.keys[tokenType]
	if !ok || len(k.secret) == 0 || k.ttl <= 0 {
		return keySpec{}, false
	}
	return k, true
}

var _ Service = (*HMACService)(nil)

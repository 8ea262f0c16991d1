package jwt

import (
	"errors"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func TestHMACService_RoundTrip(t *testing.T) {
	svc := NewHMACService("intern-match", "access-secret", "refresh-secret", time.Minute, time.Hour)
	id := uuid.New()

	access, err := svc.GenerateAccessToken(Subject{UserID: id, Email: "a@b.io", UserType: "company"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	claims, err := svc.ValidateToken(access)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if claims.UserID != id || claims.Email != "a@b.io" || claims.UserType != "company" || claims.TokenType != TokenTypeAccess {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.Subject != id.String() || claims.Issuer != "intern-match" {
		t.Fatalf("unexpected registered claims: %+v", claims.RegisteredClaims)
	}
	if svc.IsRefreshToken(claims) {
		t.Fatalf("access token reported as refresh token")
	}

	refresh, err := svc.GenerateRefreshToken(id)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	rc, err := svc.ValidateToken(refresh)
	if err != nil || !svc.IsRefreshToken(rc) || rc.UserID != id {
		t.Fatalf("expected valid refresh token, got %+v err=%v", rc, err)
	}
}

func TestHMACService_Expired(t *testing.T) {
	now := time.Now()
	svc := NewHMACService("intern-match", "a", "r", time.Minute, time.Hour).WithClock(func() time.Time { return now })

	tok, err := svc.GenerateAccessToken(Subject{UserID: uuid.New()})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	svc.WithClock(func() time.Time { return now.Add(2 * time.Minute) })
	if _, err := svc.ValidateToken(tok); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestHMACService_WrongIssuerOrSecret(t *testing.T) {
	a := NewHMACService("intern-match", "a", "r", time.Minute, time.Hour)
	b := NewHMACService("other", "a", "r", time.Minute, time.Hour)
	c := NewHMACService("intern-match", "x", "y", time.Minute, time.Hour)

	tok, _ := a.GenerateAccessToken(Subject{UserID: uuid.New()})
	if _, err := b.ValidateToken(tok); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected issuer mismatch to be invalid, got %v", err)
	}
	if _, err := c.ValidateToken(tok); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected secret mismatch to be invalid, got %v", err)
	}
}

func TestHMACService_ForgedTokenType(t *testing.T) {
	svc := NewHMACService("intern-match", "access-secret", "refresh-secret", time.Minute, time.Hour)

	// signed with the access secret but claiming to be a refresh token
	forged := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, Claims{
		UserID:    uuid.New(),
		TokenType: TokenTypeRefresh,
		RegisteredClaims: jwtlib.RegisteredClaims{
			Issuer:    "intern-match",
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Minute)),
		},
	})
	tok, err := forged.SignedString([]byte("access-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := svc.ValidateToken(tok); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected forged token type to be rejected, got %v", err)
	}
	if _, err := svc.ValidateToken("not.a.jwt"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected garbage to be rejected, got %v", err)
	}
}

func TestHMACService_MissingSecret(t *testing.T) {
	svc := NewHMACService("intern-match", "", "", time.Minute, time.Hour)
	if _, err := svc.GenerateAccessToken(Subject{UserID: uuid.New()}); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

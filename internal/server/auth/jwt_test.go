package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/secureshare/internal/common"
)

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")
	now := time.Now()

	tok, err := GenerateSessionToken("s-1", "c-1", "fp-1", secret, now, time.Hour)
	if err != nil {
		t.Fatalf("GenerateSessionToken error: %v", err)
	}

	claims, err := ParseSessionToken(tok, secret, now.Add(time.Minute))
	if err != nil {
		t.Fatalf("ParseSessionToken error: %v", err)
	}
	if claims.ID != "s-1" || claims.Subject != "c-1" || claims.Fingerprint != "fp-1" {
		t.Fatalf("claims mismatch: %+v", claims)
	}
}

func TestParseSessionToken_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	now := time.Now()

	tok, err := GenerateSessionToken("s", "c", "fp", secret, now, 30*time.Minute)
	if err != nil {
		t.Fatalf("GenerateSessionToken error: %v", err)
	}

	_, err = ParseSessionToken(tok, secret, now.Add(31*time.Minute))
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Fatalf("expected jwt.ErrTokenExpired in chain, got %v", err)
	}
}

func TestParseSessionToken_WrongSecret(t *testing.T) {
	t.Parallel()

	now := time.Now()
	tok, err := GenerateSessionToken("s", "c", "fp", []byte("right-secret"), now, time.Hour)
	if err != nil {
		t.Fatalf("GenerateSessionToken error: %v", err)
	}

	_, err = ParseSessionToken(tok, []byte("wrong-secret"), now)
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
}

func TestParseSessionToken_MalformedString(t *testing.T) {
	t.Parallel()

	_, err := ParseSessionToken("not.a.jwt", []byte("k"), time.Now())
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
}

func TestParseSessionToken_RejectsOtherAlgorithms(t *testing.T) {
	t.Parallel()

	secret := []byte("k")
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "s",
			Subject:   "c",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(secret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := ParseSessionToken(tok, secret, time.Now()); !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
}

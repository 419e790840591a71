package token

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestService_IssueVerifyRoundTrip(t *testing.T) {
	svc := NewService("secret")

	signed, err := svc.Issue("a@x.com", time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	subject, err := svc.Verify(signed)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if subject != "a@x.com" {
		t.Fatalf("expected subject a@x.com, got %q", subject)
	}
}

func TestService_Expired(t *testing.T) {
	svc := NewService("secret")

	signed, err := svc.Issue("a@x.com", -time.Minute)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := svc.Verify(signed); !errors.Is(err, ErrExpired) {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
}

func TestService_WrongSecret(t *testing.T) {
	signed, err := NewService("secret-a").Issue("a@x.com", time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := NewService("secret-b").Verify(signed); !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestService_TamperedSignature(t *testing.T) {
	svc := NewService("secret")

	signed, err := svc.Issue("a@x.com", time.Hour)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// Flip one bit in the last signature byte.
	tampered := []byte(signed)
	tampered[len(tampered)-1] ^= 0x01

	if _, err := svc.Verify(string(tampered)); !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestService_Malformed(t *testing.T) {
	svc := NewService("secret")

	for _, in := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		if _, err := svc.Verify(in); !errors.Is(err, ErrMalformed) {
			t.Fatalf("input %q: expected ErrMalformed, got %v", in, err)
		}
	}
}

func TestService_RejectsUnsignedAlgorithm(t *testing.T) {
	svc := NewService("secret")

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "a@x.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := svc.Verify(signed); !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature, got %v", err)
	}
}

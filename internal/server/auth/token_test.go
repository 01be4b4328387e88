package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/bookstore/internal/common"
)

func TestIssueAndValidate_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")
	issuer := NewTokenIssuer(secret, time.Hour)
	validator := NewTokenValidator(secret)

	tok, err := issuer.Issue("user-123", "a@x.com")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	identity, err := validator.Validate(tok)
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if identity.UserID != "user-123" {
		t.Fatalf("UserID mismatch: got %q want %q", identity.UserID, "user-123")
	}
	if identity.UserName != "a@x.com" {
		t.Fatalf("UserName mismatch: got %q want %q", identity.UserName, "a@x.com")
	}
}

func TestValidate_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	issuer := NewTokenIssuer(secret, -1*time.Second)

	tok, err := issuer.Issue("u1", "u1@x.com")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = NewTokenValidator(secret).Validate(tok)
	if !errors.Is(err, common.ErrTokenExpired) {
		t.Fatalf("want ErrTokenExpired, got %v", err)
	}
}

func TestValidate_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := NewTokenIssuer([]byte("right-secret"), time.Hour)
	tok, err := issuer.Issue("u2", "u2@x.com")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = NewTokenValidator([]byte("wrong-secret")).Validate(tok)
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("want ErrInvalidToken, got %v", err)
	}
}

func TestValidate_TamperedToken(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	tok, err := NewTokenIssuer(secret, time.Hour).Issue("u3", "u3@x.com")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	tampered := tok[:len(tok)-2] + "xx"
	_, err = NewTokenValidator(secret).Validate(tampered)
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("want ErrInvalidToken, got %v", err)
	}
}

func TestValidate_MalformedString(t *testing.T) {
	t.Parallel()

	_, err := NewTokenValidator([]byte("k")).Validate("not.a.jwt")
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("want ErrInvalidToken, got %v", err)
	}
}

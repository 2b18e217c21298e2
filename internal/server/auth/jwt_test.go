package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/mborg/chatboard/internal/common"
)

var secret = []byte("test-secret")

func TestGenerateAndParse_RoundTrip(t *testing.T) {
	token, err := GenerateToken(7, "alice", secret, time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	id, err := ParseToken(token, secret)
	if err != nil {
		t.Fatalf("ParseToken error: %v", err)
	}
	if id.ID != 7 || id.Username != "alice" {
		t.Fatalf("unexpected identity: %+v", id)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken(7, "alice", secret, time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = ParseToken(token, []byte("other-secret"))
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("want ErrInvalidToken, got %v", err)
	}
}

func TestParseToken_Expired(t *testing.T) {
	token, err := GenerateToken(7, "alice", secret, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = ParseToken(token, secret)
	if !errors.Is(err, common.ErrTokenExpired) {
		t.Fatalf("want ErrTokenExpired, got %v", err)
	}
}

func TestParseToken_Garbage(t *testing.T) {
	for _, tok := range []string{"", "not.a.token", "aaaa"} {
		if _, err := ParseToken(tok, secret); !errors.Is(err, common.ErrInvalidToken) {
			t.Fatalf("token %q: want ErrInvalidToken, got %v", tok, err)
		}
	}
}

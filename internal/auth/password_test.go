package auth

import (
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	digest, err := HashPassword("secret")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if digest == "secret" {
		t.Fatal("digest equals plaintext")
	}
	if !strings.HasPrefix(digest, "$2") {
		t.Errorf("unexpected digest format %q", digest)
	}

	if !VerifyPassword("secret", digest) {
		t.Error("correct password rejected")
	}
	if VerifyPassword("wrong", digest) {
		t.Error("wrong password accepted")
	}
}

func TestHashPasswordSalted(t *testing.T) {
	a, err := HashPassword("secret")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	b, err := HashPassword("secret")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if a == b {
		t.Error("two digests of the same password are identical")
	}
}

package auth

import (
	"testing"
)

const testSecret = "test-secret"

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(testSecret, 42)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	userID, err := ValidateToken(testSecret, token)
	if err != nil {
		t.Fatalf("validate token: %v", err)
	}
	if userID != 42 {
		t.Errorf("user id = %d, want 42", userID)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(testSecret, 42)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	if _, err := ValidateToken("other-secret", token); err == nil {
		t.Error("expected error for wrong secret")
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	if _, err := ValidateToken(testSecret, "not.a.token"); err == nil {
		t.Error("expected error for malformed token")
	}
}

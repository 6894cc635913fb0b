package helpers

import "testing"

func TestTokenRoundtrip(t *testing.T) {
	token, err := IssueToken("secret", "user-1", true)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	claims, err := ValidateToken("secret", token)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("wrong user id: %s", claims.UserID)
	}
	if !claims.IsAdmin {
		t.Error("admin flag lost")
	}
}

func TestTokenWrongSecret(t *testing.T) {
	token, err := IssueToken("secret", "user-1", false)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := ValidateToken("other-secret", token); err == nil {
		t.Error("token validated with the wrong secret")
	}
}

func TestTokenGarbage(t *testing.T) {
	if _, err := ValidateToken("secret", "not-a-token"); err == nil {
		t.Error("garbage token validated")
	}
}

package helpers

import "testing"

func TestHashAndVerifyPassword(t *testing.T) {
	hashed, err := HashPassword("123456")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if hashed == "123456" {
		t.Fatal("hash equals the plaintext")
	}
	if !VerifyPassword("123456", hashed) {
		t.Error("correct password does not verify")
	}
	if VerifyPassword("12356", hashed) {
		t.Error("wrong password verifies")
	}
}

func TestHashIsSalted(t *testing.T) {
	first, err := HashPassword("123456")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	second, err := HashPassword("123456")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if first == second {
		t.Error("two hashes of the same plaintext are identical; salt is missing")
	}
}

package utils

import "testing"

const iterations = 1200

func TestHashPasswordRoundTrip(t *testing.T) {
	salt, err := NewSalt()
	if err != nil {
		t.Fatalf("new salt: %v", err)
	}
	hash := HashPassword("hunter2", salt, iterations)
	if !VerifyPassword(hash, salt, "hunter2", iterations) {
		t.Fatal("correct password rejected")
	}
	if VerifyPassword(hash, salt, "hunter3", iterations) {
		t.Fatal("wrong password accepted")
	}
}

func TestHashPasswordSaltMatters(t *testing.T) {
	s1, err := NewSalt()
	if err != nil {
		t.Fatalf("new salt: %v", err)
	}
	s2, err := NewSalt()
	if err != nil {
		t.Fatalf("new salt: %v", err)
	}
	if s1 == s2 {
		t.Fatal("two salts came out identical")
	}
	if HashPassword("hunter2", s1, iterations) == HashPassword("hunter2", s2, iterations) {
		t.Fatal("same password hashed identically under different salts")
	}
	// Iteration count is part of the derivation too.
	if HashPassword("hunter2", s1, iterations) == HashPassword("hunter2", s1, iterations+1) {
		t.Fatal("iteration count did not affect the hash")
	}
}

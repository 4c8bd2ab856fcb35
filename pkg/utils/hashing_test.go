package utils

import "testing"

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatal("password stored in clear")
	}

	if err := ComparePasswords(hash, "s3cret-pass"); err != nil {
		t.Errorf("correct password rejected: %v", err)
	}
	if err := ComparePasswords(hash, "wrong-pass"); err == nil {
		t.Error("wrong password accepted")
	}
}

package utils

import (
	"strings"
	"testing"
)

func TestExtractNameFromEmail(t *testing.T) {
	if got := ExtractNameFromEmail("viewer42@example.com"); got != "viewer42" {
		t.Errorf("Expected viewer42, got %q", got)
	}
	if got := ExtractNameFromEmail("no-at-sign"); got != "no-at-sign" {
		t.Errorf("Expected input passthrough without @, got %q", got)
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cretpass")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if !CheckPasswordHash("s3cretpass", hash) {
		t.Errorf("Correct password rejected")
	}
	if CheckPasswordHash("wrongpass", hash) {
		t.Errorf("Wrong password accepted")
	}
}

func TestJWTRoundTrip(t *testing.T) {
	SetJWTSecret("test-secret")

	token, err := GenerateJWTToken("65a1b2c3d4e5f60718293a4b", "viewer42@example.com")
	if err != nil {
		t.Fatalf("GenerateJWTToken failed: %v", err)
	}

	claims, err := ParseJWTToken(token)
	if err != nil {
		t.Fatalf("ParseJWTToken failed: %v", err)
	}
	if claims.UserID != "65a1b2c3d4e5f60718293a4b" {
		t.Errorf("Unexpected user id %q", claims.UserID)
	}
	if claims.Email != "viewer42@example.com" || claims.Subject != "viewer42@example.com" {
		t.Errorf("Unexpected email claims %q / %q", claims.Email, claims.Subject)
	}

	valid, email, err := ValidateTokenAndFetchEmail(token)
	if err != nil || !valid || email != "viewer42@example.com" {
		t.Errorf("ValidateTokenAndFetchEmail = %v %q %v", valid, email, err)
	}
}

func TestParseRejectsTamperedToken(t *testing.T) {
	SetJWTSecret("test-secret")

	token, err := GenerateJWTToken("65a1b2c3d4e5f60718293a4b", "viewer42@example.com")
	if err != nil {
		t.Fatalf("GenerateJWTToken failed: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := ParseJWTToken(tampered); err == nil {
		t.Errorf("Expected tampered token to be rejected")
	}
}

func TestGenerateReferralCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code := GenerateReferralCode()
		if len(code) != 6 {
			t.Fatalf("Expected 6-character code, got %q", code)
		}
		for _, c := range code {
			if !strings.ContainsRune(referralAlphabet, c) {
				t.Fatalf("Code %q contains character outside alphabet", code)
			}
		}
		seen[code] = true
	}
	if len(seen) < 2 {
		t.Errorf("50 generated codes produced no variety")
	}
}

func TestGenerateSecretHashIsDeterministic(t *testing.T) {
	a := GenerateSecretHash("viewer42@example.com", "client-id", "client-secret")
	b := GenerateSecretHash("viewer42@example.com", "client-id", "client-secret")
	if a != b {
		t.Errorf("Same inputs must produce the same hash")
	}
	if a == GenerateSecretHash("other@example.com", "client-id", "client-secret") {
		t.Errorf("Different usernames must produce different hashes")
	}
}

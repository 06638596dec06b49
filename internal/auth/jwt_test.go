package auth

import (
	"testing"
	"time"
)

func testTokenService() TokenService {
	return TokenService{
		Secret:   []byte("test-secret"),
		Issuer:   "wissen-test",
		Duration: time.Hour,
	}
}

func TestSignAndParseRoundTrip(t *testing.T) {
	ts := testTokenService()
	u := &User{
		ID:           "u-1",
		Username:     "editor",
		Email:        "editor@example.org",
		Role:         RoleEditor,
		TokenVersion: 2,
	}

	token, exp, err := ts.Sign(u)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if !exp.After(time.Now()) {
		t.Fatalf("expiry not in the future: %v", exp)
	}

	claims, err := ts.Parse(token)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if claims.UserID != u.ID || claims.Role != RoleEditor || claims.TokenVersion != 2 {
		t.Fatalf("claims mismatch: %+v", claims)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, _, err := testTokenService().Sign(&User{ID: "u-1", Role: RoleAdmin})
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	other := TokenService{Secret: []byte("different"), Issuer: "wissen-test", Duration: time.Hour}
	if _, err := other.Parse(token); err == nil {
		t.Fatal("expected parse failure with wrong secret")
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	if _, err := testTokenService().Parse("not-a-token"); err == nil {
		t.Fatal("expected parse failure")
	}
}

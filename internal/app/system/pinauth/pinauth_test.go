package pinauth_test

import (
	"errors"
	"testing"

	"github.com/dalemusser/leadsadmin/internal/app/system/pinauth"
	"golang.org/x/crypto/bcrypt"
)

func TestCheck_PlainSecret(t *testing.T) {
	g := pinauth.New("9731")

	if !g.Check("9731") {
		t.Error("configured PIN should pass")
	}
	for _, pin := range []string{"", "9732", "973", "97310", "1234", " 9731"} {
		if g.Check(pin) {
			t.Errorf("Check(%q) = true, want false", pin)
		}
	}
}

func TestCheck_FallbackLiteralNotAccepted(t *testing.T) {
	g := pinauth.New("5555")
	if g.Check(pinauth.DemoPIN) {
		t.Error("demo PIN must not open a gate configured with another secret")
	}
}

func TestCheck_HashedSecret(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("2468"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("GenerateFromPassword: %v", err)
	}
	g := pinauth.New(string(hash))

	if !g.Check("2468") {
		t.Error("PIN matching hash should pass")
	}
	if g.Check("2469") {
		t.Error("wrong PIN should fail")
	}
	if g.Check(string(hash)) {
		t.Error("submitting the hash itself should fail")
	}
}

func TestCheck_EmptySecretNeverPasses(t *testing.T) {
	if pinauth.New("").Check("") {
		t.Error("empty secret must never authenticate")
	}
	var g *pinauth.Gate
	if g.Check("1234") {
		t.Error("nil gate must never authenticate")
	}
}

func TestValidate(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("2468"), bcrypt.MinCost)

	tests := []struct {
		name    string
		secret  string
		wantErr error
	}{
		{"empty", "", pinauth.ErrEmptySecret},
		{"blank", "   ", pinauth.ErrEmptySecret},
		{"demo", "1234", pinauth.ErrDemoSecret},
		{"short", "12", pinauth.ErrShortSecret},
		{"ok", "8642", nil},
		{"hash", string(hash), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := pinauth.Validate(tt.secret)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate(%q) = %v, want %v", tt.secret, err, tt.wantErr)
			}
		})
	}
}

func TestValidate_MalformedHash(t *testing.T) {
	if err := pinauth.Validate("$2a$xx"); err == nil {
		t.Error("malformed bcrypt hash should be rejected")
	}
}

func TestHash_RoundTrip(t *testing.T) {
	h, err := pinauth.Hash("1357")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if !pinauth.IsHash(h) {
		t.Fatalf("Hash() = %q, not a bcrypt hash", h)
	}
	if !pinauth.New(h).Check("1357") {
		t.Error("hashed PIN should verify")
	}
	if _, err := pinauth.Hash(""); !errors.Is(err, pinauth.ErrEmptySecret) {
		t.Errorf("Hash(\"\") err = %v", err)
	}
}

package googleauth

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"testing"
)

func TestParseRSAKeyRoundTrip(t *testing.T) {
	generated, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatal(err)
	}
	pub := &generated.PublicKey

	k := jwk{
		Kid: "test-key",
		Kty: "RSA",
		N:   base64.RawURLEncoding.EncodeToString(pub.N.Bytes()),
		E:   base64.RawURLEncoding.EncodeToString([]byte{0x01, 0x00, 0x01}), // 65537
	}

	parsed, err := parseRSAKey(k)
	if err != nil {
		t.Fatal(err)
	}
	if parsed.N.Cmp(pub.N) != 0 {
		t.Error("modulus did not round-trip")
	}
	if parsed.E != pub.E {
		t.Errorf("exponent: got %d, want %d", parsed.E, pub.E)
	}
}

func TestParseRSAKeyRejectsBadEncoding(t *testing.T) {
	if _, err := parseRSAKey(jwk{N: "not base64!!", E: "AQAB"}); err == nil {
		t.Error("invalid modulus must fail")
	}
}

func TestValidateTokenRequiresInitialization(t *testing.T) {
	verifier = nil
	if _, err := ValidateToken("whatever"); err == nil {
		t.Error("uninitialized package verifier must fail")
	}
}

func TestVerifierRejectsMalformedToken(t *testing.T) {
	v := NewVerifier("client-id")
	if _, err := v.ValidateToken("not-a-jwt"); err == nil {
		t.Error("malformed token must fail before any key fetch")
	}
}

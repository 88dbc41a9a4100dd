package security

import (
	"strings"
	"testing"
)

func TestHashAndVerify(t *testing.T) {
	h := NewArgon2Hasher(DefaultArgon2Params())

	hash, err := h.Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$") {
		t.Errorf("unexpected hash format: %q", hash)
	}
	if !h.Verify("correct horse battery staple", hash) {
		t.Error("Verify rejected the original password")
	}
	if h.Verify("wrong password", hash) {
		t.Error("Verify accepted a wrong password")
	}
}

func TestHashUsesFreshSalt(t *testing.T) {
	h := NewArgon2Hasher(DefaultArgon2Params())

	first, err := h.Hash("secret")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	second, err := h.Hash("secret")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if first == second {
		t.Error("two hashes of the same password are identical; salt not random")
	}
}

func TestVerifyFailsClosedOnMalformedHash(t *testing.T) {
	h := NewArgon2Hasher(DefaultArgon2Params())

	for _, encoded := range []string{
		"",
		"not-a-hash",
		"$argon2id$v=19$m=65536,t=3,p=2$only-five-parts",
		"$argon2i$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=65536,t=3,p=2$!!!$aGFzaA",
	} {
		if h.Verify("anything", encoded) {
			t.Errorf("Verify accepted malformed hash %q", encoded)
		}
	}
}

package password_test

import (
	"strings"
	"testing"

	"github.com/taskflowhq/taskflow-api/internal/password"
)

func TestHasher_RoundTrip(t *testing.T) {
	h := password.NewHasher()

	hash, err := h.Hash("Abc123!@")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "Abc123!@" {
		t.Fatal("hash equals the raw password")
	}
	if !h.Verify("Abc123!@", hash) {
		t.Error("correct password did not verify")
	}
	if h.Verify("wrong-password", hash) {
		t.Error("wrong password verified")
	}
}

func TestHasher_SaltedPerHash(t *testing.T) {
	h := password.NewHasher()

	a, err := h.Hash("Abc123!@")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	b, err := h.Hash("Abc123!@")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if a == b {
		t.Error("two hashes of the same password are identical; salt missing")
	}
}

func TestHasher_EmbedsCost(t *testing.T) {
	h := password.NewHasher()

	hash, err := h.Hash("Abc123!@")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !strings.Contains(hash, "$10$") {
		t.Errorf("hash %q does not embed cost 10", hash)
	}
}

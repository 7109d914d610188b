package keyring

import (
	"errors"
	"testing"

	gokeyring "github.com/zalando/go-keyring"

	"github.com/Sanuxal/SOCRATES.AI/internal/constants"
)

func TestSetGetDelete(t *testing.T) {
	gokeyring.MockInit()

	if err := SetAPIKey("test-credential"); err != nil {
		t.Fatalf("SetAPIKey returned error: %v", err)
	}
	got, err := GetAPIKey()
	if err != nil {
		t.Fatalf("GetAPIKey returned error: %v", err)
	}
	if got != "test-credential" {
		t.Errorf("GetAPIKey = %q", got)
	}

	if err := DeleteAPIKey(); err != nil {
		t.Fatalf("DeleteAPIKey returned error: %v", err)
	}
	if _, err := GetAPIKey(); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetAPIKey after delete = %v, want ErrNotFound", err)
	}
}

func TestSetEmptyKey(t *testing.T) {
	gokeyring.MockInit()
	if err := SetAPIKey(""); err == nil {
		t.Error("empty key accepted")
	}
}

func TestDeleteMissing(t *testing.T) {
	gokeyring.MockInit()
	if err := DeleteAPIKey(); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteAPIKey on empty keyring = %v, want ErrNotFound", err)
	}
}

func TestResolvePrefersEnv(t *testing.T) {
	gokeyring.MockInit()
	if err := SetAPIKey("from-keyring"); err != nil {
		t.Fatalf("SetAPIKey returned error: %v", err)
	}
	t.Setenv(constants.EnvAPIKey, "from-env")

	got, err := ResolveAPIKey()
	if err != nil {
		t.Fatalf("ResolveAPIKey returned error: %v", err)
	}
	if got != "from-env" {
		t.Errorf("ResolveAPIKey = %q, want the env value", got)
	}
}

func TestResolveFallsBackToKeyring(t *testing.T) {
	gokeyring.MockInit()
	t.Setenv(constants.EnvAPIKey, "")
	if err := SetAPIKey("from-keyring"); err != nil {
		t.Fatalf("SetAPIKey returned error: %v", err)
	}

	got, err := ResolveAPIKey()
	if err != nil {
		t.Fatalf("ResolveAPIKey returned error: %v", err)
	}
	if got != "from-keyring" {
		t.Errorf("ResolveAPIKey = %q, want the keyring value", got)
	}
}

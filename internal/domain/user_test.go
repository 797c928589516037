package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestNewUser_RequiresIdentity(t *testing.T) {
	if _, err := NewUser("", "Bob"); !errors.Is(err, ErrIdentityEmpty) {
		t.Fatalf("expected ErrIdentityEmpty, got %v", err)
	}
}

func TestNewUser_LengthLimits(t *testing.T) {
	long := strings.Repeat("x", MaxIdentityLen+1)
	if _, err := NewUser(long, ""); !errors.Is(err, ErrIdentityTooLong) {
		t.Fatalf("expected ErrIdentityTooLong, got %v", err)
	}
	if _, err := NewUser("u1", strings.Repeat("x", MaxDisplayNameLen+1)); !errors.Is(err, ErrDisplayNameTooLong) {
		t.Fatalf("expected ErrDisplayNameTooLong, got %v", err)
	}
}

func TestNewUser_PlaceholderDisplayName(t *testing.T) {
	u, err := NewUser("u1", "")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(u.DisplayName, "User-") {
		t.Fatalf("placeholder = %q", u.DisplayName)
	}
	other, _ := NewUser("u1", "")
	if other.DisplayName == u.DisplayName {
		t.Fatalf("placeholders should differ: %q", u.DisplayName)
	}
}

func TestNewUser_KeepsSuppliedDisplayName(t *testing.T) {
	u, err := NewUser("u1", "Bob")
	if err != nil {
		t.Fatal(err)
	}
	if u.DisplayName != "Bob" || u.Identity != "u1" {
		t.Fatalf("unexpected user: %+v", u)
	}
}

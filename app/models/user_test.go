package models

import "testing"

func TestCreateUser_StartsInactive(t *testing.T) {
	u, err := CreateUser("Asha Rao", "asha", "asha@example.com", "hunter22")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Status != STATUS_INACTIVE {
		t.Fatalf("new accounts must await activation, got status %q", u.Status)
	}
	if u.Password == "hunter22" {
		t.Fatalf("password must be stored hashed")
	}
	if !u.CheckPassword("hunter22") {
		t.Fatalf("expected stored hash to match the password")
	}
}

func TestGenerateActivationToken(t *testing.T) {
	u := &User{}
	if err := u.GenerateActivationToken(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(u.ActivationToken) != 32 {
		t.Fatalf("expected 32 hex chars, got %q", u.ActivationToken)
	}
	if u.ActivationSentAt == nil {
		t.Fatalf("expected the sent timestamp to be recorded")
	}

	prev := u.ActivationToken
	if err := u.GenerateActivationToken(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.ActivationToken == prev {
		t.Fatalf("regenerating must yield a fresh token")
	}
}

func TestSetPassword(t *testing.T) {
	u := &User{}
	if err := u.SetPassword("new-secret"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Password == "new-secret" {
		t.Fatalf("password must be stored hashed")
	}
	if !u.CheckPassword("new-secret") {
		t.Fatalf("expected new password to verify")
	}
	if u.CheckPassword("old-secret") {
		t.Fatalf("expected wrong password to fail")
	}
}

func TestIsActive(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{status: STATUS_ACTIVE, want: true},
		{status: STATUS_INACTIVE, want: false},
		{status: STATUS_DISABLED, want: false},
	}

	for _, tt := range tests {
		u := &User{Status: tt.status}
		if got := u.IsActive(); got != tt.want {
			t.Fatalf("IsActive() with status %q = %v, want %v", tt.status, got, tt.want)
		}
	}
}

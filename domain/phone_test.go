package domain

import (
	"errors"
	"testing"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "bare national number gets default country code", raw: "9876543210", want: "+919876543210"},
		{name: "already canonical", raw: "+919876543210", want: "+919876543210"},
		{name: "trunk zero dropped", raw: "09876543210", want: "+919876543210"},
		{name: "international 00 prefix", raw: "00919876543210", want: "+919876543210"},
		{name: "spaces and dashes stripped", raw: "98765 432-10", want: "+919876543210"},
		{name: "parentheses stripped", raw: "(987) 654.3210", want: "+919876543210"},
		{name: "empty", raw: "", wantErr: true},
		{name: "letters rejected", raw: "98765abcde", wantErr: true},
		{name: "too short", raw: "1234", wantErr: true},
		{name: "too long", raw: "+9198765432109876", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePhone(tt.raw, "+91")
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidPhone) {
					t.Fatalf("expected ErrInvalidPhone, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseRole(t *testing.T) {
	for _, valid := range []string{"customer", "provider", "mechanic", "admin"} {
		if _, ok := ParseRole(valid); !ok {
			t.Errorf("expected %q to parse", valid)
		}
	}
	for _, invalid := range []string{"", "superadmin", "Customer", "user"} {
		if _, ok := ParseRole(invalid); ok {
			t.Errorf("expected %q to be rejected", invalid)
		}
	}
}

func TestRoleSelfRegisterable(t *testing.T) {
	if !RoleCustomer.SelfRegisterable() || !RoleProvider.SelfRegisterable() {
		t.Error("customer and provider must be self-registerable")
	}
	if RoleMechanic.SelfRegisterable() || RoleAdmin.SelfRegisterable() {
		t.Error("mechanic and admin must not be self-registerable")
	}
}

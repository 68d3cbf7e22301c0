package models

import "testing"

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name string
		user User
		want string
	}{
		{"full name", User{Username: "alice", FirstName: "Alice", LastName: "Liddell"}, "Alice Liddell"},
		{"missing last name", User{Username: "alice", FirstName: "Alice"}, "alice"},
		{"missing both", User{Username: "alice"}, "alice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.user.DisplayName(); got != tt.want {
				t.Fatalf("DisplayName() = %q, want %q", got, tt.want)
			}
		})
	}
}

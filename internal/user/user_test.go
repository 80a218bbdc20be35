package user

import (
	"testing"
)

func TestCurrentUsername(t *testing.T) {
	// the actual value depends on the environment; it must never be empty
	if username := CurrentUsername(); username == "" {
		t.Error("CurrentUsername() should never return an empty string")
	}
}

func TestAuthor(t *testing.T) {
	tests := []struct {
		name     string
		explicit string
		env      string
		validate func(string) bool
	}{
		{
			name:     "explicit name wins",
			explicit: "  sam ",
			env:      "robin",
			validate: func(s string) bool { return s == "sam" },
		},
		{
			name:     "env override when no explicit name",
			explicit: "",
			env:      "robin",
			validate: func(s string) bool { return s == "robin" },
		},
		{
			name:     "falls back to OS user",
			explicit: "   ",
			env:      "",
			validate: func(s string) bool { return s == CurrentUsername() },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(AuthorEnv, tt.env)
			got := Author(tt.explicit)
			if !tt.validate(got) {
				t.Errorf("Author(%q) with %s=%q returned %q", tt.explicit, AuthorEnv, tt.env, got)
			}
		})
	}
}

package validation

import (
	"strings"
	"testing"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"Valid", "Sunlit-Harbor-42", false},
		{"Too Short", "Ab1!short", true},
		{"Too Long", strings.Repeat("Aa1!", 33), true},
		{"No Uppercase", "sunlit-harbor-42", true},
		{"No Lowercase", "SUNLIT-HARBOR-42", true},
		{"No Digit", "Sunlit-Harbor-Inn", true},
		{"No Special", "SunlitHarbor42x", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePassword(%q) error = %v, wantErr %v", tt.password, err, tt.wantErr)
			}
		})
	}
}

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{"Valid", "painter_01", false},
		{"Valid With Hyphen", "oil-painter", false},
		{"Too Short", "ab", true},
		{"Too Long", strings.Repeat("a", 31), true},
		{"Spaces", "oil painter", true},
		{"Special Chars", "painter!", true},
		{"Leading Underscore", "_painter", true},
		{"Trailing Hyphen", "painter-", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateUsername(%q) error = %v, wantErr %v", tt.username, err, tt.wantErr)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"Valid", "artist@example.com", false},
		{"Valid Subdomain", "artist@mail.example.co.uk", false},
		{"Missing At", "artist.example.com", true},
		{"Missing Domain", "artist@", true},
		{"Missing TLD", "artist@example", true},
		{"Too Long", strings.Repeat("a", 250) + "@example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEmail(%q) error = %v, wantErr %v", tt.email, err, tt.wantErr)
			}
		})
	}
}

package loaders

import (
	"errors"
	"testing"
)

func TestValidateVersion(t *testing.T) {
	var tests = []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"empty means latest", "", false},
		{"plain release", "1.20.4", false},
		{"two part version", "1.8", false},
		{"digits only", "1", false},
		{"snapshot id", "23w31a", true},
		{"letters", "latest", true},
		{"injection attempt", "1.20; rm -rf", true},
		{"spaces", "1. 20", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateVersion(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateVersion(%q) error = %v, wantErr %t", tt.input, err, tt.wantErr)
			}
			if err != nil {
				var invalid *InvalidInputError
				if !errors.As(err, &invalid) {
					t.Errorf("got %T, want *InvalidInputError", err)
				}
			}
		})
	}
}

func TestCheckVanillaFloor(t *testing.T) {
	var tests = []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"empty passes", "", false},
		{"modern release", "1.20.4", false},
		{"exact floor", "1.2.5", false},
		{"below floor", "1.1", true},
		{"way below floor", "1.0", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkVanillaFloor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("checkVanillaFloor(%q) error = %v, wantErr %t", tt.input, err, tt.wantErr)
			}
		})
	}
}

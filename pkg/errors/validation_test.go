package errors

import (
	"testing"
)

func TestValidateYarnID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "main", false},
		{"valid with dash", "main-colour", false},
		{"valid with space", "contrast 2", false},
		{"valid uuid", "9b2d2a3e-4c1f-4f6a-9f1e-1c2d3e4f5a6b", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 200)), true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateYarnID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateYarnID(%q) = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("code = %v, want INVALID_INPUT", GetCode(err))
			}
		})
	}
}

func TestValidateManifestFilename(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "swatch.toml", false},
		{"empty", "", true},
		{"with path", "dir/swatch.toml", true},
		{"backslash", "dir\\swatch.toml", true},
		{"hidden", ".swatch.toml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateManifestFilename(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateManifestFilename(%q) = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

package errors

import "testing"

func TestValidatePackageName(t *testing.T) {
	tests := []struct {
		name    string
		pkg     string
		wantErr bool
	}{
		{"valid simple", "curl", false},
		{"valid with dots", "libstdc++6", false},
		{"empty", "", true},
		{"path traversal", "../etc/passwd", true},
		{"double slash", "a//b", true},
		{"backslash", "a\\b", true},
		{"control character", "pkg\x01name", true},
		{"too long", string(make([]byte, 300)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePackageName(tt.pkg)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePackageName(%q) error = %v, wantErr %v", tt.pkg, err, tt.wantErr)
			}
		})
	}
}

func TestValidateDebianPackageName(t *testing.T) {
	tests := []struct {
		name    string
		pkg     string
		wantErr bool
	}{
		{"valid", "libc6", false},
		{"valid with plus", "g++", false},
		{"valid with dash", "apt-utils", false},
		{"valid with dot", "libssl1.1", false},
		{"uppercase rejected", "Curl", true},
		{"single character", "a", true},
		{"leading dash", "-pkg", true},
		{"underscore rejected", "my_pkg", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDebianPackageName(tt.pkg)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDebianPackageName(%q) error = %v, wantErr %v", tt.pkg, err, tt.wantErr)
			}
		})
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"http", "http://deb.debian.org/debian", false},
		{"https", "https://deb.debian.org/debian", false},
		{"empty", "", true},
		{"ftp", "ftp://mirror.example.org", true},
		{"no scheme", "deb.debian.org", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateURL(tt.url)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
		})
	}
}

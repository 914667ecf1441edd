package validation

import "testing"

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		input   any
		wantErr bool
	}{
		{"john@example.com", false},
		{"  john@example.co.id  ", false},
		{"", true},
		{"john", true},
		{"john@example", true},
		{"jo hn@example.com", true},
		{42, true},
	}

	for _, tt := range tests {
		if err := ValidateEmail(tt.input); (err != nil) != tt.wantErr {
			t.Errorf("ValidateEmail(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"Secret123", false},
		{"Abcdefg1", false},
		{"Abcdef1", true},
		{"secret123", true},
		{"SECRET123", true},
		{"SecretPass", true},
	}

	for _, tt := range tests {
		if err := ValidatePassword(tt.input); (err != nil) != tt.wantErr {
			t.Errorf("ValidatePassword(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"", false},
		{"081234567890", false},
		{"+6281234567890", false},
		{"0812-3456", true},
		{"++62", true},
		{"62+", true},
	}

	for _, tt := range tests {
		if err := ValidatePhone(tt.input); (err != nil) != tt.wantErr {
			t.Errorf("ValidatePhone(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}

func TestValidateRequired(t *testing.T) {
	v := ValidateRequired("fullname")
	if err := v("   "); err == nil || err.Error() != "fullname is required" {
		t.Errorf("unexpected error: %v", err)
	}
	if err := v("Budi"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

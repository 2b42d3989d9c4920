package sanitization

import "testing"

func TestSanitizeHeader(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Jane Doe", "Jane Doe"},
		{"  Jane   Doe  ", "Jane Doe"},
		{"Jane\r\nBcc: victim@example.com", "Jane Bcc: victim@example.com"},
		{"Tab\tSeparated", "Tab Separated"},
		{"Null\x00Byte", "Null Byte"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := SanitizeHeader(tt.input); got != tt.want {
				t.Errorf("SanitizeHeader(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeEmail(t *testing.T) {
	if got := SanitizeEmail("  Jane@Example.COM\n"); got != "jane@example.com" {
		t.Errorf("SanitizeEmail() = %q", got)
	}
}

func TestMaskEmail(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"jane@example.com", "j***@example.com"},
		{"@example.com", "***"},
		{"no-at-sign", "***"},
	}

	for _, tt := range tests {
		if got := MaskEmail(tt.input); got != tt.want {
			t.Errorf("MaskEmail(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

package summary

import "testing"

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"iso passthrough", "2024-01-15", "2024-01-15"},
		{"slash day first", "15/01/2024", "2024-01-15"},
		{"dash day first", "15-01-2024", "2024-01-15"},
		{"datetime", "2024-01-15T08:30:00", "2024-01-15"},
		{"rfc3339", "2024-01-15T08:30:00Z", "2024-01-15"},
		{"surrounding space", " 2024-01-15 ", "2024-01-15"},
		{"empty", "", ""},
		// Known limitation: malformed dates pass through unchanged and
		// compare lexicographically against normalized ones.
		{"garbage passthrough", "January 15", "January 15"},
		{"unpadded passthrough", "2024-1-5", "2024-1-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeDate(tt.raw); got != tt.want {
				t.Errorf("NormalizeDate(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestInRange(t *testing.T) {
	tests := []struct {
		name           string
		date, from, to string
		want           bool
	}{
		{"no bounds", "2024-01-15", "", "", true},
		{"on lower bound", "2024-01-15", "2024-01-15", "2024-01-20", true},
		{"on upper bound", "2024-01-20", "2024-01-15", "2024-01-20", true},
		{"one day before", "2024-01-14", "2024-01-15", "2024-01-20", false},
		{"one day after", "2024-01-21", "2024-01-15", "2024-01-20", false},
		{"open lower", "2000-01-01", "", "2024-01-20", true},
		{"open upper", "2099-01-01", "2024-01-15", "", true},
		{"bounds in other formats", "2024-01-15", "15/01/2024", "20-01-2024", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InRange(tt.date, tt.from, tt.to); got != tt.want {
				t.Errorf("InRange(%q, %q, %q) = %v, want %v", tt.date, tt.from, tt.to, got, tt.want)
			}
		})
	}
}

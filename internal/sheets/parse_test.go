package sheets

import "testing"

func TestParseFloat(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"1500", 1500},
		{"1,500.50", 1500.50},
		{"1500,50", 1500.50},
		{" 75 ", 75},
		{"", 0},
		{"n/a", 0},
	}
	for _, tc := range cases {
		if got := parseFloat(tc.in); got != tc.want {
			t.Errorf("parseFloat(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseInt(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"5", 5},
		{"5.0", 5},
		{"", 0},
		{"three", 0},
	}
	for _, tc := range cases {
		if got := parseInt(tc.in); got != tc.want {
			t.Errorf("parseInt(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestToStringsTrims(t *testing.T) {
	got := toStrings([]interface{}{" DRG-01 ", 42, ""})
	want := []string{"DRG-01", "42", ""}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("toStrings[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

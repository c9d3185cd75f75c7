package cmd

import "testing"

func TestParseClueRange(t *testing.T) {
	cases := []struct {
		in        string
		low, high int
		wantErr   bool
	}{
		{"32", 32, 32, false},
		{"28:32", 28, 32, false},
		{" 28 : 32 ", 28, 32, false},
		{"32:28", 0, 0, true},
		{"abc", 0, 0, true},
		{"1:2:3", 0, 0, true},
	}
	for _, tc := range cases {
		low, high, err := parseClueRange(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("parseClueRange(%q) accepted", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseClueRange(%q) failed: %v", tc.in, err)
			continue
		}
		if low != tc.low || high != tc.high {
			t.Errorf("parseClueRange(%q) = %d:%d, want %d:%d", tc.in, low, high, tc.low, tc.high)
		}
	}
}

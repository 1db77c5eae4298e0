package core

import "testing"

func TestParseDecimalToCents(t *testing.T) {
	cases := []struct {
		in  string
		out int64
		ok  bool
	}{
		{"1", 100, true},
		{"1.0", 100, true},
		{"1.23", 123, true},
		{"1,23", 123, true},
		{"0.01", 1, true},
		{"0", 0, true}, // zero amounts are allowed
		{"1.005", 101, true}, // half-up rounding
		{" 2.50 ", 250, true},
		{"130", 13000, true},
		{"-1", 0, false},
		{"+1", 0, false},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"", 0, false},
		{".5", 50, true},
		{".", 0, false}, // a bare separator is not a number
		{",", 0, false},
		{" . ", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseDecimalToCents(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %d, got %d (err=%v)", tc.in, tc.out, got, err)
			}
		} else {
			if err == nil {
				t.Fatalf("%q expected error", tc.in)
			}
		}
	}
}

func TestParsePercentToBasisPoints(t *testing.T) {
	cases := []struct {
		in  string
		out int64
		ok  bool
	}{
		{"20", 2000, true},
		{"12.5", 1250, true},
		{"0", 0, true},
		{"100", 10000, true},
		{"100.01", 0, false},
		{"150", 0, false},
		{"-5", 0, false},
		{"abc", 0, false},
		{".", 0, false},
		{",", 0, false},
	}
	for _, tc := range cases {
		got, err := ParsePercentToBasisPoints(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %d, got %d (err=%v)", tc.in, tc.out, got, err)
			}
		} else {
			if err == nil {
				t.Fatalf("%q expected error", tc.in)
			}
		}
	}
}

func TestMoneyUnits(t *testing.T) {
	if got := (Money{Cents: 1234}).Units(); got != 12.34 {
		t.Fatalf("Units() = %v, want 12.34", got)
	}
}

package core

import (
	"errors"
	"testing"
)

func TestParseDecimalToCents(t *testing.T) {
	cases := []struct {
		in      string
		want    int64
		wantErr error
	}{
		{"12.34", 1234, nil},
		{"12,34", 1234, nil},
		{"58", 5800, nil},
		{"12.345", 1234, nil},
		{"12.346", 1235, nil},
		{".50", 50, nil},
		{"0", 0, ErrZeroAmount},
		{"0.00", 0, ErrZeroAmount},
		{"", 0, ErrInvalidAmount},
		{"-58", 0, ErrInvalidAmount}, // sign is derived from type, never typed in
		{"+58", 0, ErrInvalidAmount},
		{"abc", 0, ErrInvalidAmount},
		{"1.2.3", 0, ErrInvalidAmount},
		{"12a.50", 0, ErrInvalidAmount},
		{"99999999999999999999", 0, ErrInvalidAmount},
	}
	for _, tc := range cases {
		got, err := ParseDecimalToCents(tc.in)
		if tc.wantErr == nil {
			if err != nil || got != tc.want {
				t.Fatalf("%q: got (%d, %v), want %d", tc.in, got, err, tc.want)
			}
			continue
		}
		if !errors.Is(err, tc.wantErr) {
			t.Fatalf("%q: error = %v, want %v", tc.in, err, tc.wantErr)
		}
	}
}

func TestFromDollars(t *testing.T) {
	cases := []struct {
		in   float64
		want int64
	}{
		{1450, 145000},
		{12.34, 1234},
		{12.345, 1235}, // half away from zero
		{-0.5, -50},
	}
	for _, tc := range cases {
		if got := FromDollars(tc.in).Cents; got != tc.want {
			t.Fatalf("FromDollars(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestMoneyHelpers(t *testing.T) {
	m := Money{Cents: -5800}
	if m.Dollars() != -58.0 {
		t.Fatalf("Dollars() = %v", m.Dollars())
	}
	if m.Abs().Cents != 5800 {
		t.Fatalf("Abs() = %d", m.Abs().Cents)
	}
	if m.Neg().Cents != 5800 {
		t.Fatalf("Neg() = %d", m.Neg().Cents)
	}
}

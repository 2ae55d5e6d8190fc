// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package girofile

import (
	"strconv"
	"strings"
	"testing"
)

func TestField__PadRight(t *testing.T) {
	if v := PadRight("ACME", 10); v != "ACME      " {
		t.Errorf("got %q", v)
	}
	if v := PadRight("", 5); v != "     " {
		t.Errorf("got %q", v)
	}

	// over-long values truncate, they never overflow the field
	if v := PadRight("SINGAPORE OLYMPIC FOUNDATION", 9); v != "SINGAPORE" {
		t.Errorf("got %q", v)
	}

	for _, width := range []int{0, 1, 11, 34, 140, 1013} {
		for _, s := range []string{"", "A", "JOHN TAN", strings.Repeat("x", 2000)} {
			out := PadRight(s, width)
			if len(out) != width {
				t.Errorf("PadRight(%q, %d) returned %d bytes", s, width, len(out))
			}
			if len(s) <= width {
				if out[:len(s)] != s {
					t.Errorf("PadRight(%q, %d) mangled the value: %q", s, width, out)
				}
				if rest := out[len(s):]; rest != strings.Repeat(" ", width-len(s)) {
					t.Errorf("PadRight(%q, %d) padded with %q", s, width, rest)
				}
			}
		}
	}
}

func TestField__PadLeftZero(t *testing.T) {
	v, err := PadLeftZero(42, 7)
	if err != nil {
		t.Fatal(err)
	}
	if v != "0000042" {
		t.Errorf("got %q", v)
	}

	for _, n := range []int64{0, 1, 99, 1234567, 9999999} {
		out, err := PadLeftZero(n, 7)
		if err != nil {
			t.Fatalf("PadLeftZero(%d, 7): %v", n, err)
		}
		if len(out) != 7 {
			t.Errorf("PadLeftZero(%d, 7) returned %d bytes", n, len(out))
		}
		back, err := strconv.ParseInt(out, 10, 64)
		if err != nil || back != n {
			t.Errorf("PadLeftZero(%d, 7) doesn't parse back: %q", n, out)
		}
	}

	// overflow must error, silent truncation would corrupt a count or amount
	if _, err := PadLeftZero(10000000, 7); err == nil {
		t.Error("expected overflow error")
	}
	if _, err := PadLeftZero(-1, 7); err == nil {
		t.Error("expected error for negative value")
	}
}

func TestField__FormatAmount(t *testing.T) {
	v, err := FormatAmount(12.34)
	if err != nil {
		t.Fatal(err)
	}
	if v != "000000000000001234" {
		t.Errorf("got %q", v)
	}

	v, err = FormatAmount(0)
	if err != nil {
		t.Fatal(err)
	}
	if v != "000000000000000000" {
		t.Errorf("got %q", v)
	}

	v, err = FormatAmount(100.00)
	if err != nil {
		t.Fatal(err)
	}
	if v != "000000000000010000" {
		t.Errorf("got %q", v)
	}

	if _, err := FormatAmount(-0.01); err == nil {
		t.Error("expected error for negative amount")
	}
}

func TestField__FormatCents(t *testing.T) {
	v, err := FormatCents(10000000)
	if err != nil {
		t.Fatal(err)
	}
	if v != "000000000010000000" {
		t.Errorf("got %q", v)
	}
	if len(v) != 18 {
		t.Errorf("amount field is %d bytes", len(v))
	}
}

package main

import "bytes"
import "testing"

import "github.com/tinne26/fixmath"

func TestValuePrinter(t *testing.T) {
	tests := []struct {
		lang  string
		value fixmath.Fixed
		out   string
	}{
		{"en", fixmath.FromFloat64(1234.5), "1,234.5"},
		{"en", fixmath.FromInt(-20000), "-20,000"},
		{"en", fixmath.Pi, "3.14159"},
		{"en", 6554, "0.1"},
		{"de", fixmath.FromFloat64(1234.5), "1.234,5"},
		{"fr", fixmath.Half, "0,5"},
	}

	for i, test := range tests {
		printer, err := newValuePrinter(test.lang)
		if err != nil { t.Fatalf("test #%d: unexpected error %s", i, err) }
		out := printer.Format(test.value)
		if out != test.out {
			str := "test #%d: %s formatted for %s, expected %q, but got %q"
			t.Fatalf(str, i, test.value, test.lang, test.out, out)
		}
	}

	if _, err := newValuePrinter("not a tag!"); err == nil {
		t.Fatal("expected error for invalid language tag")
	}
}

func TestPrintEntries(t *testing.T) {
	printer, err := newValuePrinter("en")
	if err != nil { t.Fatal(err) }
	var buffer bytes.Buffer
	entries := []Entry{ newEntry("x", fixmath.FromFloat64(2.25)), newEntry("y", fixmath.One) }
	err = printer.PrintEntries(&buffer, entries)
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	if buffer.String() != "x = 2.25\ny = 1\n" {
		t.Fatalf("unexpected output %q", buffer.String())
	}
}

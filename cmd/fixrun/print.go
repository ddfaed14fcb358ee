package main

import "io"
import "fmt"
import "strconv"
import "strings"

import "golang.org/x/text/language"
import "golang.org/x/text/message"
import "golang.org/x/text/number"

import "github.com/tinne26/fixmath"

// Formats fixed values with the separators of a language, keeping
// the digits of [fixmath.Fixed.String]().
type valuePrinter struct {
	printer *message.Printer
}

func newValuePrinter(lang string) (*valuePrinter, error) {
	tag, err := language.Parse(lang)
	if err != nil { return nil, fmt.Errorf("invalid -lang %q: %w", lang, err) }
	return &valuePrinter{ printer: message.NewPrinter(tag) }, nil
}

func (self *valuePrinter) Format(value fixmath.Fixed) string {
	text := value.String()
	digits := 0
	if dot := strings.IndexByte(text, '.'); dot >= 0 {
		digits = len(text) - dot - 1
	}
	float, err := strconv.ParseFloat(text, 64)
	if err != nil { panic(err) } // String() output always parses
	return self.printer.Sprint(number.Decimal(float, number.MaxFractionDigits(digits)))
}

// Writes one "label = value" line per entry.
func (self *valuePrinter) PrintEntries(w io.Writer, entries []Entry) error {
	for _, entry := range entries {
		_, err := fmt.Fprintf(w, "%s = %s\n", entry.Label, self.Format(entry.Value()))
		if err != nil { return err }
	}
	return nil
}

package main

import "io"
import "fmt"
import "math"
import "context"
import "strings"

import "golang.org/x/sync/errgroup"
import "github.com/mattn/go-runewidth"

import "github.com/tinne26/fixmath"

// Accuracy of one function against its float64 equivalent,
// in units of the last place (2^-16).
type accuracy struct {
	Name    string
	Samples int
	MaxErr  float64
	MeanErr float64
	Worst   string // input with the largest error
}

type trigCase struct {
	name string
	eval func(t float64) (got fixmath.Fixed, expected float64, input string)
}

// Each case maps t in [0, 1) to a sample of its domain.
var trigCases = []trigCase{
	{"sin", func(t float64) (fixmath.Fixed, float64, string) {
		x := fixmath.FromFloat64((t*2 - 1)*8)
		return x.Sin(), math.Sin(x.ToFloat64()), x.String()
	}},
	{"cos", func(t float64) (fixmath.Fixed, float64, string) {
		x := fixmath.FromFloat64((t*2 - 1)*8)
		return x.Cos(), math.Cos(x.ToFloat64()), x.String()
	}},
	{"tan", func(t float64) (fixmath.Fixed, float64, string) {
		x := fixmath.FromFloat64((t*2 - 1)*1.4)
		return x.Tan(), math.Tan(x.ToFloat64()), x.String()
	}},
	{"atan2", func(t float64) (fixmath.Fixed, float64, string) {
		angle := t*2*math.Pi
		y, x := fixmath.FromFloat64(100*math.Sin(angle)), fixmath.FromFloat64(100*math.Cos(angle))
		return fixmath.Atan2(y, x), math.Atan2(y.ToFloat64(), x.ToFloat64()), "(" + y.String() + ", " + x.String() + ")"
	}},
	{"asin", func(t float64) (fixmath.Fixed, float64, string) {
		x := fixmath.FromFloat64(t*2 - 1)
		asin, err := x.Asin()
		if err != nil { panic(err) } // x in [-1, 1]
		return asin, math.Asin(x.ToFloat64()), x.String()
	}},
}

// Measures every case with the given number of steps, in parallel.
func measureTrig(ctx context.Context, steps int) ([]accuracy, error) {
	results := make([]accuracy, len(trigCases))
	group, ctx := errgroup.WithContext(ctx)
	for i, tcase := range trigCases {
		i, tcase := i, tcase
		group.Go(func() error {
			result := accuracy{ Name: tcase.name, Samples: steps }
			var total float64
			for step := 0; step < steps; step++ {
				if step & 0xFFF == 0 && ctx.Err() != nil { return ctx.Err() }
				got, expected, input := tcase.eval(float64(step)/float64(steps))
				diff := math.Abs(got.ToFloat64() - expected)*fixmath.Scale
				total += diff
				if diff > result.MaxErr {
					result.MaxErr = diff
					result.Worst  = input
				}
			}
			result.MeanErr = total/float64(steps)
			results[i] = result
			return nil
		})
	}
	if err := group.Wait(); err != nil { return nil, err }
	return results, nil
}

// Writes the results as an aligned table.
func writeReport(w io.Writer, results []accuracy) error {
	rows := [][]string{ {"function", "samples", "max ulp", "mean ulp", "worst input"} }
	for _, result := range results {
		rows = append(rows, []string{
			result.Name, fmt.Sprint(result.Samples),
			fmt.Sprintf("%.3f", result.MaxErr), fmt.Sprintf("%.3f", result.MeanErr),
			result.Worst,
		})
	}

	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for col, cell := range row {
			widths[col] = max(widths[col], runewidth.StringWidth(cell))
		}
	}

	var builder strings.Builder
	for _, row := range rows {
		for col, cell := range row {
			if col > 0 { builder.WriteString("  ") }
			if col == len(row) - 1 {
				builder.WriteString(cell)
			} else {
				builder.WriteString(runewidth.FillRight(cell, widths[col]))
			}
		}
		builder.WriteByte('\n')
	}
	_, err := io.WriteString(w, builder.String())
	return err
}

package main

import "context"
import "strings"
import "testing"

import "github.com/tinne26/fixmath"
import "github.com/tinne26/fixmath/internal/log"

func TestRunScript(t *testing.T) {
	source := `
		local fixed = require "fixed"
		local angle = fixed.rad(30)
		fixed.emit("sin30", fixed.sin(angle))
		fixed.emit("product", fixed.new("1.5") * 4)
		return fixed.ONE / 4, 2.5, "ignored"
	`
	entries, err := runScript(context.Background(), "test.lua", source, defaultConfig(), log.Discard())
	if err != nil { t.Fatalf("unexpected error: %s", err) }

	expected := []Entry{
		newEntry("sin30", fixmath.FromInt(30).ToRadians().Sin()),
		newEntry("product", fixmath.FromInt(6)),
		newEntry("return #1", fixmath.One/4),
		newEntry("return #2", fixmath.FromFloat64(2.5)),
	}
	if len(entries) != len(expected) {
		t.Fatalf("expected %d entries, got %d: %+v", len(expected), len(entries), entries)
	}
	for i := range entries {
		if entries[i] != expected[i] {
			t.Fatalf("entry #%d: expected %+v, got %+v", i, expected[i], entries[i])
		}
	}
	if entries[0].Text != "0.5" {
		t.Fatalf("expected sin(30 degrees) to print as 0.5, got %s", entries[0].Text)
	}
}

func TestRunScriptErrors(t *testing.T) {
	tests := []struct {
		source string
		errStr string
	}{
		{"this is not lua", "loading"},
		{"return require('fixed').new(1) / 0", "division by zero"},
		{"error('boom')", "boom"},
	}

	for i, test := range tests {
		_, err := runScript(context.Background(), "bad.lua", test.source, defaultConfig(), log.Discard())
		if err == nil || !strings.Contains(err.Error(), test.errStr) {
			t.Fatalf("test #%d: expected error containing %q, got %v", i, test.errStr, err)
		}
	}
}

func TestRunScriptCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := runScript(ctx, "loop.lua", "while true do end", defaultConfig(), log.Discard())
	if err == nil { t.Fatal("expected cancellation error") }
}

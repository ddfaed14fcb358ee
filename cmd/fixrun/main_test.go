package main

import "os"
import "bytes"
import "context"
import "strings"
import "testing"
import "path/filepath"

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil { t.Fatal(err) }
	return path
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	script := writeFile(t, dir, "area.lua", `
		local fixed = require "fixed"
		local r = fixed.new("1000")
		fixed.emit("half", fixed.ONE / 2)
		fixed.emit("big", r * 3)
	`)
	config := writeFile(t, dir, "fixrun.toml", "lang = \"de\"\ndump = \"" + filepath.ToSlash(filepath.Join(dir, "out.msgpack")) + "\"\n")

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{ "-config", config, script }, &stdout, &stderr)
	if code != 0 { t.Fatalf("unexpected exit code %d, stderr:\n%s", code, stderr.String()) }
	if stdout.String() != "half = 0,5\nbig = 3.000\n" {
		t.Fatalf("unexpected output %q", stdout.String())
	}
	if _, err := os.Stat(filepath.Join(dir, "out.msgpack")); err != nil {
		t.Fatalf("expected dump file: %s", err)
	}

	// flags override the config file
	stdout.Reset()
	code = run(context.Background(), []string{ "-config", config, "-lang", "en", "-dump", "", script }, &stdout, &stderr)
	if code != 0 { t.Fatalf("unexpected exit code %d, stderr:\n%s", code, stderr.String()) }
	if stdout.String() != "half = 0.5\nbig = 3,000\n" {
		t.Fatalf("unexpected output %q", stdout.String())
	}
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	bad := writeFile(t, dir, "bad.lua", "return require('fixed').sqrt(-4)")
	tests := []struct {
		args []string
		code int
		msg  string
	}{
		{[]string{}, 2, "usage"},
		{[]string{"-unknown"}, 2, "flag provided but not defined"},
		{[]string{"-log", "loud", bad}, 2, "unknown log level"},
		{[]string{"-lang", "not a tag!", bad}, 2, "invalid -lang"},
		{[]string{bad}, 1, "square root of negative"},
		{[]string{filepath.Join(dir, "missing.lua")}, 1, "missing.lua"},
		{[]string{"-config", filepath.Join(dir, "missing.toml"), bad}, 1, "missing.toml"},
	}

	for i, test := range tests {
		var stdout, stderr bytes.Buffer
		code := run(context.Background(), test.args, &stdout, &stderr)
		if code != test.code || !strings.Contains(stderr.String(), test.msg) {
			str := "test #%d: %v expected code %d and %q in stderr, got %d and:\n%s"
			t.Fatalf(str, i, test.args, test.code, test.msg, code, stderr.String())
		}
	}
}

func TestRunReport(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), []string{ "-report", "-steps", "512" }, &stdout, &stderr)
	if code != 0 { t.Fatalf("unexpected exit code %d, stderr:\n%s", code, stderr.String()) }
	output := stdout.String()
	for _, name := range []string{ "function", "sin", "cos", "tan", "atan2", "asin" } {
		if !strings.Contains(output, name) {
			t.Fatalf("report is missing %q:\n%s", name, output)
		}
	}
}

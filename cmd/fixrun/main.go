// Command fixrun runs Lua scripts using the fixmath Lua module
// and prints the values they produce, or reports the accuracy of
// the fixmath trigonometric functions.
//
// Usage:
//
//	fixrun [-config file.toml] [-lang tag] [-dump out.msgpack] [-watch] script.lua
//	fixrun -report [-steps N]
//
// Scripts send values out with fixed.emit(label, value). Fixed
// values returned by the script are printed too.
package main

import "io"
import "os"
import "fmt"
import "flag"
import "context"
import "os/signal"

import "github.com/tinne26/fixmath/internal/log"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("fixrun", flag.ContinueOnError)
	flags.SetOutput(stderr)
	configPath := flags.String("config", "", "TOML configuration file")
	logLevel := flags.String("log", "", "log level (info or debug)")
	lang := flags.String("lang", "", "language tag for printed values (e.g. en, de, fr)")
	dump := flags.String("dump", "", "write the produced values to this file as msgpack")
	watch := flags.Bool("watch", false, "run the script again each time it changes")
	report := flags.Bool("report", false, "print the accuracy of the trigonometric functions")
	steps := flags.Int("steps", 0, "samples per function for -report")
	if err := flags.Parse(args); err != nil { return 2 }

	logger := log.New(stderr, "fixrun: ", 0)
	config := defaultConfig()
	if *configPath != "" {
		if err := loadConfigFile(*configPath, &config, logger); err != nil {
			logger.Infof("%s", err)
			return 1
		}
	}

	// explicit flags override the file
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log"  : config.LogLevel = *logLevel
		case "lang" : config.Lang = *lang
		case "dump" : config.Dump = *dump
		case "steps": config.Steps = *steps
		}
	})
	if err := config.validate(); err != nil {
		logger.Infof("%s", err)
		return 2
	}
	level, _ := log.ParseLevel(config.LogLevel)
	logger.SetLevel(level)

	if *report {
		results, err := measureTrig(ctx, config.Steps)
		if err == nil { err = writeReport(stdout, results) }
		if err != nil {
			logger.Infof("%s", err)
			return 1
		}
		return 0
	}

	if flags.NArg() != 1 {
		fmt.Fprintln(stderr, "usage: fixrun [flags] script.lua")
		flags.PrintDefaults()
		return 2
	}
	printer, err := newValuePrinter(config.Lang)
	if err != nil {
		logger.Infof("%s", err)
		return 2
	}

	path := flags.Arg(0)
	once := func() error { return runFile(ctx, path, config, printer, stdout, logger) }
	if !*watch {
		if err := once(); err != nil {
			logger.Infof("%s", err)
			return 1
		}
		return 0
	}

	if err := once(); err != nil { logger.Infof("%s", err) }
	if err := watchFile(ctx, path, logger, once); err != nil {
		logger.Infof("%s", err)
		return 1
	}
	return 0
}

// Runs the script file, prints its values and writes the
// dump if configured.
func runFile(ctx context.Context, path string, config Config, printer *valuePrinter, stdout io.Writer, logger *log.Logger) error {
	source, err := os.ReadFile(path)
	if err != nil { return err }
	entries, err := runScript(ctx, path, string(source), config, logger)
	if err != nil { return err }
	if err := printer.PrintEntries(stdout, entries); err != nil { return err }
	if config.Dump == "" { return nil }
	if err := writeDumpFile(config.Dump, path, entries); err != nil { return err }
	logger.Debugf("dump written to %s", config.Dump)
	return nil
}

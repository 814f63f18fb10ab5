package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ChristopherBilg/crisp"
)

const appName = "crisp"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	interactive bool
	commandLine string
	filename    string
	configPath  string
	logLevel    string
	version     bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	var o options
	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&o.interactive, "i", false, "interactive mode")
	fs.BoolVar(&o.interactive, "interactive", false, "interactive mode")
	fs.StringVar(&o.commandLine, "c", "", "evaluate one form given on the command line")
	fs.StringVar(&o.commandLine, "command-line", "", "evaluate one form given on the command line")
	fs.StringVar(&o.filename, "f", "", "evaluate every form in a file")
	fs.StringVar(&o.filename, "filename", "", "evaluate every form in a file")
	fs.StringVar(&o.configPath, "config", "", "config file (default $HOME/"+configFile+")")
	fs.StringVar(&o.logLevel, "log-level", "", "debug, info, warn or error (overrides CRISP_LOG)")
	fs.BoolVar(&o.version, "version", false, "print the version and exit")
	fs.Usage = func() {
		fmt.Fprintf(stderr, `crisp %s (built %s)

Usage:
  %s [-i]                  Start the REPL (default).
  %s -c '<form>'           Evaluate one form and print the result.
  %s -f <file.crisp>       Evaluate every form in a file.

Flags:
`, crisp.Version, crisp.BuildDate, appName, appName, appName)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		fs.Usage()
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return &o, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	o, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		return 2
	}
	if o.version {
		fmt.Fprintln(stdout, crisp.Version)
		return 0
	}

	cfg, err := LoadConfig(o.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", appName, err)
		return 1
	}
	level, err := resolveLevel(o.logLevel, os.Getenv("CRISP_LOG"), cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", appName, err)
		return 2
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	logger.Info("starting", slog.String("version", crisp.Version), slog.String("config", cfg.Path))

	ip := crisp.NewInterpreter(
		crisp.WithOutput(stdout),
		crisp.WithLogger(logger),
		crisp.WithMaxCallDepth(cfg.MaxCallDepth),
	)

	switch {
	case o.interactive:
		return cmdRepl(ip, cfg, stdout, stderr)
	case o.commandLine != "":
		return cmdCommandLine(ip, o.commandLine, stdout, stderr)
	case o.filename != "":
		return cmdFile(ip, o.filename, stdout, stderr)
	default:
		logger.Debug("no mode selected, defaulting to interactive")
		return cmdRepl(ip, cfg, stdout, stderr)
	}
}

// resolveLevel picks the log level: flag, then environment, then config.
func resolveLevel(flagVal, envVal string, fallback slog.Level) (slog.Level, error) {
	for _, v := range []string{flagVal, envVal} {
		if v != "" {
			return parseLevel(v)
		}
	}
	return fallback, nil
}

func cmdCommandLine(ip *crisp.Interpreter, src string, stdout, stderr io.Writer) int {
	v, err := ip.EvalSource(src)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", appName, err)
		return 1
	}
	printResult(stdout, v)
	return 0
}

func cmdFile(ip *crisp.Interpreter, path string, stdout, stderr io.Writer) int {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "%s: cannot read %s: %v\n", appName, path, err)
		return 1
	}
	v, err := ip.EvalAll(string(src))
	if err != nil {
		fmt.Fprintf(stderr, "%s: %s: %v\n", appName, path, err)
		return 1
	}
	printResult(stdout, v)
	return 0
}

func printResult(w io.Writer, v crisp.Atom) {
	if out, ok := crisp.FormatResult(v); ok {
		fmt.Fprintln(w, out)
	}
}

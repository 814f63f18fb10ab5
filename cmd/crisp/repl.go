package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	"github.com/ChristopherBilg/crisp"
)

var helpText = `
REPL commands:
  :quit    Exit the REPL (also (quit) or Ctrl+D)
  :env     List top-level bindings
  :help    Show this help
`

func red(s string) string  { return "\x1b[31m" + s + "\x1b[0m" }
func blue(s string) string { return "\x1b[94m" + s + "\x1b[0m" }

// lineReader is the subset of *liner.State the loop needs.
type lineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

type session struct {
	ip     *crisp.Interpreter
	cfg    *Config
	in     lineReader
	stdout io.Writer
	stderr io.Writer
}

func cmdRepl(ip *crisp.Interpreter, cfg *Config, stdout, stderr io.Writer) int {
	fmt.Fprintf(stdout, "crisp %s REPL\nCtrl+C cancels input, Ctrl+D exits. Type :help for commands.\n", crisp.Version)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if cfg.HistoryFile != "" {
		if f, err := os.Open(cfg.HistoryFile); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(cfg.HistoryFile); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	s := &session{ip: ip, cfg: cfg, in: ln, stdout: stdout, stderr: stderr}
	return s.loop()
}

func (s *session) loop() int {
	for {
		code, ok := s.readForm()
		if !ok {
			fmt.Fprintln(s.stdout)
			return 0
		}
		trimmed := strings.TrimSpace(code)
		if trimmed == "" {
			continue
		}
		if trimmed == "(quit)" {
			return 0
		}
		if strings.HasPrefix(trimmed, ":") {
			if s.command(strings.ToLower(trimmed)) {
				return 0
			}
			continue
		}

		s.in.AppendHistory(strings.ReplaceAll(code, "\n", " "))
		v, err := s.ip.EvalSource(code)
		if err != nil {
			fmt.Fprintln(s.stderr, s.paint(red, err.Error()))
			continue
		}
		if out, ok := crisp.FormatResult(v); ok {
			fmt.Fprintln(s.stdout, s.paint(blue, out))
		}
	}
}

// command runs a ':' REPL command and reports whether the session should end.
func (s *session) command(cmd string) bool {
	switch cmd {
	case ":quit", ":q":
		return true
	case ":help":
		fmt.Fprint(s.stdout, helpText)
	case ":env":
		for _, name := range s.ip.Env.Names(crisp.Root) {
			v, _ := s.ip.Env.Get(crisp.Root, name)
			fmt.Fprintf(s.stdout, "%s = %s\n", name, crisp.FormatAtom(v))
		}
	default:
		fmt.Fprintln(s.stdout, "unknown command. Type :help for commands.")
	}
	return false
}

// readForm accumulates lines until they parse or fail for a reason other than
// missing ')'. ok is false on EOF.
func (s *session) readForm() (string, bool) {
	var b strings.Builder
	for {
		prompt := s.cfg.Prompt
		if b.Len() > 0 {
			prompt = s.cfg.ContinuationPrompt
		}
		line, err := s.in.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			fmt.Fprintln(s.stderr, s.paint(red, err.Error()))
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		trimmed := strings.TrimSpace(src)
		if trimmed == "" || strings.HasPrefix(trimmed, ":") {
			return src, true
		}
		if _, perr := crisp.ParseExpr(src); perr != nil && crisp.IsIncomplete(perr) {
			continue
		}
		return src, true
	}
}

func (s *session) paint(fn func(string) string, text string) string {
	if !s.cfg.Color {
		return text
	}
	return fn(text)
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("CRISP_LOG", "")
	return home
}

func runCLI(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errb bytes.Buffer
	code = run(args, &out, &errb)
	return code, out.String(), errb.String()
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func Test_CLI_CommandLine(t *testing.T) {
	isolate(t)
	for _, flagName := range []string{"-c", "--command-line"} {
		code, out, errs := runCLI(t, flagName, "(+ 1 2.5)")
		if code != 0 || out != "3.5\n" || errs != "" {
			t.Fatalf("%s: code=%d out=%q err=%q", flagName, code, out, errs)
		}
	}
}

func Test_CLI_CommandLineVoidPrintsNothing(t *testing.T) {
	isolate(t)
	code, out, _ := runCLI(t, "-c", `(print "side effect")`)
	if code != 0 || out != "side effect\n" {
		t.Fatalf("code=%d out=%q", code, out)
	}
}

func Test_CLI_CommandLineError(t *testing.T) {
	isolate(t)
	code, out, errs := runCLI(t, "-c", "(/ 1 0)")
	if code != 1 || out != "" {
		t.Fatalf("code=%d out=%q", code, out)
	}
	if !strings.Contains(errs, "DIVISION BY ZERO") {
		t.Fatalf("stderr = %q", errs)
	}
}

func Test_CLI_File(t *testing.T) {
	home := isolate(t)
	p := writeFile(t, home, "prog.crisp", `
(define square (lambda (n) (* n n)))
(print (square 3))
(square 12)
`)
	code, out, errs := runCLI(t, "-f", p)
	if code != 0 || out != "9\n144\n" {
		t.Fatalf("code=%d out=%q err=%q", code, out, errs)
	}
}

func Test_CLI_FileErrors(t *testing.T) {
	home := isolate(t)
	code, _, errs := runCLI(t, "--filename", filepath.Join(home, "missing.crisp"))
	if code != 1 || !strings.Contains(errs, "cannot read") {
		t.Fatalf("missing file: code=%d err=%q", code, errs)
	}

	p := writeFile(t, home, "bad.crisp", "(print 1)\n(print undefined)\n(print 2)\n")
	code, out, errs := runCLI(t, "-f", p)
	if code != 1 || out != "1\n" || !strings.Contains(errs, "UNBOUND SYMBOL: undefined") {
		t.Fatalf("bad file: code=%d out=%q err=%q", code, out, errs)
	}
}

func Test_CLI_Usage(t *testing.T) {
	isolate(t)
	if code, _, _ := runCLI(t, "--no-such-flag"); code != 2 {
		t.Fatalf("unknown flag exit = %d", code)
	}
	if code, _, _ := runCLI(t, "-c", "(+ 1 2)", "extra"); code != 2 {
		t.Fatalf("stray argument exit = %d", code)
	}
	if code, _, errs := runCLI(t, "-h"); code != 0 || !strings.Contains(errs, "Usage:") {
		t.Fatalf("help exit = %d, stderr %q", code, errs)
	}
	if code, _, _ := runCLI(t, "--log-level", "loud", "-c", "(+ 1 2)"); code != 2 {
		t.Fatalf("bad log level exit = %d", code)
	}
}

func Test_CLI_Version(t *testing.T) {
	isolate(t)
	code, out, _ := runCLI(t, "--version")
	if code != 0 || !strings.HasPrefix(out, "v") {
		t.Fatalf("code=%d out=%q", code, out)
	}
}

func Test_CLI_DebugLogging(t *testing.T) {
	isolate(t)
	t.Setenv("CRISP_LOG", "debug")
	code, out, errs := runCLI(t, "-c", "((define f (lambda (x) (+ x 1))) (f 1))")
	if code != 0 || out != "(2)\n" {
		t.Fatalf("code=%d out=%q", code, out)
	}
	if !strings.Contains(errs, "function call") || !strings.Contains(errs, "name=f") {
		t.Fatalf("debug log missing call record:\n%s", errs)
	}
}

func Test_CLI_ConfigMaxCallDepth(t *testing.T) {
	home := isolate(t)
	writeFile(t, home, configFile, "max_call_depth: 5\n")
	code, _, errs := runCLI(t, "-c", "((define r (lambda (n) (r n))) (r 1))")
	if code != 1 || !strings.Contains(errs, "STACK OVERFLOW") {
		t.Fatalf("code=%d err=%q", code, errs)
	}

	bad := writeFile(t, home, "bad.yml", "colour: true\n")
	if code, _, errs := runCLI(t, "--config", bad, "-c", "(+ 1 2)"); code != 1 || !strings.Contains(errs, "colour") {
		t.Fatalf("unknown key: code=%d err=%q", code, errs)
	}
}

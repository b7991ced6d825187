package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ── Unified output helpers ────────────────────────────────────────────────────
// All commands use these functions to ensure consistent icon usage and
// indentation throughout the CLI output.
//
// Icon semantics:
//   ✓  success / healthy
//   ✗  error / failure
//   ⚠  warning
//   ○  skipped / not applicable
//   ~  neutral info / state change

// separator is the rule printed between playbook documents.
var separator = strings.Repeat("-", 40)

// printSection prints a top-level section header, e.g. "=== Init ===".
func printSection(w io.Writer, title string) {
	fmt.Fprintf(w, "\n=== %s ===\n", title)
}

// printLine prints an icon line.
//
//	name = "" → "  ✓  msg"
//	name set  → "  ✓  [name] msg"
func printLine(w io.Writer, icon, name, msg string) {
	if name == "" {
		fmt.Fprintf(w, "  %s  %s\n", icon, msg)
	} else {
		fmt.Fprintf(w, "  %s  [%s] %s\n", icon, name, msg)
	}
}

func printOK(w io.Writer, name, msg string)   { printLine(w, "✓", name, msg) }
func printErr(w io.Writer, name, msg string)  { printLine(w, "✗", name, msg) }
func printWarn(w io.Writer, name, msg string) { printLine(w, "⚠", name, msg) }
func printSkip(w io.Writer, name, msg string) { printLine(w, "○", name, msg) }
func printInfo(w io.Writer, name, msg string) { printLine(w, "~", name, msg) }

// terminalWidth reports whether w is an interactive terminal and, if so, its
// width in columns (80 when the size cannot be read).
func terminalWidth(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0, false
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return 80, true
	}
	return width, true
}

package output

import (
	"os"

	"golang.org/x/term"
)

// IsTTY reports whether stdout is an interactive terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Print writes a message to stdout without formatting.
func Print(msg string) {
	os.Stdout.WriteString(msg)
}

// Println writes a message to stdout with a trailing newline.
func Println(msg string) {
	os.Stdout.WriteString(msg + "\n")
}

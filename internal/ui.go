package internal

import (
	"bufio"
	"fmt"
	"io"
)

// ANSI color codes
const (
	colorReset = "\033[0m"
	colorBold  = "\033[1m"
	colorGreen = "\033[32m"
	colorRed   = "\033[31m"
)

// Color formatting functions
func Bold(text string) string {
	return colorBold + text + colorReset
}

func Green(text string) string {
	return colorGreen + text + colorReset
}

func Red(text string) string {
	return colorRed + text + colorReset
}

// Confirm prompts for a single-character confirmation. Only 'y' proceeds;
// anything else aborts the import.
func Confirm(in io.Reader, out io.Writer) bool {
	fmt.Fprint(out, Bold("Type 'y' to continue: "))

	r, _, err := bufio.NewReader(in).ReadRune()
	fmt.Fprintln(out)

	return err == nil && r == 'y'
}

package utils

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var osExit = os.Exit

// PrintError writes err as a single diagnostic line, red on a terminal.
func PrintError(w io.Writer, err error) {
	color.New(color.FgRed).Fprintln(w, err)
}

func CheckErrorAndExit(err error, msg string) {
	if err == nil {
		return
	}
	if msg != "" {
		err = fmt.Errorf("%s: %w", msg, err)
	}
	PrintError(os.Stderr, err)
	osExit(1)
}

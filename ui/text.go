package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/logrusorgru/aurora"
)

// Color returns an aurora instance that only emits escape codes when w is a
// terminal.
func Color(w io.Writer) aurora.Aurora {
	return aurora.NewAurora(IsTerminal(w))
}

func Bold(text string) string {
	return Color(os.Stdout).Bold(text).String()
}

func RedText(text string) string {
	return Color(os.Stdout).Red(text).String()
}

// UnorderedList renders one "- item" line per entry.
func UnorderedList(items []string) string {
	var sb strings.Builder
	for _, item := range items {
		fmt.Fprintf(&sb, "- %s\n", item)
	}
	return sb.String()
}

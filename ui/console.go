package ui

import (
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"
)

// Console is the operator-facing output: warnings and the run summary.
type Console struct {
	out   io.Writer
	color aurora.Aurora
}

func NewConsole(w io.Writer) *Console {
	return &Console{
		out:   w,
		color: Color(w),
	}
}

// Warn prints "Warning: <msg>". Only the prefix is colored.
func (c *Console) Warn(format string, args ...interface{}) {
	fmt.Fprintf(c.out, "%s %s\n", c.color.Yellow("Warning:"), fmt.Sprintf(format, args...))
}

func (c *Console) Println(a ...interface{}) {
	fmt.Fprintln(c.out, a...)
}

func (c *Console) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) Bold(text string) string {
	return c.color.Bold(text).String()
}

func (c *Console) Red(text string) string {
	return c.color.Red(text).String()
}

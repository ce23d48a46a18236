package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/uncurl/uncurl/packages/curl"
)

// Part selects one component of a parsed request for display.
type Part string

const (
	PartMethod Part = "method"
	PartHeader Part = "header"
	PartData   Part = "data"
	PartFlag   Part = "flag"
	PartURL    Part = "url"
)

// ParsePart validates a part name from the CLI.
func ParsePart(s string) (Part, error) {
	switch Part(s) {
	case PartMethod, PartHeader, PartData, PartFlag, PartURL:
		return Part(s), nil
	}
	return "", fmt.Errorf("unknown part %q (expected method, header, data, flag, or url)", s)
}

type ConsoleFormatter struct {
	writer  io.Writer
	noColor bool
}

type ConsoleOption func(*ConsoleFormatter)

func WithWriter(w io.Writer) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.writer = w
	}
}

func WithNoColor(noColor bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.noColor = noColor
	}
}

func NewConsoleFormatter(opts ...ConsoleOption) *ConsoleFormatter {
	f := &ConsoleFormatter{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.noColor {
		color.NoColor = true
	}
	return f
}

var labelColor = color.New(color.FgCyan, color.Bold)

func (f *ConsoleFormatter) label(text string) string {
	if f.noColor {
		return text
	}
	return labelColor.Sprint(text)
}

// Summary prints the full one-field-per-line view with placeholder text
// for absent fields.
func (f *ConsoleFormatter) Summary(req *curl.Request) {
	fmt.Fprintf(f.writer, "%s %s\n", f.label("URL:"), req.URL.String())

	if req.Method == "" {
		fmt.Fprintf(f.writer, "%s (not specified)\n", f.label("Method:"))
	} else {
		fmt.Fprintf(f.writer, "%s %s\n", f.label("Method:"), req.Method)
	}

	f.list("Headers:", req.Headers)
	f.list("Data:", req.Data)
	f.list("Flags:", req.Flags)
}

func (f *ConsoleFormatter) list(label string, items []string) {
	if len(items) == 0 {
		fmt.Fprintf(f.writer, "%s (none)\n", f.label(label))
		return
	}
	fmt.Fprintf(f.writer, "%s\n", f.label(label))
	for _, item := range items {
		fmt.Fprintf(f.writer, "  - %s\n", item)
	}
}

// Part prints one selected component, one entry per line.
func (f *ConsoleFormatter) Part(req *curl.Request, part Part) {
	switch part {
	case PartMethod:
		if req.Method == "" {
			fmt.Fprintln(f.writer, "(method not specified)")
		} else {
			fmt.Fprintln(f.writer, req.Method)
		}
	case PartHeader:
		f.partList(req.Headers, "(no headers)")
	case PartData:
		f.partList(req.Data, "(no data payload)")
	case PartFlag:
		f.partList(req.Flags, "(no flags)")
	case PartURL:
		fmt.Fprintln(f.writer, req.URL.String())
	}
}

func (f *ConsoleFormatter) partList(items []string, placeholder string) {
	if len(items) == 0 {
		fmt.Fprintln(f.writer, placeholder)
		return
	}
	for _, item := range items {
		fmt.Fprintln(f.writer, item)
	}
}

// FormatError prints a plain diagnostic line.
func (f *ConsoleFormatter) FormatError(err error) {
	if f.noColor {
		fmt.Fprintf(f.writer, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(f.writer, "%s %v\n", color.New(color.FgRed, color.Bold).Sprint("Error:"), err)
}

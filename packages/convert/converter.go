// Package convert renders parsed curl commands as .http request files.
package convert

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/uncurl/uncurl/packages/curl"
)

// Converter converts curl commands to .http request text.
type Converter struct {
	generateNames bool
}

// Option is a functional option for Converter.
type Option func(*Converter)

// WithNames configures whether to emit ### separators and @name
// annotations derived from the request URL.
func WithNames(generate bool) Option {
	return func(c *Converter) {
		c.generateNames = generate
	}
}

// NewConverter creates a new converter.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		generateNames: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ConvertCommand converts a single curl command.
func (c *Converter) ConvertCommand(command string) (string, error) {
	req, err := curl.Parse(command)
	if err != nil {
		return "", err
	}
	return c.Render(req), nil
}

// ConvertFile converts a file of curl commands, one per line, joining
// backslash continuations and skipping blank lines and # comments.
func (c *Converter) ConvertFile(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	var commands []string
	var currentCmd strings.Builder
	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasSuffix(line, "\\") {
			currentCmd.WriteString(strings.TrimSuffix(line, "\\"))
			currentCmd.WriteString(" ")
			continue
		}

		currentCmd.WriteString(line)
		commands = append(commands, currentCmd.String())
		currentCmd.Reset()
	}

	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	// A trailing continuation with no final line still forms a command.
	if currentCmd.Len() > 0 {
		commands = append(commands, currentCmd.String())
	}

	var sb strings.Builder
	sb.WriteString("# Generated from curl commands\n\n")

	for i, command := range commands {
		converted, err := c.ConvertCommand(command)
		if err != nil {
			return "", fmt.Errorf("failed to convert command %d: %w", i+1, err)
		}
		sb.WriteString(converted)
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

// Render writes one parsed request in .http format: request line, headers,
// then payload fragments joined with & the way curl concatenates them.
func (c *Converter) Render(req *curl.Request) string {
	var sb strings.Builder

	method := req.Method
	if method == "" {
		method = "GET"
		if len(req.Data) > 0 {
			method = "POST"
		}
	}

	if c.generateNames {
		name := requestName(&req.URL, method)
		sb.WriteString("### ")
		sb.WriteString(name)
		sb.WriteString("\n")
		sb.WriteString("# @name ")
		sb.WriteString(sanitizeName(name))
		sb.WriteString("\n")
	}

	sb.WriteString(method)
	sb.WriteString(" ")
	sb.WriteString(req.URL.String())
	sb.WriteString("\n")

	for _, header := range req.Headers {
		key, value, found := strings.Cut(header, ":")
		if !found {
			continue
		}
		sb.WriteString(strings.TrimSpace(key))
		sb.WriteString(": ")
		sb.WriteString(strings.TrimSpace(value))
		sb.WriteString("\n")
	}

	if len(req.Data) > 0 {
		sb.WriteString("\n")
		sb.WriteString(strings.Join(req.Data, "&"))
		sb.WriteString("\n")
	}

	return sb.String()
}

// requestName derives a request name from the URL path and method.
func requestName(u *curl.URL, method string) string {
	path := strings.Trim(u.Path, "/")
	if path == "" {
		path = "root"
	}
	path = strings.ReplaceAll(path, "/", "_")
	path = strings.ReplaceAll(path, "-", "_")
	return strings.ToLower(method) + "_" + path
}

// sanitizeName sanitizes a name for use as an identifier.
func sanitizeName(name string) string {
	result := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			return r
		}
		return '_'
	}, name)

	for strings.Contains(result, "__") {
		result = strings.ReplaceAll(result, "__", "_")
	}
	return strings.Trim(result, "_")
}

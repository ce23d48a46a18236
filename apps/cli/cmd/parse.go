package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/uncurl/uncurl/packages/config"
	"github.com/uncurl/uncurl/packages/curl"
	"github.com/uncurl/uncurl/packages/history"
	"github.com/uncurl/uncurl/packages/output"
	"github.com/uncurl/uncurl/packages/schema"
)

var parseCmd = &cobra.Command{
	Use:   "parse <curl-command>",
	Short: "Parse a curl command into its components",
	Long: `Parse a curl command and print its components: target URL, method,
headers, data payloads, and remaining flags.

The command may be passed as a single quoted argument or as several
arguments, which are joined with spaces before parsing.

Examples:
  uncurl parse 'curl "https://api.example.com/users" -X POST -d "name=x"'
  uncurl parse 'curl "https://example.com"' --part url
  uncurl parse 'curl "https://example.com" -H "Accept: text/html"' --json --pretty
  uncurl parse 'curl "https://example.com"' --format yaml
  uncurl parse 'curl "https://example.com"' --json --query url.domain
  uncurl parse 'curl "https://example.com" -d "{\"name\":\"x\"}"' --schema user.json`,
	Args: cobra.MinimumNArgs(1),
	RunE: parseCommand,
}

var (
	parsePartFlag    string
	parseJSONFlag    bool
	parseKeysFlag    []string
	parsePrettyFlag  bool
	parseFormatFlag  string
	parseQueryFlag   string
	parseSchemaFlag  string
	parseSaveFlag    bool
	parseNoColorFlag bool
	parseConfigFlag  string
)

func init() {
	parseCmd.Flags().StringVarP(&parsePartFlag, "part", "p", "", "Print a single component: method, header, data, flag, url")
	parseCmd.Flags().BoolVar(&parseJSONFlag, "json", false, "Output as JSON (shorthand for --format json)")
	parseCmd.Flags().StringArrayVar(&parseKeysFlag, "json-key", nil, "Restrict JSON/YAML output to a field (repeatable): url, method, headers, data, flags, tokens")
	parseCmd.Flags().BoolVar(&parsePrettyFlag, "pretty", false, "Pretty-print JSON output")
	parseCmd.Flags().StringVar(&parseFormatFlag, "format", "", "Output format: text, json, yaml")
	parseCmd.Flags().StringVar(&parseQueryFlag, "query", "", "Extract a value from the JSON output by path (e.g. url.domain)")
	parseCmd.Flags().StringVar(&parseSchemaFlag, "schema", "", "Validate JSON data payloads against a JSON Schema file")
	parseCmd.Flags().BoolVar(&parseSaveFlag, "save", false, "Record the parse in the history database")
	parseCmd.Flags().BoolVar(&parseNoColorFlag, "no-color", getEnvBool("UNCURL_NO_COLOR", false), "Disable colored output (env: UNCURL_NO_COLOR)")
	parseCmd.Flags().StringVar(&parseConfigFlag, "config", getEnvString("UNCURL_CONFIG", ""), "Path to config file (env: UNCURL_CONFIG)")
}

func parseCommand(cmd *cobra.Command, args []string) error {
	input := strings.Join(args, " ")

	cfg, err := config.LoadConfig(parseConfigFlag)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		os.Exit(ExitConfigError)
	}

	format := cfg.DefaultFormat
	if parseJSONFlag {
		format = "json"
	}
	if cmd.Flags().Changed("format") {
		format = parseFormatFlag
	}
	switch format {
	case "text", "json", "yaml":
	default:
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: unknown format %q (want text, json, or yaml)\n", format)
		os.Exit(ExitUsageError)
	}

	pretty := parsePrettyFlag || cfg.GetPretty()
	noColor := parseNoColorFlag || cfg.GetNoColor()

	var part output.Part
	if parsePartFlag != "" {
		part, err = output.ParsePart(parsePartFlag)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			os.Exit(ExitUsageError)
		}
	}

	var keys []output.Field
	for _, raw := range parseKeysFlag {
		field, err := output.ParseField(raw)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			os.Exit(ExitUsageError)
		}
		keys = append(keys, field)
	}

	req, err := curl.Parse(input)
	if err != nil {
		reportParseError(cmd, format, pretty, noColor, err)
		os.Exit(ExitParseError)
	}

	if parseSaveFlag {
		if err := saveToHistory(cfg, input, req); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not save to history: %v\n", err)
		}
	}

	out := cmd.OutOrStdout()

	if parseQueryFlag != "" {
		doc, err := output.RenderJSON(output.BuildValue(req, part, keys), false)
		if err != nil {
			reportSerializationError(cmd, format, pretty, err)
			os.Exit(ExitParseError)
		}
		result, err := output.Query(doc, parseQueryFlag)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			os.Exit(ExitUsageError)
		}
		fmt.Fprintln(out, result)
	} else {
		switch format {
		case "text":
			formatter := output.NewConsoleFormatter(output.WithWriter(out), output.WithNoColor(noColor))
			if part != "" {
				formatter.Part(req, part)
			} else {
				formatter.Summary(req)
			}
		case "json":
			rendered, err := output.RenderJSON(output.BuildValue(req, part, keys), pretty)
			if err != nil {
				reportSerializationError(cmd, format, pretty, err)
				os.Exit(ExitParseError)
			}
			fmt.Fprintln(out, string(rendered))
		case "yaml":
			rendered, err := output.RenderYAML(output.BuildValue(req, part, keys))
			if err != nil {
				reportSerializationError(cmd, format, pretty, err)
				os.Exit(ExitParseError)
			}
			fmt.Fprint(out, string(rendered))
		}
	}

	if parseSchemaFlag != "" {
		if err := validateAgainstSchema(cmd, req, noColor); err != nil {
			return err
		}
	}

	return nil
}

// reportParseError writes a structured payload for machine-readable formats
// and a plain diagnostic otherwise.
func reportParseError(cmd *cobra.Command, format string, pretty, noColor bool, parseErr error) {
	payload := output.ErrorPayload("parse_error", parseErr)
	switch format {
	case "json":
		if rendered, err := output.RenderJSON(payload, pretty); err == nil {
			fmt.Fprintln(cmd.OutOrStdout(), string(rendered))
			return
		}
	case "yaml":
		if rendered, err := output.RenderYAML(payload); err == nil {
			fmt.Fprint(cmd.OutOrStdout(), string(rendered))
			return
		}
	}
	formatter := output.NewConsoleFormatter(output.WithWriter(cmd.ErrOrStderr()), output.WithNoColor(noColor))
	formatter.FormatError(parseErr)
}

func reportSerializationError(cmd *cobra.Command, format string, pretty bool, serErr error) {
	payload := output.ErrorPayload("serialization_error", serErr)
	switch format {
	case "json":
		if rendered, err := output.RenderJSON(payload, pretty); err == nil {
			fmt.Fprintln(cmd.OutOrStdout(), string(rendered))
			return
		}
	case "yaml":
		if rendered, err := output.RenderYAML(payload); err == nil {
			fmt.Fprint(cmd.OutOrStdout(), string(rendered))
			return
		}
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", serErr)
}

func saveToHistory(cfg *config.Config, command string, req *curl.Request) error {
	store, err := history.Open(cfg.GetHistoryPath())
	if err != nil {
		return err
	}
	defer store.Close()

	_, err = store.Record(command, req)
	return err
}

func validateAgainstSchema(cmd *cobra.Command, req *curl.Request, noColor bool) error {
	validator, err := schema.NewValidator(parseSchemaFlag)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		os.Exit(ExitConfigError)
	}

	results, err := validator.ValidateRequest(req)
	if err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}

	stderr := cmd.ErrOrStderr()
	for i, result := range results {
		switch {
		case result.Skipped:
			fmt.Fprintf(stderr, "payload %d: skipped (not JSON)\n", i+1)
		case result.Valid:
			fmt.Fprintf(stderr, "payload %d: valid\n", i+1)
		default:
			fmt.Fprintf(stderr, "payload %d: invalid\n", i+1)
			for _, desc := range result.Errors {
				fmt.Fprintf(stderr, "  - %s\n", desc)
			}
		}
	}

	if !schema.AllValid(results) {
		os.Exit(ExitValidationFailure)
	}
	return nil
}

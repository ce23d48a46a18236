package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/uncurl/uncurl/packages/convert"
)

var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Convert a file of curl commands to a .http file",
	Long: `Convert a file containing curl commands (one per line, backslash
continuations allowed) into a .http request file.

Examples:
  uncurl convert commands.txt
  uncurl convert commands.txt -o requests.http
  uncurl convert commands.txt -o requests.http --watch
  uncurl convert commands.txt --no-names`,
	Args: cobra.ExactArgs(1),
	RunE: convertCommand,
}

const (
	// WatchDebounceDelay is the debounce delay for file watch events
	WatchDebounceDelay = 300 * time.Millisecond
)

var (
	convertOutputFlag  string
	convertWatchFlag   bool
	convertNoNamesFlag bool
)

func init() {
	convertCmd.Flags().StringVarP(&convertOutputFlag, "output", "o", "", "Output file path (default: stdout)")
	convertCmd.Flags().BoolVarP(&convertWatchFlag, "watch", "w", false, "Watch the input file for changes and re-convert")
	convertCmd.Flags().BoolVar(&convertNoNamesFlag, "no-names", false, "Don't generate @name annotations")
}

func convertCommand(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	var opts []convert.Option
	if convertNoNamesFlag {
		opts = append(opts, convert.WithNames(false))
	}
	converter := convert.NewConverter(opts...)

	if err := convertOnce(cmd, converter, inputPath); err != nil {
		return err
	}

	if !convertWatchFlag {
		return nil
	}
	return watchAndConvert(cmd, converter, inputPath)
}

func convertOnce(cmd *cobra.Command, converter *convert.Converter, inputPath string) error {
	content, err := converter.ConvertFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to convert %s: %w", inputPath, err)
	}

	if convertOutputFlag == "" {
		fmt.Fprint(cmd.OutOrStdout(), content)
		return nil
	}

	if dir := filepath.Dir(convertOutputFlag); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	if err := os.WriteFile(convertOutputFlag, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Converted %s to %s\n", inputPath, convertOutputFlag)
	return nil
}

func watchAndConvert(cmd *cobra.Command, converter *convert.Converter, inputPath string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: editors often replace the file on save, which
	// drops watches registered on the file itself.
	if err := watcher.Add(filepath.Dir(inputPath)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", inputPath, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nWatching %s for changes... (press Ctrl+C to stop)\n\n", inputPath)

	absInput, err := filepath.Abs(inputPath)
	if err != nil {
		return err
	}

	// Debounce timer for rapid file changes
	var debounceTimer *time.Timer

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			changed, err := filepath.Abs(event.Name)
			if err != nil || changed != absInput {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(WatchDebounceDelay, func() {
				fmt.Fprintf(cmd.OutOrStdout(), "\nFile changed: %s\nRe-converting...\n\n", event.Name)
				if err := convertOnce(cmd, converter, inputPath); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
				}
			})

		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Watch error: %v\n", watchErr)
		}
	}
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/uncurl/uncurl/packages/config"
	"github.com/uncurl/uncurl/packages/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect the parse history",
	Long: `Inspect and manage the history of parses recorded with 'parse --save'.

Examples:
  uncurl history list
  uncurl history list --limit 10
  uncurl history clear
  uncurl history list --db /tmp/history.db`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded parses, most recent first",
	RunE:  historyListCommand,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded parses",
	RunE:  historyClearCommand,
}

var (
	historyDBFlag    string
	historyLimitFlag int
)

func init() {
	historyCmd.PersistentFlags().StringVar(&historyDBFlag, "db", "", "Path to the history database (default: config historyPath)")
	historyListCmd.Flags().IntVar(&historyLimitFlag, "limit", 20, "Maximum number of entries to show (0 for all)")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyClearCmd)
}

func openHistoryStore() (*history.Store, error) {
	path := historyDBFlag
	if path == "" {
		cfg, err := config.LoadConfig("")
		if err != nil {
			return nil, err
		}
		path = cfg.GetHistoryPath()
	}
	return history.Open(path)
}

func historyListCommand(cmd *cobra.Command, args []string) error {
	store, err := openHistoryStore()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		os.Exit(ExitConfigError)
	}
	defer store.Close()

	entries, err := store.List(historyLimitFlag)
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}

	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No parses recorded yet. Use 'uncurl parse --save' to record one.")
		return nil
	}

	for _, entry := range entries {
		method := entry.Method
		if method == "" {
			method = "-"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %-7s %s (%d tokens)\n",
			entry.CreatedAt.Local().Format("2006-01-02 15:04:05"), method, entry.URL, entry.TokenCount)
		fmt.Fprintf(cmd.OutOrStdout(), "    %s\n", entry.Command)
	}
	return nil
}

func historyClearCommand(cmd *cobra.Command, args []string) error {
	store, err := openHistoryStore()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		os.Exit(ExitConfigError)
	}
	defer store.Close()

	if err := store.Clear(); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
	return nil
}

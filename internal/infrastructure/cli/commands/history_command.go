package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/doeshing/uniterm/internal/domain"
	"github.com/doeshing/uniterm/internal/infrastructure/cli/helpers"
	"github.com/doeshing/uniterm/internal/ports"
)

// NewHistoryCommand creates the history command with all subcommands
func NewHistoryCommand(rt *Runtime) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect the persistent transcript",
	}

	historyCmd.AddCommand(
		newHistoryListCommand(rt),
		newHistorySearchCommand(rt),
		newHistoryClearCommand(rt),
		newHistoryExportCommand(rt),
		newHistoryStatsCommand(rt),
	)

	return historyCmd
}

// newHistoryListCommand creates the 'history list' subcommand
func newHistoryListCommand(rt *Runtime) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent transcript entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := rt.Container(cmd.Context())
			if err != nil {
				return err
			}
			return listTranscriptEntries(cmd.OutOrStdout(), container.TranscriptStore, limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", domain.DefaultTranscriptLimit, "Max entries to show")
	return cmd
}

// newHistorySearchCommand creates the 'history search' subcommand
func newHistorySearchCommand(rt *Runtime) *cobra.Command {
	var searchLimit int

	cmd := &cobra.Command{
		Use:   "search <term>",
		Short: "Search the transcript for a keyword",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.TrimSpace(strings.Join(args, " "))
			if query == "" {
				return errors.New(ErrSearchTermRequired)
			}
			container, err := rt.Container(cmd.Context())
			if err != nil {
				return err
			}
			return searchTranscriptEntries(cmd.OutOrStdout(), container.TranscriptStore, query, searchLimit)
		},
	}

	cmd.Flags().IntVar(&searchLimit, "limit", domain.DefaultTranscriptSearchLimit, "Limit search results")
	return cmd
}

// newHistoryClearCommand creates the 'history clear' subcommand
func newHistoryClearCommand(rt *Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear the transcript store",
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := rt.Container(cmd.Context())
			if err != nil {
				return err
			}
			return clearTranscript(container.TranscriptStore)
		},
	}
}

// newHistoryExportCommand creates the 'history export' subcommand
func newHistoryExportCommand(rt *Runtime) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export <path>",
		Short: "Export the transcript to a JSONL file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "json" {
				return fmt.Errorf("unsupported export format %q", format)
			}
			container, err := rt.Container(cmd.Context())
			if err != nil {
				return err
			}
			return exportTranscript(container.TranscriptStore, args[0])
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", "Export format (json)")
	return cmd
}

// newHistoryStatsCommand creates the 'history stats' subcommand
func newHistoryStatsCommand(rt *Runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show totals, dialect mix, and success rate",
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := rt.Container(cmd.Context())
			if err != nil {
				return err
			}
			return showTranscriptStats(cmd.OutOrStdout(), container.TranscriptStore)
		},
	}
}

// listTranscriptEntries lists recent transcript entries
func listTranscriptEntries(out io.Writer, store ports.TranscriptRepository, limit int) error {
	if store == nil {
		return errors.New(ErrTranscriptUnavailable)
	}

	records, err := store.Records(limit, "")
	if err != nil {
		return fmt.Errorf("failed to retrieve transcript records: %w", err)
	}

	if len(records) == 0 {
		fmt.Fprintln(out, MsgNoTranscriptRecorded)
		return nil
	}

	for _, rec := range records {
		fmt.Fprintf(out, "%s | %s | %s | %s\n",
			rec.Timestamp.Format(domain.TimestampFormat),
			rec.RiskLevel,
			rec.Raw,
			rec.Command)
	}

	return nil
}

// searchTranscriptEntries searches the transcript for a keyword
func searchTranscriptEntries(out io.Writer, store ports.TranscriptRepository, query string, limit int) error {
	if store == nil {
		return errors.New(ErrTranscriptUnavailable)
	}

	records, err := store.Records(limit, query)
	if err != nil {
		return fmt.Errorf("failed to search transcript: %w", err)
	}

	for _, rec := range records {
		fmt.Fprintf(out, "%s | %s | %s\n",
			rec.Timestamp.Format(domain.TimestampFormat),
			rec.Raw,
			rec.Command)
	}

	return nil
}

// clearTranscript clears the transcript store
func clearTranscript(store ports.TranscriptRepository) error {
	if store == nil {
		return errors.New(ErrTranscriptUnavailable)
	}

	if err := store.Clear(); err != nil {
		return fmt.Errorf("failed to clear transcript: %w", err)
	}

	return nil
}

// exportTranscript exports the transcript to a JSONL file
func exportTranscript(store ports.TranscriptRepository, path string) error {
	if store == nil {
		return errors.New(ErrTranscriptUnavailable)
	}

	if err := store.ExportJSON(path); err != nil {
		return fmt.Errorf("failed to export transcript to %s: %w", path, err)
	}

	return nil
}

// showTranscriptStats displays totals, dialect mix, and success rate
func showTranscriptStats(out io.Writer, store ports.TranscriptRepository) error {
	if store == nil {
		return errors.New(ErrTranscriptUnavailable)
	}

	records, err := store.Records(domain.MaxTranscriptAnalysisRecords, "")
	if err != nil {
		return fmt.Errorf("failed to retrieve transcript for analysis: %w", err)
	}

	if len(records) == 0 {
		fmt.Fprintln(out, MsgNoTranscriptRecorded)
		return nil
	}

	stats := analyzeTranscriptRecords(records)
	displayTranscriptStatistics(out, stats, records, store.Path())

	return nil
}

// transcriptStatistics holds analyzed transcript statistics
type transcriptStatistics struct {
	executed   int
	successful int
	verbFreq   map[string]int
	riskCounts map[domain.RiskLevel]int
}

// analyzeTranscriptRecords analyzes transcript records and computes statistics
func analyzeTranscriptRecords(records []domain.TranscriptRecord) transcriptStatistics {
	stats := transcriptStatistics{
		verbFreq:   make(map[string]int),
		riskCounts: make(map[domain.RiskLevel]int),
	}

	for _, rec := range records {
		if rec.Executed {
			stats.executed++
			if rec.Success {
				stats.successful++
			}
		}
		if verb := domain.SplitVerb(rec.Raw).Verb; verb != "" {
			stats.verbFreq[verb]++
		}
		stats.riskCounts[rec.RiskLevel]++
	}

	return stats
}

// displayTranscriptStatistics displays formatted transcript statistics
func displayTranscriptStatistics(out io.Writer, stats transcriptStatistics, records []domain.TranscriptRecord, storePath string) {
	// Overall statistics; records arrive newest-first
	fmt.Fprintf(out, "Entries analyzed: %d\nExecuted: %d\nSuccess rate: %.1f%%\n",
		len(records),
		stats.executed,
		helpers.CalculateSuccessRate(stats.successful, stats.executed))
	fmt.Fprintf(out, "Newest entry: %s\n", humanize.Time(records[0].Timestamp))

	if info, err := os.Stat(storePath); err == nil {
		fmt.Fprintf(out, "Store size: %s (%s)\n",
			humanize.Bytes(uint64(info.Size())),
			filepath.Base(storePath))
	}

	// Dialect mix
	mix := helpers.CalculateDialectMix(records)
	fmt.Fprintln(out, "Dialect mix:")
	for _, key := range helpers.SortedKeys(mix) {
		fmt.Fprintf(out, "  %s: %d\n", key, mix[key])
	}

	// Top verbs
	fmt.Fprintln(out, "Top verbs:")
	topVerbs := helpers.CalculateTopVerbs(stats.verbFreq, 5)
	for _, stat := range topVerbs {
		fmt.Fprintf(out, "  %s (%d)\n", stat.Verb, stat.Count)
	}

	// Risk distribution
	fmt.Fprintln(out, "Risk distribution:")
	for _, level := range []domain.RiskLevel{domain.RiskSafe, domain.RiskLow, domain.RiskMedium, domain.RiskHigh, domain.RiskCritical} {
		if count := stats.riskCounts[level]; count > 0 {
			fmt.Fprintf(out, "  %s: %d\n", level, count)
		}
	}

	// Undo hints
	hints := helpers.DeriveUndoHints(records)
	if len(hints) > 0 {
		fmt.Fprintln(out, "Undo hints:")
		for _, hint := range hints {
			fmt.Fprintf(out, "  - %s\n", hint)
		}
	}
}

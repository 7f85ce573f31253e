// internal/platform/ui/table.go
package ui

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"mirage/internal/core/domain"
)

// PrintTable writes a readable result table to stdout.
func PrintTable(result *domain.RunResult) error {
	return WriteTable(os.Stdout, result)
}

// WriteTable writes a readable result table to w.
func WriteTable(w io.Writer, result *domain.RunResult) error {
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Mirage Run Results ===\n")
	fmt.Fprintf(tw, "Run:\t%s\n", result.ID)
	fmt.Fprintf(tw, "Target:\t%s (%s)\n", result.Target.Domain, result.Target.Company)
	fmt.Fprintf(tw, "Tier:\t%s\n", result.Metadata.Tier)
	fmt.Fprintf(tw, "Duration:\t%s\n", result.Metadata.Duration)
	fmt.Fprintf(tw, "Records:\t%d unique (%d raw)\n\n", result.Metadata.UniqueRecords, result.Metadata.RawRecords)

	if len(result.Records) > 0 {
		fmt.Fprintln(tw, "TYPE\tVALUE\tSOURCES\tCONFIDENCE")
		fmt.Fprintln(tw, "----\t-----\t-------\t----------")
		for _, r := range result.Records {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%.2f\n",
				r.Type, r.Value, strings.Join(r.Sources, ","), r.Confidence)
		}
	} else {
		fmt.Fprintln(tw, "No records found.")
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush table: %w", err)
	}

	if len(result.Warnings) > 0 {
		fmt.Fprintf(w, "\nWarnings (%d):\n", len(result.Warnings))
		for i, warning := range result.Warnings {
			fmt.Fprintf(w, "  %d. [%s] %s\n", i+1, warning.Module, warning.Message)
		}
	}

	if len(result.Errors) > 0 {
		fmt.Fprintf(w, "\nErrors (%d):\n", len(result.Errors))
		for i, runErr := range result.Errors {
			fmt.Fprintf(w, "  %d. [%s] %s\n", i+1, runErr.Module, runErr.Message)
		}
	}

	if len(result.Records) > 0 {
		fmt.Fprintln(w, "\nRecords by type:")
		stats := result.Stats()
		types := make([]string, 0, len(stats))
		for t := range stats {
			types = append(types, t)
		}
		sort.Strings(types)
		for _, t := range types {
			fmt.Fprintf(w, "  - %s: %d\n", t, stats[t])
		}
	}

	fmt.Fprintln(w)
	return nil
}

package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"textstats/internal/adapter/fs"
)

var (
	linesSource sourceFlags
	linesLimit  int
	linesNumber bool
)

var linesCmd = &cobra.Command{
	Use:   "lines [file]",
	Short: "Print trimmed lines",
	Long: `Print the lines of a file or literal text with surrounding whitespace
removed. Files are streamed, so --limit stops reading early.

Examples:
  textstats lines notes.txt --limit 20 --number
  textstats lines --text "  one
two  "`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLines,
}

func init() {
	rootCmd.AddCommand(linesCmd)
	linesSource.register(linesCmd)
	linesCmd.Flags().IntVar(&linesLimit, "limit", 0, "stop after N lines (0 = all)")
	linesCmd.Flags().BoolVar(&linesNumber, "number", false, "prefix each line with its number")
}

func runLines(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	src, err := linesSource.resolve(cmd, args)
	if err != nil {
		return err
	}

	it, err := fs.Lines(src)
	if err != nil {
		return err
	}
	defer it.Close()

	out := cmd.OutOrStdout()
	asJSON := resolveFormat(out, cfg.Output.Format) == "json"

	var collected []string
	n := 0
	for line, err := range it.All() {
		if err != nil {
			return err
		}
		n++
		switch {
		case asJSON:
			collected = append(collected, line)
		case linesNumber:
			fmt.Fprintf(out, "%6d  %s\n", n, line)
		default:
			fmt.Fprintln(out, line)
		}
		if linesLimit > 0 && n >= linesLimit {
			break
		}
	}
	logger.Debug("lines done", "source", src.Kind.String(), "count", n)

	if asJSON {
		if collected == nil {
			collected = []string{}
		}
		data, err := json.MarshalIndent(collected, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
	}
	return nil
}

package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"textstats/internal/adapter/analyzer"
	"textstats/internal/usecase"
)

var uniqueSource sourceFlags

var uniqueCmd = &cobra.Command{
	Use:   "unique [file]",
	Short: "List the distinct words",
	Long: `List every distinct word in a file or literal text, sorted.

Examples:
  textstats unique book.txt
  textstats unique --text "a b a b" -o json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runUnique,
}

func init() {
	rootCmd.AddCommand(uniqueCmd)
	uniqueSource.register(uniqueCmd)
}

func runUnique(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	src, err := uniqueSource.resolve(cmd, args)
	if err != nil {
		return err
	}

	statsUC := usecase.NewStatsUseCase(analyzer.NewTokenizer())
	set, err := statsUC.UniqueTokens(src)
	if err != nil {
		return fmt.Errorf("unique words failed: %w", err)
	}

	words := make([]string, 0, len(set))
	for w := range set {
		words = append(words, w)
	}
	sort.Strings(words)

	rows := make([][]string, 0, len(words))
	for _, w := range words {
		rows = append(rows, []string{w})
	}

	return render(cmd.OutOrStdout(), cfg.Output.Format, report{
		payload: words,
		headers: []string{"Word"},
		rows:    rows,
	})
}

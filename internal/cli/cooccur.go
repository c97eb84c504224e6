package cli

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"textstats/internal/adapter/analyzer"
	"textstats/internal/usecase"
)

var (
	cooccurSource sourceFlags
	cooccurWindow int
	cooccurTop    int
)

var cooccurCmd = &cobra.Command{
	Use:   "cooccur [file]",
	Short: "Count ordered word pairs within a window",
	Long: `Count how often word B follows word A at a distance of 1 up to
window-1 positions. A window of 1 produces no pairs.

Examples:
  textstats cooccur --text "a b a b"
  textstats cooccur book.txt --window 3 --top 10`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCooccur,
}

func init() {
	rootCmd.AddCommand(cooccurCmd)
	cooccurSource.register(cooccurCmd)
	cooccurCmd.Flags().IntVarP(&cooccurWindow, "window", "w", 0, "window size (default from config)")
	cooccurCmd.Flags().IntVarP(&cooccurTop, "top", "n", -1, "show only the N most frequent pairs (default from config, 0 = all)")
}

func runCooccur(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	src, err := cooccurSource.resolve(cmd, args)
	if err != nil {
		return err
	}

	window := cfg.Analysis.Window
	if cmd.Flags().Changed("window") {
		window = cooccurWindow
	}

	statsUC := usecase.NewStatsUseCase(analyzer.NewTokenizer())
	table, err := statsUC.Cooccurrence(src, window)
	if err != nil {
		return fmt.Errorf("co-occurrence failed: %w", err)
	}
	logger.Debug("co-occurrence computed", "source", src.Kind.String(), "window", window, "pairs", len(table))

	top := cfg.Analysis.TopN
	if cooccurTop >= 0 {
		top = cooccurTop
	}
	entries := table.Top(top)

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.Pair.First, e.Pair.Second, strconv.Itoa(e.Count)})
	}

	return render(cmd.OutOrStdout(), cfg.Output.Format, report{
		payload: entries,
		headers: []string{"First", "Second", "Count"},
		rows:    rows,
		aligns:  []text.Align{text.AlignLeft, text.AlignLeft, text.AlignRight},
	})
}

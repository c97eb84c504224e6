package cli

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"textstats/internal/adapter/analyzer"
	"textstats/internal/domain"
	"textstats/internal/usecase"
)

var (
	freqSource      sourceFlags
	freqTop         int
	freqNoStopwords bool
)

var freqCmd = &cobra.Command{
	Use:   "freq [file]",
	Short: "Count how often each word occurs",
	Long: `Count word frequencies in a file or in literal text. Words are
lowercased runs of letters, numbers and underscores.

Examples:
  textstats freq book.txt
  textstats freq book.txt --top 5 --no-stopwords
  textstats freq --text "The cat sat on the mat."
  cat notes.txt | textstats freq -`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFreq,
}

func init() {
	rootCmd.AddCommand(freqCmd)
	freqSource.register(freqCmd)
	freqCmd.Flags().IntVarP(&freqTop, "top", "n", -1, "show only the N most frequent words (default from config, 0 = all)")
	freqCmd.Flags().BoolVar(&freqNoStopwords, "no-stopwords", false, "drop common English stopwords")
}

func runFreq(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	src, err := freqSource.resolve(cmd, args)
	if err != nil {
		return err
	}

	var keep func(string) bool
	if freqNoStopwords || cfg.Analysis.DropStopwords {
		keep = analyzer.NotStopword
	}

	statsUC := usecase.NewStatsUseCase(analyzer.NewTokenizer())
	freq, err := statsUC.Frequency(src, keep)
	if err != nil {
		return fmt.Errorf("frequency failed: %w", err)
	}
	logger.Debug("frequency computed", "source", src.Kind.String(), "distinct", len(freq), "total", freq.Total())

	top := cfg.Analysis.TopN
	if freqTop >= 0 {
		top = freqTop
	}
	entries := freq.Top(top)

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.Token, strconv.Itoa(e.Count)})
	}

	return render(cmd.OutOrStdout(), cfg.Output.Format, report{
		payload: entries,
		headers: []string{"Word", "Count"},
		rows:    rows,
		footer:  frequencyFooter(len(entries), freq),
		aligns:  []text.Align{text.AlignLeft, text.AlignRight},
	})
}

// frequencyFooter summarizes the whole table under a possibly truncated
// listing: how many words are shown and the summed count of all of them.
func frequencyFooter(shown int, freq domain.FrequencyTable) []string {
	label := fmt.Sprintf("%d words", len(freq))
	if shown < len(freq) {
		label = fmt.Sprintf("top %d of %d words", shown, len(freq))
	}
	return []string{label, strconv.Itoa(freq.Total())}
}

package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"textstats/internal/adapter/analyzer"
	"textstats/internal/adapter/fs"
	"textstats/internal/usecase"
)

var (
	corpusTop         int
	corpusNoStopwords bool
)

var corpusCmd = &cobra.Command{
	Use:   "corpus [dir]",
	Short: "Aggregate word frequencies over a directory",
	Long: `Walk a directory, pick files using the configured include/exclude
globs, and sum their word frequencies. Unreadable files are reported and
skipped.

Examples:
  textstats corpus .
  textstats corpus ./docs --top 50 --no-stopwords`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCorpus,
}

func init() {
	rootCmd.AddCommand(corpusCmd)
	corpusCmd.Flags().IntVarP(&corpusTop, "top", "n", -1, "show only the N most frequent words (default from config, 0 = all)")
	corpusCmd.Flags().BoolVar(&corpusNoStopwords, "no-stopwords", false, "drop common English stopwords")
}

func runCorpus(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	path := rootDir
	if len(args) > 0 {
		var err error
		path, err = filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("invalid path: %w", err)
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("path does not exist: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", path)
	}

	walker := fs.NewWalker(cfg.Corpus.Includes, cfg.Corpus.Excludes)
	statsUC := usecase.NewStatsUseCase(analyzer.NewTokenizer())
	corpusUC := usecase.NewCorpusUseCase(walker, statsUC, logger)

	var keep func(string) bool
	if corpusNoStopwords || cfg.Analysis.DropStopwords {
		keep = analyzer.NotStopword
	}

	var bar *progressbar.ProgressBar
	showBar := cfg.Chunking.ShowProgress && isTerminal(os.Stderr)

	progressCallback := func(processed, total int, currentFile string) {
		if !showBar {
			return
		}
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("[cyan]Reading[reset]"),
				progressbar.OptionOnCompletion(func() {
					fmt.Fprintln(os.Stderr)
				}),
			)
		}
		bar.Set(processed)
	}

	result, err := corpusUC.Frequency(path, keep, progressCallback)
	if err != nil {
		return fmt.Errorf("corpus scan failed: %w", err)
	}

	logger.Info("corpus complete",
		"root", path,
		"files_read", result.FilesRead,
		"files_failed", result.FilesFailed,
		"tokens", result.TotalTokens,
	)

	top := cfg.Analysis.TopN
	if corpusTop >= 0 {
		top = corpusTop
	}
	entries := result.Table.Top(top)

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.Token, strconv.Itoa(e.Count)})
	}

	return render(cmd.OutOrStdout(), cfg.Output.Format, report{
		payload: entries,
		headers: []string{"Word", "Count"},
		rows:    rows,
		footer:  frequencyFooter(len(entries), result.Table),
		aligns:  []text.Align{text.AlignLeft, text.AlignRight},
	})
}

package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"textstats/internal/adapter/analyzer"
	"textstats/internal/adapter/fs"
	"textstats/internal/usecase"
)

var (
	scanSize       int
	scanNoProgress bool
)

var scanCmd = &cobra.Command{
	Use:   "scan <file>",
	Short: "Count tokens chunk by chunk in a large file",
	Long: `Stream a large file in chunks of N lines and count the tokens and
distinct words of each chunk. Results are printed once the whole file has
been read; any failure discards them.

Examples:
  textstats scan huge.log
  textstats scan huge.log --size 10000 -o json`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().IntVarP(&scanSize, "size", "s", 0, "lines per chunk (default from config)")
	scanCmd.Flags().BoolVar(&scanNoProgress, "no-progress", false, "disable the progress bar")
}

type chunkStats struct {
	Index    int `json:"index"`
	Lines    int `json:"lines"`
	Bytes    int `json:"bytes"`
	Tokens   int `json:"tokens"`
	Distinct int `json:"distinct"`
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	path := args[0]

	size := cfg.Chunking.Size
	if cmd.Flags().Changed("size") {
		size = scanSize
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	var bar *progressbar.ProgressBar
	if cfg.Chunking.ShowProgress && !scanNoProgress && isTerminal(os.Stderr) {
		bar = progressbar.NewOptions64(info.Size(),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionShowBytes(true),
			progressbar.OptionSetWidth(40),
			progressbar.OptionSetDescription("[cyan]Scanning[reset]"),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]=[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintln(os.Stderr)
			}),
		)
	}

	tokenizer := analyzer.NewTokenizer()
	index := 0
	results, err := usecase.ApplyToChunks(path, func(chunk string) (chunkStats, error) {
		tokens := tokenizer.Tokenize(chunk)
		distinct := make(map[string]struct{}, len(tokens))
		for _, t := range tokens {
			distinct[t] = struct{}{}
		}
		st := chunkStats{
			Index:    index,
			Lines:    fs.CountLines(chunk),
			Bytes:    len(chunk),
			Tokens:   len(tokens),
			Distinct: len(distinct),
		}
		index++
		if bar != nil {
			bar.Add(st.Bytes)
		}
		logger.Debug("chunk scanned", "index", st.Index, "tokens", st.Tokens)
		return st, nil
	}, size)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	var totalLines, totalTokens, totalBytes int
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		totalLines += r.Lines
		totalTokens += r.Tokens
		totalBytes += r.Bytes
		rows = append(rows, []string{
			strconv.Itoa(r.Index),
			strconv.Itoa(r.Lines),
			humanize.Bytes(uint64(r.Bytes)),
			strconv.Itoa(r.Tokens),
			strconv.Itoa(r.Distinct),
		})
	}
	logger.Info("scan complete",
		"path", path,
		"chunks", len(results),
		"size", humanize.Bytes(uint64(totalBytes)),
		"tokens", humanize.Comma(int64(totalTokens)),
	)

	return render(cmd.OutOrStdout(), cfg.Output.Format, report{
		payload: results,
		headers: []string{"Chunk", "Lines", "Size", "Tokens", "Distinct"},
		rows:    rows,
		footer: []string{
			fmt.Sprintf("%d chunks", len(results)),
			strconv.Itoa(totalLines),
			humanize.Bytes(uint64(totalBytes)),
			strconv.Itoa(totalTokens),
			"",
		},
		aligns: []text.Align{text.AlignRight, text.AlignRight, text.AlignRight, text.AlignRight, text.AlignRight},
	})
}

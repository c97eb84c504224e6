package cli

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"textstats/internal/adapter/fs"
)

var chunksSize int

var chunksCmd = &cobra.Command{
	Use:   "chunks <file>",
	Short: "Describe how a file splits into line chunks",
	Long: `Walk a file in chunks of N lines and report each chunk's line count
and size. Only one chunk is held in memory at a time.

Examples:
  textstats chunks huge.log
  textstats chunks huge.log --size 250`,
	Args: cobra.ExactArgs(1),
	RunE: runChunks,
}

func init() {
	rootCmd.AddCommand(chunksCmd)
	chunksCmd.Flags().IntVarP(&chunksSize, "size", "s", 0, "lines per chunk (default from config)")
}

type chunkInfo struct {
	Index int `json:"index"`
	Lines int `json:"lines"`
	Bytes int `json:"bytes"`
}

func runChunks(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	path := args[0]

	size := cfg.Chunking.Size
	if cmd.Flags().Changed("size") {
		size = chunksSize
	}

	it, err := fs.Chunks(path, size)
	if err != nil {
		return err
	}
	defer it.Close()

	var infos []chunkInfo
	for it.Next() {
		info := chunkInfo{Index: it.Index(), Lines: it.Lines(), Bytes: len(it.Text())}
		logger.Debug("chunk read", "path", path, "index", info.Index, "lines", info.Lines)
		infos = append(infos, info)
	}
	if err := it.Err(); err != nil {
		return fmt.Errorf("chunking failed: %w", err)
	}
	if infos == nil {
		infos = []chunkInfo{}
	}

	rows := make([][]string, 0, len(infos))
	for _, c := range infos {
		rows = append(rows, []string{
			strconv.Itoa(c.Index),
			strconv.Itoa(c.Lines),
			humanize.Bytes(uint64(c.Bytes)),
		})
	}

	return render(cmd.OutOrStdout(), cfg.Output.Format, report{
		payload: infos,
		headers: []string{"Chunk", "Lines", "Size"},
		rows:    rows,
		aligns:  []text.Align{text.AlignRight, text.AlignRight, text.AlignRight},
	})
}

package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"textstats/config"
	"textstats/internal/domain"
	"textstats/internal/logging"
)

var (
	cfgFile      string
	cfg          *config.Config
	rootDir      string
	logLevel     string
	outputFormat string
	logger       *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "textstats",
	Short: "Word statistics for text and large files",
	Long: `textstats counts word frequencies, unique words and windowed word
co-occurrences in literal text or files, and walks large files in
fixed-size line chunks.

Example usage:
  textstats freq book.txt --top 10        # Most frequent words
  textstats cooccur --text "a b a b"      # Adjacent word pairs
  textstats scan huge.log --size 5000     # Per-chunk token counts`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := config.ApplyEnv(cfg, rootDir); err != nil {
			return fmt.Errorf("failed to apply environment: %w", err)
		}

		if logLevel != "" {
			cfg.Logging.Level = logLevel
		}
		if outputFormat != "" {
			cfg.Output.Format = outputFormat
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		logger, err = logging.New(cmd.ErrOrStderr(), logging.Options{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
		})
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./textstats.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "working directory for config and .env lookup (default is current directory)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "output format: auto, table, tsv, json")
}

func GetConfig() *config.Config {
	return cfg
}

// sourceFlags holds the --text flag shared by commands that accept either
// literal text or a file argument.
type sourceFlags struct {
	text string
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.text, "text", "t", "", "analyze this literal text instead of a file")
}

// resolve picks the source for a command invocation. "-" reads stdin as
// literal text.
func (f *sourceFlags) resolve(cmd *cobra.Command, args []string) (domain.Source, error) {
	hasText := cmd.Flags().Changed("text")
	switch {
	case hasText && len(args) > 0:
		return domain.Source{}, fmt.Errorf("pass either a file or --text, not both")
	case hasText:
		return domain.Text(f.text), nil
	case len(args) == 1 && args[0] == "-":
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return domain.Source{}, fmt.Errorf("failed to read stdin: %w", err)
		}
		return domain.Text(string(data)), nil
	case len(args) == 1:
		return domain.File(args[0]), nil
	default:
		return domain.Source{}, fmt.Errorf("a file argument or --text is required")
	}
}

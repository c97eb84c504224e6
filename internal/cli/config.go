package cli

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"textstats/config"
)

var configInitForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the textstats configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default textstats.yaml",
	Long: `Write the default configuration to textstats.yaml in the working
directory, or to the path given with --config. An existing file is left
alone unless --force is set.

Examples:
  textstats config init
  textstats config init --config .textstats/config.yaml --force`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "overwrite an existing config file")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := cfgFile
	if path == "" {
		path = filepath.Join(rootDir, "textstats.yaml")
	}

	_, err := os.Stat(path)
	switch {
	case err == nil && !configInitForce:
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	case err != nil && !errors.Is(err, iofs.ErrNotExist):
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if err := config.DefaultConfig().Save(path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	logger.Info("config written", "path", path)
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

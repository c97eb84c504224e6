package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the textstats tool.
type Config struct {
	Analysis AnalysisConfig `yaml:"analysis" toml:"analysis"`
	Chunking ChunkingConfig `yaml:"chunking" toml:"chunking"`
	Corpus   CorpusConfig   `yaml:"corpus" toml:"corpus"`
	Output   OutputConfig   `yaml:"output" toml:"output"`
	Logging  LoggingConfig  `yaml:"logging" toml:"logging"`
}

// AnalysisConfig holds token statistics settings.
type AnalysisConfig struct {
	Window        int  `yaml:"window" toml:"window"`
	TopN          int  `yaml:"top_n" toml:"top_n"` // 0 = show everything
	DropStopwords bool `yaml:"drop_stopwords" toml:"drop_stopwords"`
}

// ChunkingConfig holds large-file chunking settings.
type ChunkingConfig struct {
	Size         int  `yaml:"size" toml:"size"` // lines per chunk
	ShowProgress bool `yaml:"show_progress" toml:"show_progress"`
}

// CorpusConfig holds directory scan patterns.
type CorpusConfig struct {
	Includes []string `yaml:"includes" toml:"includes"`
	Excludes []string `yaml:"excludes" toml:"excludes"`
}

// OutputConfig holds result rendering settings.
type OutputConfig struct {
	Format string `yaml:"format" toml:"format"` // "auto", "table", "tsv", "json"
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"` // "console" or "json"
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			Window:        2,
			TopN:          20,
			DropStopwords: false,
		},
		Chunking: ChunkingConfig{
			Size:         1000,
			ShowProgress: true,
		},
		Corpus: CorpusConfig{
			Includes: []string{"**/*.txt", "**/*.md", "**/*.rst", "**/*.log"},
			Excludes: []string{"**/.git/**", "**/node_modules/**", "**/vendor/**", "**/.textstats/**"},
		},
		Output: OutputConfig{
			Format: "auto",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML or TOML file. The format is picked
// from the extension. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	default:
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory. It looks for
// textstats.yaml, textstats.toml and .textstats/config.yaml in that order.
func LoadFromDir(dir string) (*Config, error) {
	candidates := []string{
		filepath.Join(dir, "textstats.yaml"),
		filepath.Join(dir, "textstats.toml"),
		filepath.Join(dir, ".textstats", "config.yaml"),
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}

	return DefaultConfig(), nil
}

// ApplyEnv loads a .env file from dir (if present) and applies TEXTSTATS_*
// overrides from the environment.
func ApplyEnv(cfg *Config, dir string) error {
	envPath := filepath.Join(dir, ".env")
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			return fmt.Errorf("failed to load %s: %w", envPath, err)
		}
	}

	if v := os.Getenv("TEXTSTATS_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("TEXTSTATS_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("TEXTSTATS_OUTPUT"); v != "" {
		cfg.Output.Format = v
	}
	if err := envInt("TEXTSTATS_WINDOW", &cfg.Analysis.Window); err != nil {
		return err
	}
	if err := envInt("TEXTSTATS_CHUNK_SIZE", &cfg.Chunking.Size); err != nil {
		return err
	}
	return nil
}

func envInt(key string, dst *int) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fmt.Errorf("%s: invalid integer %q", key, v)
	}
	*dst = n
	return nil
}

// Validate checks that the configuration values are usable.
func (c *Config) Validate() error {
	if c.Analysis.Window < 1 {
		return fmt.Errorf("analysis.window must be at least 1, got %d", c.Analysis.Window)
	}
	if c.Analysis.TopN < 0 {
		return fmt.Errorf("analysis.top_n must not be negative, got %d", c.Analysis.TopN)
	}
	if c.Chunking.Size < 1 {
		return fmt.Errorf("chunking.size must be at least 1, got %d", c.Chunking.Size)
	}
	switch c.Output.Format {
	case "auto", "table", "tsv", "json":
	default:
		return fmt.Errorf("output.format: unsupported value %q", c.Output.Format)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch strings.ToLower(strings.TrimSpace(c.Logging.Level)) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
	}
	return os.WriteFile(path, data, 0644)
}

// Package config loads the shared tool configuration: where the three source
// catalogs live, how each file is parsed, and the merge policy knobs.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/tidewater-goods/catalogtools/models"
)

// SourceFile describes one input catalog.
type SourceFile struct {
	Path string `mapstructure:"path"`
	// HeaderRow is the 1-based physical row carrying the column names.
	// The POS export puts a banner row above its header, so it defaults
	// to 2; the vendor catalogs default to 1.
	HeaderRow int `mapstructure:"header_row"`
}

// MergeConfig holds merge policy.
type MergeConfig struct {
	// CategoryPrecedence lists sources consulted for Categories, in
	// order. The default treats the web catalog as curator of record and
	// never consults the legacy catalog; this stays configurable because
	// the asymmetry is policy, not a property of the data.
	CategoryPrecedence []string `mapstructure:"category_precedence"`
	OutputDir          string   `mapstructure:"output_dir"`
}

// ReviewConfig holds review-report knobs.
type ReviewConfig struct {
	SearchTerms        []string `mapstructure:"search_terms"`
	HighValueThreshold float64  `mapstructure:"high_value_threshold"`
	TopCategories      int      `mapstructure:"top_categories"`
}

// Config is the full tool configuration.
type Config struct {
	POS    SourceFile   `mapstructure:"pos"`
	Web    SourceFile   `mapstructure:"web"`
	Legacy SourceFile   `mapstructure:"legacy"`
	Merge  MergeConfig  `mapstructure:"merge"`
	Review ReviewConfig `mapstructure:"review"`
}

// Load reads configuration from catalogtools.yaml (working directory or
// ./config), CATALOG_-prefixed environment variables, and defaults, in that
// precedence. A missing config file is fine; missing source paths are caught
// by the individual tools when they try to load the files.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("catalogtools")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("CATALOG")
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("pos.header_row", 2)
	v.SetDefault("web.header_row", 1)
	v.SetDefault("legacy.header_row", 1)
	v.SetDefault("merge.category_precedence", []string{"web", "pos"})
	v.SetDefault("merge.output_dir", "output")
	v.SetDefault("review.search_terms", []string{"Selenite", "Chakra", "Crystal Singing Bowl", "Tarot"})
	v.SetDefault("review.high_value_threshold", 75)
	v.SetDefault("review.top_categories", 5)
}

// Validate ensures all configuration values are coherent.
func (c *Config) Validate() error {
	if c.POS.HeaderRow < 0 {
		return fmt.Errorf("pos header row cannot be negative")
	}
	if c.Web.HeaderRow < 0 {
		return fmt.Errorf("web header row cannot be negative")
	}
	if c.Legacy.HeaderRow < 0 {
		return fmt.Errorf("legacy header row cannot be negative")
	}
	if len(c.Merge.CategoryPrecedence) == 0 {
		return fmt.Errorf("category precedence cannot be empty")
	}
	if _, err := c.CategoryPrecedence(); err != nil {
		return err
	}
	if c.Merge.OutputDir == "" {
		return fmt.Errorf("output dir cannot be empty")
	}
	if c.Review.HighValueThreshold < 0 {
		return fmt.Errorf("high value threshold cannot be negative")
	}
	if c.Review.TopCategories <= 0 {
		return fmt.Errorf("top categories must be positive")
	}
	return nil
}

// CategoryPrecedence resolves the configured precedence strings to sources.
func (c *Config) CategoryPrecedence() ([]models.Source, error) {
	out := make([]models.Source, 0, len(c.Merge.CategoryPrecedence))
	for _, s := range c.Merge.CategoryPrecedence {
		src, err := models.ParseSource(s)
		if err != nil {
			return nil, fmt.Errorf("category precedence: %w", err)
		}
		out = append(out, src)
	}
	return out, nil
}

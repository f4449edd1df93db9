package config

import (
	"fmt"
	"os"
	"time"

	"github.com/yama6a/rialcom-tariffs/internal/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	DefaultURL               = "https://www.rialcom.ru/internet_tariffs/"
	DefaultOutputFile        = "tariffs.xlsx"
	DefaultSheetName         = "Sheet1"
	DefaultTimeout           = 30 * time.Second
	DefaultBusinessSectionID = "collapse1"
	DefaultPrivateSectionID  = "collapse2"
)

// Config holds everything a run needs. Zero values in a YAML file keep the defaults.
type Config struct {
	URL               string        `yaml:"url"`
	OutputFile        string        `yaml:"output_file"`
	SheetName         string        `yaml:"sheet_name"`
	Timeout           time.Duration `yaml:"timeout"`
	BusinessSectionID string        `yaml:"business_section_id"`
	PrivateSectionID  string        `yaml:"private_section_id"`
}

func Default() Config {
	return Config{
		URL:               DefaultURL,
		OutputFile:        DefaultOutputFile,
		SheetName:         DefaultSheetName,
		Timeout:           DefaultTimeout,
		BusinessSectionID: DefaultBusinessSectionID,
		PrivateSectionID:  DefaultPrivateSectionID,
	}
}

// Load reads a YAML file on top of the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.URL == "":
		return fmt.Errorf("%w: url must not be empty", errors.ErrInvalidConfig)
	case c.OutputFile == "":
		return fmt.Errorf("%w: output file must not be empty", errors.ErrInvalidConfig)
	case c.Timeout <= 0:
		return fmt.Errorf("%w: timeout must be positive, got %s", errors.ErrInvalidConfig, c.Timeout)
	case c.BusinessSectionID == "", c.PrivateSectionID == "":
		return fmt.Errorf("%w: section ids must not be empty", errors.ErrInvalidConfig)
	}
	return nil
}

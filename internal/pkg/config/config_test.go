package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	tariffserrors "github.com/yama6a/rialcom-tariffs/internal/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    Config
	}{
		{
			name:    "empty file keeps defaults",
			content: "",
			want:    Default(),
		},
		{
			name: "overrides selected fields",
			content: `url: http://localhost:8080/tariffs
output_file: out.xlsx
timeout: 5s
`,
			want: Config{
				URL:               "http://localhost:8080/tariffs",
				OutputFile:        "out.xlsx",
				SheetName:         DefaultSheetName,
				Timeout:           5 * time.Second,
				BusinessSectionID: DefaultBusinessSectionID,
				PrivateSectionID:  DefaultPrivateSectionID,
			},
		},
		{
			name: "section ids",
			content: `business_section_id: biz
private_section_id: home
sheet_name: Тарифы
`,
			want: Config{
				URL:               DefaultURL,
				OutputFile:        DefaultOutputFile,
				SheetName:         "Тарифы",
				Timeout:           DefaultTimeout,
				BusinessSectionID: "biz",
				PrivateSectionID:  "home",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Load(writeConfig(t, tt.content))
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Load() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	t.Parallel()

	got, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != Default() {
		t.Errorf("Load() = %+v, want defaults", got)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() expected error for missing file")
	}

	if _, err := Load(writeConfig(t, "url: [unterminated")); err == nil {
		t.Error("Load() expected error for invalid YAML")
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(c *Config)
		wantErr bool
	}{
		{name: "defaults are valid", modify: func(_ *Config) {}},
		{name: "empty url", modify: func(c *Config) { c.URL = "" }, wantErr: true},
		{name: "empty output", modify: func(c *Config) { c.OutputFile = "" }, wantErr: true},
		{name: "zero timeout", modify: func(c *Config) { c.Timeout = 0 }, wantErr: true},
		{name: "negative timeout", modify: func(c *Config) { c.Timeout = -time.Second }, wantErr: true},
		{name: "empty business section", modify: func(c *Config) { c.BusinessSectionID = "" }, wantErr: true},
		{name: "empty private section", modify: func(c *Config) { c.PrivateSectionID = "" }, wantErr: true},
		{name: "empty sheet name is allowed", modify: func(c *Config) { c.SheetName = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := Default()
			tt.modify(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				if !errors.Is(err, tariffserrors.ErrInvalidConfig) {
					t.Errorf("Validate() error = %v, want %v", err, tariffserrors.ErrInvalidConfig)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}

package main

import (
	"fmt"
	"io"
	gohttp "net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/yama6a/rialcom-tariffs/internal/app/crawler"
	"github.com/yama6a/rialcom-tariffs/internal/app/crawler/rialcom"
	"github.com/yama6a/rialcom-tariffs/internal/pkg/config"
	"github.com/yama6a/rialcom-tariffs/internal/pkg/http"
	"github.com/yama6a/rialcom-tariffs/internal/pkg/store"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type options struct {
	configPath string
	url        string
	output     string
	timeout    time.Duration
	verbose    bool
	dryRun     bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "tariffs",
		Short: "Export RialCom internet tariffs to a spreadsheet",
		Long: `tariffs fetches the RialCom internet tariff page once, extracts the plain
internet and internet+TV tariffs for business and private customers, and
writes them to an XLSX file.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			return run(cmd.OutOrStdout(), cfg, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config file")
	flags.StringVar(&opts.url, "url", config.DefaultURL, "tariff page URL")
	flags.StringVarP(&opts.output, "output", "o", config.DefaultOutputFile, "output XLSX file")
	flags.DurationVar(&opts.timeout, "timeout", config.DefaultTimeout, "HTTP request timeout")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "parse and log tariffs without writing a file")

	return cmd
}

// resolveConfig layers explicitly set flags over the config file over the defaults.
func resolveConfig(cmd *cobra.Command, opts options) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("url") {
		cfg.URL = opts.url
	}
	if flags.Changed("output") {
		cfg.OutputFile = opts.output
	}
	if flags.Changed("timeout") {
		cfg.Timeout = opts.timeout
	}

	return cfg, cfg.Validate()
}

func run(out io.Writer, cfg config.Config, opts options) error {
	logger, err := newLogger(opts.verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	// Shared HTTP client, one request per run.
	baseHTTPClient := &gohttp.Client{Timeout: cfg.Timeout}
	httpClient := http.NewClient(baseHTTPClient, cfg.Timeout)

	siteCrawler := rialcom.NewRialcomCrawler(httpClient, rialcom.Config{
		URL:               cfg.URL,
		BusinessSectionID: cfg.BusinessSectionID,
		PrivateSectionID:  cfg.PrivateSectionID,
	}, logger.Named("rialcom-crawler"))

	var tariffStore store.Store = store.NewXLSXStore(cfg.OutputFile, cfg.SheetName, logger.Named("xlsx-store"))
	if opts.dryRun {
		tariffStore = store.NewMemoryStore(logger.Named("memory-store"))
	}

	svc := crawler.NewService(tariffStore, siteCrawler, logger.Named("crawler-svc"))

	count, err := svc.Run()
	if err != nil {
		logger.Error("tariff export failed", zap.String("url", cfg.URL), zap.Error(err))
		return err
	}

	_, _ = fmt.Fprintf(out, "Спаршено тарифов: %d\n", count)
	if !opts.dryRun {
		_, _ = fmt.Fprintf(out, "Файл сохранен как %s\n", cfg.OutputFile)
	}

	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	loggerConfig := zap.NewDevelopmentConfig()
	loggerConfig.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		loggerConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	loggerConfig.DisableStacktrace = true
	// stdout carries the run summary
	loggerConfig.OutputPaths = []string{"stderr"}

	return loggerConfig.Build()
}

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/promptlens/promptlens/cache"
	"github.com/promptlens/promptlens/config"
	"github.com/promptlens/promptlens/dataset"
	"github.com/promptlens/promptlens/fileio"
	"github.com/promptlens/promptlens/logging"
	"github.com/promptlens/promptlens/server"
)

var (
	cfgFile  string
	logLevel string

	servePaths     []string
	serveHost      string
	servePort      int
	serveWatch     bool
	serveNoCache   bool
	serveUserLimit int
)

var rootCmd = &cobra.Command{
	Use:   "promptlens",
	Short: "Prompt usage analytics service",
	Long: `promptlens loads prompt usage records from JSONL files and serves
aggregated analytics over HTTP: usage overview, per-user and per-model
rollups, temporal trends, category breakdowns, quality insights, and
on-demand prompt text analysis.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfiguration(cmd.Flags())
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		logging.InitLogger(cfg.App.LogLevel, cfg.App.LogFile)

		return runServe(cfg)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./promptlens.yaml or $HOME/promptlens.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	rootCmd.Flags().StringSliceVarP(&servePaths, "paths", "p", nil, "record files or directories to load (can be specified multiple times)")
	rootCmd.Flags().StringVar(&serveHost, "host", "", "address to bind the HTTP server to")
	rootCmd.Flags().IntVar(&servePort, "port", 0, "HTTP server port")
	rootCmd.Flags().BoolVarP(&serveWatch, "watch", "w", false, "watch loaded files and flag the dataset stale on change")
	rootCmd.Flags().BoolVar(&serveNoCache, "no-cache", false, "disable the parsed-record cache")
	rootCmd.Flags().IntVar(&serveUserLimit, "user-limit", 0, "default number of users in the per-user rollup")
}

// loadConfiguration loads the layered configuration and applies overrides
// from whatever flags of the invoking command were actually set.
func loadConfiguration(flags *pflag.FlagSet) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	if flags.Changed("log-level") {
		cfg.App.LogLevel = logLevel
	}
	if flags.Changed("paths") {
		cfg.Data.Paths = servePaths
	}
	if flags.Changed("host") {
		cfg.Server.Host = serveHost
	}
	if flags.Changed("port") {
		cfg.Server.Port = servePort
	}
	if flags.Changed("watch") {
		cfg.Data.Watch = serveWatch
	}
	if flags.Changed("no-cache") {
		cfg.Data.CacheEnabled = !serveNoCache
	}
	if flags.Changed("user-limit") {
		cfg.Analyze.UserLimit = serveUserLimit
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadDataset discovers, loads, and indexes all configured record files.
func loadDataset(cfg *config.Config) (*dataset.Dataset, []string, error) {
	files := fileio.DiscoverFiles(cfg.Data.Paths)
	if len(files) == 0 {
		logging.LogWarnf("no record files found under %v", cfg.Data.Paths)
	}

	var recordCache fileio.RecordCache
	var store *cache.Store
	if cfg.Data.CacheEnabled {
		var err error
		store, err = cache.NewStore(cfg.Data.CacheDir)
		if err != nil {
			logging.LogWarnf("record cache disabled: %v", err)
		} else {
			recordCache = store
		}
	}

	loader := fileio.NewLoader(recordCache)
	raw, err := loader.Load(files)
	if store != nil {
		if cerr := store.Close(); cerr != nil {
			logging.LogWarnf("closing record cache: %v", cerr)
		}
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load records: %w", err)
	}

	ds := dataset.Build(raw)
	logging.LogInfof("loaded %d records from %d files", ds.Len(), len(files))
	return ds, files, nil
}

func runServe(cfg *config.Config) error {
	ds, files, err := loadDataset(cfg)
	if err != nil {
		return err
	}

	var watcher *fileio.Watcher
	if cfg.Data.Watch && len(files) > 0 {
		watcher, err = fileio.NewWatcher(files)
		if err != nil {
			logging.LogWarnf("file watching disabled: %v", err)
			watcher = nil
		} else if err := watcher.Start(); err != nil {
			logging.LogWarnf("file watching disabled: %v", err)
			watcher = nil
		}
	}

	srv := server.New(server.Config{
		Host:            cfg.Server.Host,
		Port:            cfg.Server.Port,
		Version:         cfg.App.Version,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		CORSOrigins:     cfg.Server.CORSOrigins,
		UserLimit:       cfg.Analyze.UserLimit,
	}, ds, watcher)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		logging.LogInfof("received %s, shutting down", sig)
		return srv.Stop(context.Background())
	}
}
